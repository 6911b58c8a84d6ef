package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/philipp01105/logchain/core"
	"github.com/philipp01105/logchain/handler"
)

var sendSeverity string

var sendCmd = &cobra.Command{
	Use:   "send [flags] <text>...",
	Short: "Dispatch one message",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		severity, err := core.ParseSeverity(sendSeverity)
		if err != nil {
			return err
		}

		c, err := buildChain()
		if err != nil {
			return err
		}

		res := c.Dispatch(core.NewMessage(severity, strings.Join(args, " ")))
		if res.Err != nil {
			return fmt.Errorf("%s: %w", res.Outcome, res.Err)
		}
		return nil
	},
}

func init() {
	sendCmd.Flags().StringVarP(&sendSeverity, "severity", "s", "warning", "message severity: warning, error, fatal or unknown")
}

// report logs a failed dispatch on the diagnostic logger
func report(res handler.Result) {
	if res.Err == nil {
		return
	}
	diag.Warn("dispatch failed",
		zap.String("outcome", res.Outcome.String()),
		zap.Error(res.Err),
	)
}
