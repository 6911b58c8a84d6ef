package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/logchain/formatter"
	"github.com/philipp01105/logchain/handler"
	"github.com/philipp01105/logchain/sink"
)

type options struct {
	errorFile   string
	order       string
	format      string
	selfRouting bool
	mirror      bool
	debug       bool
}

var opts options

var diag = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:           "logchain",
	Short:         "Route log messages through a severity handler chain",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if opts.debug {
			diagLevel.SetLevel(zapcore.DebugLevel)
		}
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.errorFile, "error-file", "errors.log", "file error messages are appended to")
	flags.StringVar(&opts.order, "order", "warning,error,fatal,unknown", "handler order, first match wins")
	flags.StringVar(&opts.format, "format", "text", "line format: text or json")
	flags.BoolVar(&opts.selfRouting, "self-routing", false, "build fatal and unknown handlers in self-routing style")
	flags.BoolVar(&opts.mirror, "mirror", false, "also send every written line to the diagnostic log")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug log")

	rootCmd.AddCommand(sendCmd, demoCmd)
}

// buildChain creates the standard chain from the command line options
func buildChain() (*handler.Chain, error) {
	order, err := handler.ParseOrder(opts.order)
	if err != nil {
		return nil, fmt.Errorf("--order: %w", err)
	}

	var f formatter.Formatter
	switch opts.format {
	case "text":
		f = formatter.NewTextFormatter(formatter.Config{})
	case "json":
		f = formatter.NewJSONFormatter(formatter.Config{})
	default:
		return nil, fmt.Errorf("--format: unknown format %q", opts.format)
	}

	errorSink, err := sink.NewFileSink(sink.FileConfig{Filename: opts.errorFile, CreateDirs: true})
	if err != nil {
		return nil, fmt.Errorf("--error-file: %w", err)
	}

	var console, errs sink.Sink = sink.NewConsoleSink(sink.ConsoleConfig{}), errorSink
	if opts.mirror {
		console = sink.NewMultiSink(console, sink.NewZapSink(diag, zapcore.DebugLevel))
		errs = sink.NewMultiSink(errs, sink.NewZapSink(diag, zapcore.DebugLevel))
	}

	c, err := handler.Standard(handler.StandardConfig{
		Console:     console,
		ErrorSink:   errs,
		Formatter:   f,
		Order:       order,
		SelfRouting: opts.selfRouting,
	})
	if err != nil {
		return nil, err
	}

	diag.Debug("chain built", zap.Strings("handlers", c.Names()))
	return c, nil
}

// Execute runs the root command
func Execute() {
	diag = newDiagLogger(os.Stderr, isatty.IsTerminal(os.Stderr.Fd()))
	defer func() { _ = diag.Sync() }()

	if err := rootCmd.Execute(); err != nil {
		diag.Error(err.Error())
		_ = diag.Sync()
		os.Exit(1)
	}
}
