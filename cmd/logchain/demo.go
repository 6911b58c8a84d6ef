package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/philipp01105/logchain/command"
	"github.com/philipp01105/logchain/core"
	"github.com/philipp01105/logchain/handler"
	"github.com/philipp01105/logchain/observer"
	"github.com/philipp01105/logchain/sink"
)

var (
	demoFatalFile   string
	demoObserverErr string
	demoCommandFile string
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Dispatch sample messages through the chain, observer and command variants",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := buildChain()
		if err != nil {
			return err
		}

		// One failing message must not stop the rest
		for _, msg := range []core.Message{
			core.NewMessage(core.Warning, "This is a warning."),
			core.NewMessage(core.Error, "This is an error."),
			core.NewMessage(core.FatalError, "This is a fatal error."),
			core.NewMessage(core.Unknown, "This is an unknown message."),
		} {
			report(c.Dispatch(msg))
		}

		// slog drops handler errors; the outcome still shows up in the stats
		slog.New(handler.NewSlogHandler(c, slog.LevelWarn)).Warn("This is a slog warning.")

		snap := c.Stats().GetSnapshot()
		diag.Debug("chain stats",
			zap.Uint64("handled", snap.Outcomes[handler.Handled]),
			zap.Uint64("unroutable", snap.Outcomes[handler.Unroutable]),
			zap.Uint64("sink_failed", snap.Outcomes[handler.SinkFailed]),
			zap.Uint64("halted", snap.Outcomes[handler.Halted]),
		)

		if err := runObserverDemo(); err != nil {
			diag.Warn("observer demo failed", zap.Error(err))
		}
		if err := runCommandDemo(); err != nil {
			diag.Warn("command demo failed", zap.Error(err))
		}
		return nil
	},
}

func init() {
	demoCmd.Flags().StringVar(&demoObserverErr, "observer-error-file", "error.log", "file the error observer appends to")
	demoCmd.Flags().StringVar(&demoFatalFile, "fatal-file", "fatal.log", "file the fatal error observer appends to")
	demoCmd.Flags().StringVar(&demoCommandFile, "command-file", "log.txt", "file the file command appends to")
}

func runObserverDemo() error {
	console := sink.NewConsoleSink(sink.ConsoleConfig{Writer: os.Stdout})
	errorSink, err := sink.NewFileSink(sink.FileConfig{Filename: demoObserverErr})
	if err != nil {
		return err
	}
	fatalSink, err := sink.NewFileSink(sink.FileConfig{Filename: demoFatalFile})
	if err != nil {
		return err
	}

	errorObs := observer.NewErrorObserver(errorSink)
	subject := observer.NewSubject(
		observer.NewWarningObserver(console),
		errorObs,
		observer.NewFatalErrorObserver(console, fatalSink),
	)

	if err := subject.Warning("This a warning message."); err != nil {
		return err
	}
	if err := subject.Error("This is an error message."); err != nil {
		return err
	}
	if err := subject.FatalError("This is a fatal error message."); err != nil {
		return err
	}

	subject.Remove(errorObs)
	return nil
}

func runCommandDemo() error {
	fileSink, err := sink.NewFileSink(sink.FileConfig{Filename: demoCommandFile})
	if err != nil {
		return err
	}

	const message = "This is a test log message!"
	if err := command.Run(command.NewConsole(os.Stdout), message); err != nil {
		return err
	}
	return command.Run(command.NewFile(fileSink), message)
}
