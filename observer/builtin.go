package observer

import (
	"go.uber.org/multierr"

	"github.com/philipp01105/logchain/core"
	"github.com/philipp01105/logchain/formatter"
	"github.com/philipp01105/logchain/sink"
)

var (
	textFormat      = formatter.NewTextFormatter(formatter.Config{})
	fatalFileFormat = formatter.NewTextFormatter(formatter.Config{
		Labels: map[core.Severity]string{core.FatalError: "Fatal Error"},
	})
)

// WarningObserver writes warnings to a sink, usually the console
type WarningObserver struct {
	Base
	sink sink.Sink
}

// NewWarningObserver creates a warning observer
func NewWarningObserver(s sink.Sink) *WarningObserver {
	return &WarningObserver{sink: s}
}

// OnWarning writes "Warning: <text>"
func (o *WarningObserver) OnWarning(text string) error {
	return o.sink.Write(textFormat.Format(core.NewMessage(core.Warning, text)))
}

// ErrorObserver writes errors to a sink, usually a file
type ErrorObserver struct {
	Base
	sink sink.Sink
}

// NewErrorObserver creates an error observer
func NewErrorObserver(s sink.Sink) *ErrorObserver {
	return &ErrorObserver{sink: s}
}

// OnError writes "Error: <text>"
func (o *ErrorObserver) OnError(text string) error {
	return o.sink.Write(textFormat.Format(core.NewMessage(core.Error, text)))
}

// FatalErrorObserver reports fatal errors on the console and in a file
type FatalErrorObserver struct {
	Base
	console sink.Sink
	file    sink.Sink
}

// NewFatalErrorObserver creates a fatal error observer
func NewFatalErrorObserver(console, file sink.Sink) *FatalErrorObserver {
	return &FatalErrorObserver{console: console, file: file}
}

// OnFatalError writes "Fatal error: <text>" to the console and
// "Fatal Error: <text>" to the file. The file is written even if the
// console write fails.
func (o *FatalErrorObserver) OnFatalError(text string) error {
	msg := core.NewMessage(core.FatalError, text)
	return multierr.Append(
		o.console.Write(textFormat.Format(msg)),
		o.file.Write(fatalFileFormat.Format(msg)),
	)
}
