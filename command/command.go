package command

import (
	"io"
	"os"

	"github.com/philipp01105/logchain/sink"
)

// Command prints a message to a fixed destination. The caller picks the
// command; the message carries no routing information.
type Command interface {
	Print(message string) error
}

// Run prints message with cmd
func Run(cmd Command, message string) error {
	return cmd.Print(message)
}

// Console prints "Console: <message>" to a writer
type Console struct {
	sink sink.Sink
}

// NewConsole creates a console command. A nil writer uses os.Stdout.
func NewConsole(w io.Writer) *Console {
	if w == nil {
		w = os.Stdout
	}
	return &Console{sink: sink.NewConsoleSink(sink.ConsoleConfig{Writer: w})}
}

// Print prints the message
func (c *Console) Print(message string) error {
	return c.sink.Write("Console: " + message)
}

// File appends the raw message to a sink, usually a FileSink
type File struct {
	sink sink.Sink
}

// NewFile creates a file command
func NewFile(s sink.Sink) *File {
	return &File{sink: s}
}

// Print appends the message
func (f *File) Print(message string) error {
	return f.sink.Write(message)
}
