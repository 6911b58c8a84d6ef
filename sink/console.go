package sink

import (
	"io"
	"os"
)

// ConsoleConfig holds configuration for the console sink
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
}

// ConsoleSink writes lines to a console stream. It is best effort:
// write errors from the underlying stream are ignored.
type ConsoleSink struct {
	writer io.Writer
	buf    []byte
}

// NewConsoleSink creates a new console sink
func NewConsoleSink(cfg ConsoleConfig) *ConsoleSink {
	applyConsoleDefaults(&cfg)
	return &ConsoleSink{
		writer: cfg.Writer,
		buf:    make([]byte, 0, 256),
	}
}

// Write writes line followed by a newline. It always returns nil.
func (s *ConsoleSink) Write(line string) error {
	s.buf = append(s.buf[:0], line...)
	s.buf = append(s.buf, '\n')
	_, _ = s.writer.Write(s.buf)
	return nil
}
