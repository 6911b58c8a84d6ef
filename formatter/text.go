package formatter

import (
	"github.com/philipp01105/logchain/core"
)

// TextFormatter formats messages as "<Label>: <text>"
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	return &TextFormatter{Config: cfg}
}

// Format formats a message as text
func (f *TextFormatter) Format(msg core.Message) string {
	buf := getBuffer()
	defer putBuffer(buf)

	buf.WriteString(f.label(msg.Severity()))
	buf.WriteString(": ")
	buf.WriteString(msg.Text())
	return buf.String()
}
