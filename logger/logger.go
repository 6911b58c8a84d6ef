package logger

import (
	"fmt"

	"github.com/philipp01105/logchain/core"
	"github.com/philipp01105/logchain/handler"
)

// Logger builds messages and hands them to a dispatcher (immutable)
type Logger struct {
	dispatcher handler.Dispatcher
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	dispatcher handler.Dispatcher
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithHandler sets the dispatcher, usually a *handler.Chain
func (b *Builder) WithHandler(d handler.Dispatcher) *Builder {
	b.dispatcher = d
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	return &Logger{dispatcher: b.dispatcher}
}

// Log dispatches a message with the given severity.
// Without a dispatcher every message is unroutable.
func (l *Logger) Log(severity core.Severity, text string) error {
	msg := core.NewMessage(severity, text)
	if l.dispatcher == nil {
		return core.NewUnroutableError(msg)
	}
	return l.dispatcher.Handle(msg)
}

// Warning logs a warning
func (l *Logger) Warning(text string) error {
	return l.Log(core.Warning, text)
}

// Error logs an error
func (l *Logger) Error(text string) error {
	return l.Log(core.Error, text)
}

// Fatal logs a fatal error. With a standard chain this returns a
// *core.HaltError, which the caller should treat as a stop signal.
func (l *Logger) Fatal(text string) error {
	return l.Log(core.FatalError, text)
}

// Unknown logs a message of unknown severity
func (l *Logger) Unknown(text string) error {
	return l.Log(core.Unknown, text)
}

// Warningf logs a warning with formatting
func (l *Logger) Warningf(format string, args ...interface{}) error {
	return l.Log(core.Warning, fmt.Sprintf(format, args...))
}

// Errorf logs an error with formatting
func (l *Logger) Errorf(format string, args ...interface{}) error {
	return l.Log(core.Error, fmt.Sprintf(format, args...))
}

// Fatalf logs a fatal error with formatting
func (l *Logger) Fatalf(format string, args ...interface{}) error {
	return l.Log(core.FatalError, fmt.Sprintf(format, args...))
}

// Unknownf logs a message of unknown severity with formatting
func (l *Logger) Unknownf(format string, args ...interface{}) error {
	return l.Log(core.Unknown, fmt.Sprintf(format, args...))
}
