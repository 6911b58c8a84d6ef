package logger

import (
	"sync"

	"github.com/philipp01105/logchain/core"
	"github.com/philipp01105/logchain/handler"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// Warnings to stdout, errors appended to errors.log, fatal and
	// unknown messages halt. The file is only opened when written.
	c, err := handler.Standard(handler.StandardConfig{})
	if err != nil {
		panic(err)
	}

	defaultLogger = NewBuilder().
		WithHandler(c).
		Build()
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Log dispatches a message using the default logger
func Log(severity core.Severity, text string) error {
	return Default().Log(severity, text)
}

// Warning logs a warning using the default logger
func Warning(text string) error {
	return Default().Warning(text)
}

// Error logs an error using the default logger
func Error(text string) error {
	return Default().Error(text)
}

// Fatal logs a fatal error using the default logger
func Fatal(text string) error {
	return Default().Fatal(text)
}

// Unknown logs a message of unknown severity using the default logger
func Unknown(text string) error {
	return Default().Unknown(text)
}

// Warningf logs a formatted warning using the default logger
func Warningf(format string, args ...interface{}) error {
	return Default().Warningf(format, args...)
}

// Errorf logs a formatted error using the default logger
func Errorf(format string, args ...interface{}) error {
	return Default().Errorf(format, args...)
}

// Fatalf logs a formatted fatal error using the default logger
func Fatalf(format string, args ...interface{}) error {
	return Default().Fatalf(format, args...)
}
