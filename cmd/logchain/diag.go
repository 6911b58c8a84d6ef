package main

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var diagLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)

// newDiagLogger returns the logger the driver reports its own failures
// with. It is separate from the chain being exercised.
func newDiagLogger(w io.Writer, color bool) *zap.Logger {
	encoderConfig := zapcore.EncoderConfig{
		LevelKey:         "level",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		ConsoleSeparator: " ",
	}
	if color {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(w), diagLevel)
	return zap.New(core)
}
