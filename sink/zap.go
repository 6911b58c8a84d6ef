package sink

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapSink forwards lines into an existing zap logger, so a chain can
// feed an application's zap pipeline instead of a file.
type ZapSink struct {
	logger *zap.Logger
	level  zapcore.Level
}

// NewZapSink creates a sink that writes every line at level.
// Levels above Error are lowered to Error: zap exits or panics on
// them, and halting is the chain's decision, not the sink's.
func NewZapSink(logger *zap.Logger, level zapcore.Level) *ZapSink {
	if level > zapcore.ErrorLevel {
		level = zapcore.ErrorLevel
	}
	return &ZapSink{logger: logger, level: level}
}

// Write logs line at the sink's level. It always returns nil.
func (s *ZapSink) Write(line string) error {
	if ce := s.logger.Check(s.level, line); ce != nil {
		ce.Write()
	}
	return nil
}
