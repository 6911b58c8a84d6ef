package sink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapSink_Write(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := NewZapSink(zap.New(core), zapcore.WarnLevel)

	require.NoError(t, s.Write("Warning: hi"))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Warning: hi", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
}

func TestZapSink_ClampsHaltingLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := NewZapSink(zap.New(core), zapcore.FatalLevel)

	require.NoError(t, s.Write("Fatal error: oops"))

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.ErrorLevel, logs.All()[0].Level)
}

func TestZapSink_BelowLoggerLevel(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	s := NewZapSink(zap.New(core), zapcore.InfoLevel)

	require.NoError(t, s.Write("dropped"))
	assert.Equal(t, 0, logs.Len())
}
