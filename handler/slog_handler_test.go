package handler

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/philipp01105/logchain/core"
)

// capture is a Dispatcher that keeps the messages it receives
type capture struct {
	msgs []core.Message
	err  error
}

func (c *capture) Handle(msg core.Message) error {
	c.msgs = append(c.msgs, msg)
	return c.err
}

var timeZero time.Time

func TestSlogHandler_Enabled(t *testing.T) {
	sh := NewSlogHandler(&capture{}, slog.LevelWarn)

	if sh.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("Info should not be enabled when level is Warn")
	}
	if !sh.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("Warn should be enabled when level is Warn")
	}
	if !sh.Enabled(context.Background(), slog.LevelError) {
		t.Error("Error should be enabled when level is Warn")
	}
}

func TestSlogHandler_Handle(t *testing.T) {
	c := &capture{}
	logger := slog.New(NewSlogHandler(c, slog.LevelWarn))

	logger.Error("write failed", "path", "/tmp/x", "attempt", 3)

	if len(c.msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(c.msgs))
	}
	msg := c.msgs[0]
	if msg.Severity() != core.Error {
		t.Errorf("Severity() = %v, want %v", msg.Severity(), core.Error)
	}
	if msg.Text() != "write failed path=/tmp/x attempt=3" {
		t.Errorf("Text() = %q", msg.Text())
	}
}

func TestSlogHandler_WithAttrsAndGroup(t *testing.T) {
	c := &capture{}
	logger := slog.New(NewSlogHandler(c, slog.LevelWarn)).
		With("request_id", "req-123").
		WithGroup("db")

	logger.Warn("slow query", "ms", 250)

	if len(c.msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(c.msgs))
	}
	if got := c.msgs[0].Text(); got != "slow query request_id=req-123 db.ms=250" {
		t.Errorf("Text() = %q", got)
	}
}

func TestSlogHandler_ThroughChain(t *testing.T) {
	rec := &recorder{}
	c := MustNew(NewWarning(rec), NewFatal())
	sh := NewSlogHandler(c, slog.LevelWarn)

	if err := sh.Handle(context.Background(), slog.NewRecord(timeZero, slog.LevelWarn, "careful", 0)); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	err := sh.Handle(context.Background(), slog.NewRecord(timeZero, LevelFatal, "dead", 0))
	if !core.IsHalt(err) {
		t.Errorf("expected halt error, got %v", err)
	}

	if len(rec.lines) != 1 || rec.lines[0] != "Warning: careful" {
		t.Errorf("unexpected lines: %v", rec.lines)
	}
}

func TestSeverityFromSlog(t *testing.T) {
	tests := []struct {
		level slog.Level
		want  core.Severity
	}{
		{slog.LevelDebug, core.Unknown},
		{slog.LevelInfo, core.Unknown},
		{slog.LevelWarn, core.Warning},
		{slog.LevelError, core.Error},
		{slog.LevelError + 2, core.Error},
		{LevelFatal, core.FatalError},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			if got := SeverityFromSlog(tt.level); got != tt.want {
				t.Errorf("SeverityFromSlog(%v) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}
