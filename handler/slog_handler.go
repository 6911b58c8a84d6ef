package handler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/philipp01105/logchain/core"
)

// LevelFatal is the slog level mapped to core.FatalError
const LevelFatal = slog.LevelError + 4

// SlogHandler is an adapter that implements slog.Handler on top of a
// Dispatcher, so slog.Logger calls are routed through a chain.
type SlogHandler struct {
	dispatcher Dispatcher
	level      slog.Level
	attrs      string
	group      string
}

// NewSlogHandler creates a new slog.Handler adapter. Records below
// level are not dispatched.
func NewSlogHandler(d Dispatcher, level slog.Level) *SlogHandler {
	return &SlogHandler{
		dispatcher: d,
		level:      level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= s.level
}

// Handle converts the record to a message and dispatches it. Attributes
// are appended to the text as key=value pairs.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	var b strings.Builder
	b.WriteString(record.Message)
	b.WriteString(s.attrs)
	record.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, s.group, a)
		return true
	})

	return s.dispatcher.Handle(core.NewMessage(SeverityFromSlog(record.Level), b.String()))
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var b strings.Builder
	b.WriteString(s.attrs)
	for _, a := range attrs {
		appendAttr(&b, s.group, a)
	}
	return &SlogHandler{
		dispatcher: s.dispatcher,
		level:      s.level,
		attrs:      b.String(),
		group:      s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	return &SlogHandler{
		dispatcher: s.dispatcher,
		level:      s.level,
		attrs:      s.attrs,
		group:      newGroup,
	}
}

// SeverityFromSlog converts a slog.Level to a core.Severity.
// Levels below Warn have no severity of their own and map to Unknown.
func SeverityFromSlog(level slog.Level) core.Severity {
	switch {
	case level >= LevelFatal:
		return core.FatalError
	case level >= slog.LevelError:
		return core.Error
	case level >= slog.LevelWarn:
		return core.Warning
	default:
		return core.Unknown
	}
}

// appendAttr writes " key=value", flattening groups with a dot prefix
func appendAttr(b *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if group != "" {
		key = group + "." + a.Key
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			appendAttr(b, key, ga)
		}
		return
	}

	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')
	fmt.Fprint(b, a.Value.Any())
}
