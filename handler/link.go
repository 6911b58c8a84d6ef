package handler

import (
	"github.com/philipp01105/logchain/core"
	"github.com/philipp01105/logchain/formatter"
	"github.com/philipp01105/logchain/sink"
)

// Link is a handler that claims exactly one severity (or, for a
// catch-all, every severity). All links share the same dispatch rule in
// Handle; a link only supplies its claim and its effect.
type Link struct {
	name     string
	severity core.Severity
	catchAll bool
	effect   Effect
	next     Handler
}

// NewLink creates a handler that runs effect for messages of severity
func NewLink(severity core.Severity, name string, effect Effect) *Link {
	return &Link{
		name:     name,
		severity: severity,
		effect:   effect,
	}
}

// NewCatchAll creates a handler that claims every message reaching it.
// Placed last, it handles whatever the earlier handlers passed on.
func NewCatchAll(name string, effect Effect) *Link {
	return &Link{
		name:     name,
		severity: core.Unknown,
		catchAll: true,
		effect:   effect,
	}
}

// NewWriter creates a handler that formats messages of severity and
// writes them to s. A nil formatter uses the text format.
func NewWriter(severity core.Severity, name string, s sink.Sink, f formatter.Formatter) *Link {
	if f == nil {
		f = formatter.NewTextFormatter(formatter.Config{})
	}
	return NewLink(severity, name, func(msg core.Message) error {
		return s.Write(f.Format(msg))
	})
}

// NewWarning creates the warning handler, usually given a console sink
func NewWarning(s sink.Sink) *Link {
	return NewWriter(core.Warning, "warning", s, nil)
}

// NewError creates the error handler, usually given a file sink
func NewError(s sink.Sink) *Link {
	return NewWriter(core.Error, "error", s, nil)
}

// NewFatal creates a handler that halts on fatal errors
func NewFatal() *Link {
	return NewLink(core.FatalError, "fatal", Halt)
}

// NewUnknown creates a handler that halts on messages of unknown severity
func NewUnknown() *Link {
	return NewLink(core.Unknown, "unknown", Halt)
}

// CanHandle reports whether the link claims severity s
func (l *Link) CanHandle(s core.Severity) bool {
	return l.catchAll || s == l.severity
}

// Handle runs the effect when the link claims msg, and forwards it
// otherwise. A failing effect still ends propagation.
func (l *Link) Handle(msg core.Message) error {
	if l.CanHandle(msg.Severity()) {
		return l.effect(msg)
	}
	return Forward(l.next, msg)
}

// SetNext sets the successor
func (l *Link) SetNext(next Handler) {
	l.next = next
}

// Name returns the handler name
func (l *Link) Name() string {
	return l.name
}
