package observer

import (
	"go.uber.org/multierr"

	"github.com/philipp01105/logchain/core"
)

// Observer receives every message published by a Subject.
// Each method reports its own failure; a nil return means the observer
// either recorded the message or ignored it.
type Observer interface {
	OnWarning(text string) error
	OnError(text string) error
	OnFatalError(text string) error
}

// Base ignores every notification. Embed it to implement only the
// methods an observer cares about.
type Base struct{}

// OnWarning does nothing
func (Base) OnWarning(string) error { return nil }

// OnError does nothing
func (Base) OnError(string) error { return nil }

// OnFatalError does nothing
func (Base) OnFatalError(string) error { return nil }

// Subject broadcasts messages to a set of observers. Unlike a chain,
// every observer sees every message and decides for itself whether to
// act on it.
type Subject struct {
	observers []Observer
}

// NewSubject creates a subject with the given observers
func NewSubject(observers ...Observer) *Subject {
	s := &Subject{}
	for _, o := range observers {
		s.Add(o)
	}
	return s
}

// Add registers o. Adding an observer that is already registered, or a
// nil observer, has no effect.
func (s *Subject) Add(o Observer) {
	if o == nil {
		return
	}
	for _, existing := range s.observers {
		if existing == o {
			return
		}
	}
	s.observers = append(s.observers, o)
}

// Remove unregisters o
func (s *Subject) Remove(o Observer) {
	kept := s.observers[:0]
	for _, existing := range s.observers {
		if existing != o {
			kept = append(kept, existing)
		}
	}
	for i := len(kept); i < len(s.observers); i++ {
		s.observers[i] = nil
	}
	s.observers = kept
}

// Len returns the number of registered observers
func (s *Subject) Len() int {
	return len(s.observers)
}

// Warning notifies every observer of a warning
func (s *Subject) Warning(text string) error {
	return s.each(func(o Observer) error { return o.OnWarning(text) })
}

// Error notifies every observer of an error
func (s *Subject) Error(text string) error {
	return s.each(func(o Observer) error { return o.OnError(text) })
}

// FatalError notifies every observer of a fatal error
func (s *Subject) FatalError(text string) error {
	return s.each(func(o Observer) error { return o.OnFatalError(text) })
}

// Notify publishes msg through the method matching its severity.
// Messages of unknown severity have no observer method and are
// reported as unroutable.
func (s *Subject) Notify(msg core.Message) error {
	switch msg.Severity() {
	case core.Warning:
		return s.Warning(msg.Text())
	case core.Error:
		return s.Error(msg.Text())
	case core.FatalError:
		return s.FatalError(msg.Text())
	default:
		return core.NewUnroutableError(msg)
	}
}

// each calls fn for every observer, even after a failure, and returns
// all failures combined
func (s *Subject) each(fn func(Observer) error) error {
	var err error
	for _, o := range s.observers {
		err = multierr.Append(err, fn(o))
	}
	return err
}
