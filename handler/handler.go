package handler

import (
	"github.com/philipp01105/logchain/core"
)

// Dispatcher accepts messages for routing
type Dispatcher interface {
	// Handle routes msg. It returns nil once a handler has recorded it.
	Handle(msg core.Message) error
}

// Handler is a node in a chain. It either claims a message and acts on
// it, or passes it unchanged to its successor.
type Handler interface {
	Dispatcher

	// SetNext records the successor, replacing any previous one.
	// A nil successor marks the end of the chain.
	SetNext(next Handler)

	// Name identifies the handler in logs and errors
	Name() string
}

// Effect is the action a handler performs on a message it claims
type Effect func(msg core.Message) error

// Forward passes msg to next. With no successor the message cannot be
// routed and an *core.UnroutableError is returned.
func Forward(next Handler, msg core.Message) error {
	if next == nil {
		return core.NewUnroutableError(msg)
	}
	return next.Handle(msg)
}

// Halt is the effect of handlers that stop the caller instead of
// recording the message.
func Halt(msg core.Message) error {
	return core.NewHaltError(msg)
}
