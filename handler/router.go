package handler

import (
	"github.com/philipp01105/logchain/core"
)

// RouteFunc decides on its own whether to act on msg. Functions that do
// not claim the message must pass it on with Forward(next, msg).
type RouteFunc func(msg core.Message, next Handler) error

// Router is a self-routing handler: its RouteFunc inlines the match test
// and the forwarding call rather than relying on the Link template.
type Router struct {
	name  string
	route RouteFunc
	next  Handler
}

// NewRouter creates a self-routing handler
func NewRouter(name string, route RouteFunc) *Router {
	return &Router{name: name, route: route}
}

// NewFatalRouter creates a self-routing handler that halts on fatal errors
func NewFatalRouter() *Router {
	return NewRouter("fatal", func(msg core.Message, next Handler) error {
		if msg.Severity() == core.FatalError {
			return core.NewHaltError(msg)
		}
		return Forward(next, msg)
	})
}

// NewUnknownRouter creates a self-routing handler that halts on
// messages of unknown severity
func NewUnknownRouter() *Router {
	return NewRouter("unknown", func(msg core.Message, next Handler) error {
		if msg.Severity() == core.Unknown {
			return core.NewHaltError(msg)
		}
		return Forward(next, msg)
	})
}

// Handle calls the route function with the current successor
func (r *Router) Handle(msg core.Message) error {
	return r.route(msg, r.next)
}

// SetNext sets the successor
func (r *Router) SetNext(next Handler) {
	r.next = next
}

// Name returns the handler name
func (r *Router) Name() string {
	return r.name
}
