package handler

import (
	"errors"
	"fmt"

	"github.com/philipp01105/logchain/core"
)

// ErrEmptyChain is returned by New when no handlers are given
var ErrEmptyChain = errors.New("chain needs at least one handler")

// Result describes how a single dispatch ended
type Result struct {
	Outcome Outcome
	// Err is nil when Outcome is Handled
	Err error
}

// Classify maps an error returned by a handler to an Outcome.
// Effect errors that are neither halts nor routing failures count as
// SinkFailed: the message was routed but not recorded.
func Classify(err error) Outcome {
	switch {
	case err == nil:
		return Handled
	case core.IsHalt(err):
		return Halted
	case errors.Is(err, core.ErrUnroutable):
		return Unroutable
	default:
		return SinkFailed
	}
}

// Chain owns an ordered list of handlers and links each one to the
// next. Order is priority: the first handler that claims a message
// handles it, even if a later one would too.
//
// The links are fixed by New. Handlers must not be re-linked with
// SetNext while a dispatch is running.
type Chain struct {
	handlers []Handler
	stats    *Stats
}

// New links handlers in the given order and returns the chain.
// Handlers must be pointer types; the same instance may not appear
// twice, since that would make the chain cyclic.
func New(handlers ...Handler) (*Chain, error) {
	if len(handlers) == 0 {
		return nil, ErrEmptyChain
	}

	owned := make([]Handler, len(handlers))
	seen := make(map[Handler]int, len(handlers))
	for i, h := range handlers {
		if h == nil {
			return nil, fmt.Errorf("handler %d is nil", i)
		}
		if j, dup := seen[h]; dup {
			return nil, fmt.Errorf("handler %q appears at positions %d and %d", h.Name(), j, i)
		}
		seen[h] = i
		owned[i] = h
	}

	for i := 0; i < len(owned)-1; i++ {
		owned[i].SetNext(owned[i+1])
	}
	owned[len(owned)-1].SetNext(nil)

	return &Chain{
		handlers: owned,
		stats:    NewStats(),
	}, nil
}

// MustNew is like New but panics on error
func MustNew(handlers ...Handler) *Chain {
	c, err := New(handlers...)
	if err != nil {
		panic(err)
	}
	return c
}

// Head returns the first handler, the entry point for dispatch
func (c *Chain) Head() Handler {
	return c.handlers[0]
}

// Len returns the number of handlers
func (c *Chain) Len() int {
	return len(c.handlers)
}

// Names returns the handler names in chain order
func (c *Chain) Names() []string {
	names := make([]string, len(c.handlers))
	for i, h := range c.handlers {
		names[i] = h.Name()
	}
	return names
}

// Stats returns the chain's outcome counters
func (c *Chain) Stats() *Stats {
	return c.stats
}

// Dispatch routes msg from the head and reports how it ended
func (c *Chain) Dispatch(msg core.Message) Result {
	err := c.handlers[0].Handle(msg)
	res := Result{Outcome: Classify(err), Err: err}
	c.stats.Increment(res.Outcome)
	return res
}

// Handle routes msg from the head and returns the dispatch error
func (c *Chain) Handle(msg core.Message) error {
	return c.Dispatch(msg).Err
}
