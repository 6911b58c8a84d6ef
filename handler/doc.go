// Package handler routes messages through a chain of handlers, each of
// which is responsible for one severity.
//
// A Handler either claims a message and performs its effect, or passes
// the message unchanged to its successor. When the last handler passes
// a message on, dispatch fails with *core.UnroutableError. A claimed
// message is never forwarded, even if its effect fails.
//
// Two handler styles are provided and route identically:
//
//   - Link supplies only a claimed severity and an Effect; the shared
//     Link.Handle does the match, forward or fail step.
//   - Router runs a RouteFunc that makes its own match test and calls
//     Forward itself, which suits handlers that halt outright.
//
// Chain owns the handlers, links them in order and is the entry point
// for dispatch. Chain.Dispatch returns a Result whose Outcome separates
// Handled, Unroutable, SinkFailed and Halted, and counts each outcome
// in Stats. Standard builds the usual warning, error, fatal and unknown
// chain with a configurable order.
//
// SlogHandler adapts a chain to log/slog.Handler.
package handler
