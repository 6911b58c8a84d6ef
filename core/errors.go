package core

import (
	"errors"
	"fmt"
)

// ErrUnroutable is matched by every UnroutableError
var ErrUnroutable = errors.New("no handler found for this message")

// UnroutableError is returned when a message reaches the end of a chain
// without any handler claiming its severity.
type UnroutableError struct {
	Message Message
}

func (e *UnroutableError) Error() string {
	return ErrUnroutable.Error() + ": " + e.Message.String()
}

// Unwrap returns ErrUnroutable
func (e *UnroutableError) Unwrap() error {
	return ErrUnroutable
}

// NewUnroutableError creates an UnroutableError for msg
func NewUnroutableError(msg Message) error {
	return &UnroutableError{Message: msg}
}

// Sink operations reported by SinkError
const (
	OpOpen  = "open"
	OpWrite = "write"
	OpFlush = "flush"
	OpClose = "close"
)

// SinkError reports that a write target could not record a line.
// The message was routed but was not durably written.
type SinkError struct {
	// Target names the sink, usually a file path
	Target string
	// Op is one of OpOpen, OpWrite, OpFlush or OpClose
	Op string
	// Err is the underlying cause
	Err error
}

func (e *SinkError) Error() string {
	if e.Op == OpOpen {
		return fmt.Sprintf("cannot open log file %q: %v", e.Target, e.Err)
	}
	return fmt.Sprintf("cannot %s log file %q: %v", e.Op, e.Target, e.Err)
}

func (e *SinkError) Unwrap() error {
	return e.Err
}

// HaltError is raised by handlers whose policy is to stop the caller
// rather than record the message, e.g. for fatal or unknown severities.
type HaltError struct {
	Message Message
}

func (e *HaltError) Error() string {
	if e.Message.Severity() == FatalError {
		return "Fatal error: " + e.Message.Text()
	}
	return "Unknown message: " + e.Message.Text()
}

// NewHaltError creates a HaltError for msg
func NewHaltError(msg Message) error {
	return &HaltError{Message: msg}
}

// IsHalt reports whether err is or wraps a HaltError
func IsHalt(err error) bool {
	var h *HaltError
	return errors.As(err, &h)
}

// IsSinkFailure reports whether err is or wraps a SinkError
func IsSinkFailure(err error) bool {
	var s *SinkError
	return errors.As(err, &s)
}
