// Package core defines the shared types used across logchain.
//
// It provides the Severity type that every message is tagged with, the
// immutable Message value that travels down a handler chain, and the
// error types that describe how a dispatch can end:
//
//   - UnroutableError when no handler in the chain claims the severity.
//   - SinkError when the responsible handler could not write its target.
//   - HaltError when a handler's policy is to stop the caller outright.
//
// All three are returned as ordinary errors and inspected with
// errors.Is and errors.As.
package core
