package core

import (
	"fmt"
	"strings"
)

// Severity is the category tag carried by every log message.
// Severities are compared for equality only; there is no ordering.
type Severity uint8

const (
	// Warning messages are printed to the console by default
	Warning Severity = iota
	// Error messages are appended to an error log file by default
	Error
	// FatalError messages halt the caller when routed
	FatalError
	// Unknown is used for messages of no recognised category
	Unknown
)

// Severities lists every severity in declaration order
var Severities = [...]Severity{Warning, Error, FatalError, Unknown}

// pre-computed names and labels, indexed by Severity
var (
	severityNames = [...]string{
		Warning:    "WARNING",
		Error:      "ERROR",
		FatalError: "FATAL",
		Unknown:    "UNKNOWN",
	}
	severityLabels = [...]string{
		Warning:    "Warning",
		Error:      "Error",
		FatalError: "Fatal error",
		Unknown:    "Unknown",
	}
)

// String returns the canonical upper-case name of the severity
func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "UNKNOWN"
}

// Label returns the human-readable label written in front of message text.
// Log consumers match on these, so they must not change.
func (s Severity) Label() string {
	if int(s) < len(severityLabels) {
		return severityLabels[s]
	}
	return severityLabels[Unknown]
}

// Valid reports whether s is one of the declared severities
func (s Severity) Valid() bool {
	return int(s) < len(Severities)
}

// ParseSeverity converts a name to a Severity. Matching is case-insensitive.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "warning", "warn":
		return Warning, nil
	case "error", "err":
		return Error, nil
	case "fatal", "fatalerror", "fatal_error", "fatal-error":
		return FatalError, nil
	case "unknown":
		return Unknown, nil
	default:
		return Unknown, fmt.Errorf("unknown severity %q", s)
	}
}
