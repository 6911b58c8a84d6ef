package logger

import (
	"github.com/philipp01105/logchain/core"
)

// Severity Re-export type and constants for convenience
type Severity = core.Severity

const (
	SeverityWarning = core.Warning
	SeverityError   = core.Error
	SeverityFatal   = core.FatalError
	SeverityUnknown = core.Unknown
)

// ParseSeverity converts a string to a Severity
func ParseSeverity(s string) (Severity, error) {
	return core.ParseSeverity(s)
}
