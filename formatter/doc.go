// Package formatter renders messages into the text lines that sinks write.
//
// TextFormatter produces the "<Label>: <text>" lines that downstream
// consumers of the log files match on. JSONFormatter produces one JSON
// object per line for machine consumers. Both accept a Config whose
// Labels map overrides the label for individual severities, which is how
// the fatal-error file writes "Fatal Error" while the console writes
// "Fatal error".
//
// Both formatters build lines in a pooled bytes.Buffer. Buffers larger
// than 64 KiB are not returned to the pool.
package formatter
