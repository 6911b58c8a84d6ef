package sink

import (
	"go.uber.org/multierr"
)

// MultiSink writes each line to several sinks
type MultiSink struct {
	sinks []Sink
}

// NewMultiSink creates a new multi-sink
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

// Write writes line to every sink, even when an earlier one fails.
// All failures are returned combined.
func (m *MultiSink) Write(line string) error {
	var err error
	for _, s := range m.sinks {
		err = multierr.Append(err, s.Write(line))
	}
	return err
}
