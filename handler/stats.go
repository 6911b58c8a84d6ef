package handler

import (
	"sync/atomic"
)

// Outcome classifies how a dispatch ended
type Outcome int

const (
	// Handled means a handler claimed the message and recorded it
	Handled Outcome = iota
	// Unroutable means no handler claimed the message
	Unroutable
	// SinkFailed means the responsible handler could not record the message
	SinkFailed
	// Halted means the responsible handler deliberately stopped the caller
	Halted
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	switch o {
	case Handled:
		return "Handled"
	case Unroutable:
		return "Unroutable"
	case SinkFailed:
		return "SinkFailed"
	case Halted:
		return "Halted"
	default:
		return "Unknown"
	}
}

// Stats tracks dispatch outcomes
type Stats struct {
	HandledTotal    uint64
	UnroutableTotal uint64
	SinkFailedTotal uint64
	HaltedTotal     uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

func (s *Stats) counter(o Outcome) *uint64 {
	switch o {
	case Handled:
		return &s.HandledTotal
	case Unroutable:
		return &s.UnroutableTotal
	case SinkFailed:
		return &s.SinkFailedTotal
	case Halted:
		return &s.HaltedTotal
	default:
		return nil
	}
}

// Increment atomically increments the counter for an outcome
func (s *Stats) Increment(o Outcome) {
	if c := s.counter(o); c != nil {
		atomic.AddUint64(c, 1)
	}
}

// Get returns the count for an outcome
func (s *Stats) Get(o Outcome) uint64 {
	if c := s.counter(o); c != nil {
		return atomic.LoadUint64(c)
	}
	return 0
}

// Total returns the number of dispatches across all outcomes
func (s *Stats) Total() uint64 {
	return s.Get(Handled) + s.Get(Unroutable) + s.Get(SinkFailed) + s.Get(Halted)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.HandledTotal, 0)
	atomic.StoreUint64(&s.UnroutableTotal, 0)
	atomic.StoreUint64(&s.SinkFailedTotal, 0)
	atomic.StoreUint64(&s.HaltedTotal, 0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Outcomes map[Outcome]uint64
	Total    uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	snap := Snapshot{Outcomes: make(map[Outcome]uint64, 4)}
	for _, o := range []Outcome{Handled, Unroutable, SinkFailed, Halted} {
		n := s.Get(o)
		snap.Outcomes[o] = n
		snap.Total += n
	}
	return snap
}
