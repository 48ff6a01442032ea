package telemetry

import (
	"sync/atomic"
	"time"
)

// Metrics counts queue operations. The zero value is ready to use.
type Metrics struct {
	inserts   atomic.Uint64
	removals  atomic.Uint64
	failures  atomic.Uint64
	reversals atomic.Uint64
	sorts     atomic.Uint64
	sortNanos atomic.Int64
}

// Stats is a point-in-time copy of Metrics.
type Stats struct {
	Inserts   uint64
	Removals  uint64
	Failures  uint64
	Reversals uint64
	Sorts     uint64
	// AverageSort is the mean duration of recorded sorts.
	AverageSort time.Duration
}

// NewMetrics returns an empty metrics set.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// Insert records a successful insertion.
func (m *Metrics) Insert() {
	if m != nil {
		m.inserts.Add(1)
	}
}

// Remove records a successful removal.
func (m *Metrics) Remove() {
	if m != nil {
		m.removals.Add(1)
	}
}

// Fail records an operation that returned a failure.
func (m *Metrics) Fail() {
	if m != nil {
		m.failures.Add(1)
	}
}

// Reverse records a reversal.
func (m *Metrics) Reverse() {
	if m != nil {
		m.reversals.Add(1)
	}
}

// TraceSort starts timing a sort and returns the function that finishes it.
func (m *Metrics) TraceSort() func() {
	if m == nil {
		return func() {}
	}
	start := time.Now()
	return func() {
		m.sortNanos.Add(time.Since(start).Nanoseconds())
		m.sorts.Add(1)
	}
}

// Snapshot returns the collected values.
func (m *Metrics) Snapshot() Stats {
	if m == nil {
		return Stats{}
	}
	s := Stats{
		Inserts:   m.inserts.Load(),
		Removals:  m.removals.Load(),
		Failures:  m.failures.Load(),
		Reversals: m.reversals.Load(),
		Sorts:     m.sorts.Load(),
	}
	if s.Sorts > 0 {
		s.AverageSort = time.Duration(m.sortNanos.Load() / int64(s.Sorts))
	}
	return s
}

// Reset sets every counter back to zero.
func (m *Metrics) Reset() {
	if m == nil {
		return
	}
	m.inserts.Store(0)
	m.removals.Store(0)
	m.failures.Store(0)
	m.reversals.Store(0)
	m.sorts.Store(0)
	m.sortNanos.Store(0)
}
