package telemetry

import (
	"testing"
	"time"
)

func TestMetricsRecordsOperations(t *testing.T) {
	m := NewMetrics()

	m.Insert()
	m.Insert()
	m.Remove()
	m.Fail()
	m.Reverse()

	finish := m.TraceSort()
	time.Sleep(time.Millisecond)
	finish()

	s := m.Snapshot()
	if s.Inserts != 2 || s.Removals != 1 || s.Failures != 1 || s.Reversals != 1 || s.Sorts != 1 {
		t.Fatalf("unexpected counters: %+v", s)
	}
	if s.AverageSort <= 0 {
		t.Fatalf("expected average sort duration > 0, got %v", s.AverageSort)
	}

	m.Reset()
	if s := m.Snapshot(); s != (Stats{}) {
		t.Fatalf("expected metrics to reset to zero, got %+v", s)
	}
}

func TestMetricsAverageWithoutSorts(t *testing.T) {
	m := NewMetrics()
	m.Insert()
	if s := m.Snapshot(); s.AverageSort != 0 {
		t.Fatalf("expected zero average without sorts, got %v", s.AverageSort)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	m.Insert()
	m.Remove()
	m.Fail()
	m.Reverse()
	m.TraceSort()()
	m.Reset()

	if s := m.Snapshot(); s != (Stats{}) {
		t.Fatalf("expected empty snapshot from nil metrics, got %+v", s)
	}
}
