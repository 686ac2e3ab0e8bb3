package metrics

import (
	"sync"
	"testing"
)

func TestDisabledMetricsNoOp(t *testing.T) {
	m := New(Config{Enabled: false})

	m.Inc(MetricLoginSuccess)
	if got := m.Value(MetricLoginSuccess); got != 0 {
		t.Fatalf("Value = %d, want 0", got)
	}
	if snap := m.Snapshot(); len(snap.Counters) != 0 {
		t.Fatalf("Snapshot counters = %v, want empty", snap.Counters)
	}

	var nilMetrics *Metrics
	nilMetrics.Inc(MetricLogout)
	if nilMetrics.Enabled() {
		t.Fatal("nil metrics must report disabled")
	}
}

func TestIncAndSnapshot(t *testing.T) {
	m := New(Config{Enabled: true})

	m.Inc(MetricLoginSuccess)
	m.Inc(MetricLoginSuccess)
	m.Inc(MetricGuardRedirectLogin)

	if got := m.Value(MetricLoginSuccess); got != 2 {
		t.Fatalf("login success = %d, want 2", got)
	}

	snap := m.Snapshot()
	if snap.Counters[MetricLoginSuccess] != 2 {
		t.Fatalf("snapshot login success = %d, want 2", snap.Counters[MetricLoginSuccess])
	}
	if snap.Counters[MetricGuardRedirectLogin] != 1 {
		t.Fatalf("snapshot redirect login = %d, want 1", snap.Counters[MetricGuardRedirectLogin])
	}

	// Snapshot is a copy, not a view.
	m.Inc(MetricLoginSuccess)
	if snap.Counters[MetricLoginSuccess] != 2 {
		t.Fatal("snapshot mutated by later increments")
	}
}

func TestIncConcurrent(t *testing.T) {
	m := New(Config{Enabled: true})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				m.Inc(MetricGuardRender)
			}
		}()
	}
	wg.Wait()

	if got := m.Value(MetricGuardRender); got != 8000 {
		t.Fatalf("guard render = %d, want 8000", got)
	}
}

func TestOutOfRangeID(t *testing.T) {
	m := New(Config{Enabled: true})
	m.Inc(MetricIDCount + 10)
	if got := m.Value(MetricIDCount + 10); got != 0 {
		t.Fatalf("Value = %d, want 0", got)
	}
}
