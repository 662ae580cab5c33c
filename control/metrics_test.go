// control/metrics_test.go
// Author: momentics <momentics@gmail.com>

package control

import (
	"sync"
	"testing"
)

func TestMetricsRegistry_IncAndSnapshot(t *testing.T) {
	mr := NewMetricsRegistry()
	mr.Inc("drained", 3)
	mr.Inc("drained", 2)
	mr.Inc("dropped", 1)

	if got := mr.Get("drained"); got != 5 {
		t.Errorf("Expected drained = 5, got %d", got)
	}
	if got := mr.Get("missing"); got != 0 {
		t.Errorf("Unset counter should read 0, got %d", got)
	}

	snap := mr.Snapshot()
	if snap["drained"] != 5 || snap["dropped"] != 1 {
		t.Errorf("Unexpected snapshot: %v", snap)
	}
	// Snapshot is a copy, not a live view.
	snap["drained"] = 100
	if got := mr.Get("drained"); got != 5 {
		t.Errorf("Snapshot mutation leaked into registry: %d", got)
	}
}

func TestMetricsRegistry_ConcurrentInc(t *testing.T) {
	mr := NewMetricsRegistry()
	var wg sync.WaitGroup
	workers := 10
	iters := 1000
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < iters; i++ {
				mr.Inc("hits", 1)
			}
		}()
	}
	wg.Wait()
	if got := mr.Get("hits"); got != int64(workers*iters) {
		t.Errorf("Lost increments: got %d, want %d", got, workers*iters)
	}
}
