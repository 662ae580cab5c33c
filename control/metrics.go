// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Runtime counter registry for ring observability.
// Exposes counters in a thread-safe map with dynamic registration.

package control

import (
	"sync"
	"time"
)

// MetricsRegistry holds named monotonic counters.
type MetricsRegistry struct {
	mu       sync.Mutex
	counters map[string]int64
	updated  time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		counters: make(map[string]int64),
	}
}

// Inc adds delta to the named counter, creating it at zero first.
func (mr *MetricsRegistry) Inc(key string, delta int64) {
	mr.mu.Lock()
	mr.counters[key] += delta
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// Get returns the current value of the named counter.
func (mr *MetricsRegistry) Get(key string) int64 {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	return mr.counters[key]
}

// Snapshot returns a copy of all counters.
func (mr *MetricsRegistry) Snapshot() map[string]int64 {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	out := make(map[string]int64, len(mr.counters))
	for k, v := range mr.counters {
		out[k] = v
	}
	return out
}

// Updated returns the time of the last counter change.
func (mr *MetricsRegistry) Updated() time.Time {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	return mr.updated
}
