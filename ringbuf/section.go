// File: ringbuf/section.go
// Package ringbuf bundles hosted Section implementations.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Three critical-section flavors cover the hosted cases: NopSection
// for single-context callers, MutexSection as the safe default, and
// SpinSection as the closest analogue of a short interrupt-mask
// window. Embedded ports supply their own api.Section that masks
// interrupt delivery and restores the prior state on Release.

package ringbuf

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/momentics/ringbuf/api"
)

// Ensure compile-time interface compliance.
var (
	_ api.Section = NopSection{}
	_ api.Section = (*MutexSection)(nil)
	_ api.Section = (*SpinSection)(nil)
)

// NopSection is a zero-cost Section for callers that guarantee a
// single execution context (the hosted equivalent of "interrupts
// already disabled").
type NopSection struct{}

func (NopSection) Acquire() {}
func (NopSection) Release() {}

// MutexSection guards operations with a sync.Mutex. This is the
// default installed by New.
type MutexSection struct {
	mu sync.Mutex
}

func (s *MutexSection) Acquire() { s.mu.Lock() }
func (s *MutexSection) Release() { s.mu.Unlock() }

// SpinSection guards operations with a CAS spin loop, yielding the
// processor between attempts. Hold times inside RingBuf operations are
// bounded and short, which keeps spinning cheap; it never allocates
// and never parks the goroutine.
type SpinSection struct {
	locked uint32
}

func (s *SpinSection) Acquire() {
	for !atomic.CompareAndSwapUint32(&s.locked, 0, 1) {
		runtime.Gosched()
	}
}

func (s *SpinSection) Release() {
	atomic.StoreUint32(&s.locked, 0)
}
