// File: adapters/drain.go
// Package adapters bridges bounded rings to mainline work queues.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Drainer implements the standard two-stage pattern for interrupt-fed
// rings: the interrupt side pushes into a small fixed ring, and the
// mainline periodically drains it into an unbounded FIFO queue where
// allocation and unbounded growth are acceptable. Drain and Next must
// run in mainline context only; the ring's own Section covers the
// contention with the interrupt side.

package adapters

import (
	"github.com/eapache/queue"

	"github.com/momentics/ringbuf/api"
	"github.com/momentics/ringbuf/control"
)

// Drainer moves elements from a bounded Ring into an unbounded queue.
type Drainer[T any] struct {
	ring    api.Ring[T]
	backlog *queue.Queue
	metrics *control.MetricsRegistry
}

// NewDrainer wraps ring. metrics may be nil to disable counting.
func NewDrainer[T any](ring api.Ring[T], metrics *control.MetricsRegistry) *Drainer[T] {
	return &Drainer[T]{
		ring:    ring,
		backlog: queue.New(),
		metrics: metrics,
	}
}

// Drain moves every element currently in the ring into the backlog,
// preserving FIFO order, and returns the number moved. A single call
// moves at most Cap() elements so a fast producer cannot pin the
// mainline inside Drain forever.
func (d *Drainer[T]) Drain() int {
	moved := 0
	limit := d.ring.Cap()
	var item T
	for moved < limit && d.ring.Poll(&item) {
		d.backlog.Add(item)
		moved++
	}
	if d.metrics != nil && moved > 0 {
		d.metrics.Inc("drained", int64(moved))
	}
	return moved
}

// Next removes and returns the oldest drained element; ok is false
// when the backlog is empty.
func (d *Drainer[T]) Next() (T, bool) {
	var zero T
	if d.backlog.Length() == 0 {
		return zero, false
	}
	return d.backlog.Remove().(T), true
}

// Pending returns the number of drained elements not yet consumed.
func (d *Drainer[T]) Pending() int {
	return d.backlog.Length()
}
