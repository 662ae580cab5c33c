// File: ringbuf/ringbuf.go
// Package ringbuf implements the critical-section-protected FIFO ring.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// RingBuf is a bounded circular buffer tracking a head index and an
// element count. The valid elements occupy the count slots ending at
// head, wrapping around the fixed backing store. Every public
// operation runs inside the configured Section, so it appears atomic
// to the one context that may preempt it.

package ringbuf

import (
	"github.com/momentics/ringbuf/api"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*RingBuf[any])(nil)

// noCopy triggers go vet's copylocks check on by-value copies.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// RingBuf is a fixed-capacity FIFO ring buffer.
//
// A RingBuf is a single-owner value: copying one after first use would
// duplicate head/count state against a shared Section, so it must be
// passed by pointer. Storage is allocated once in New and never
// resized.
type RingBuf[T any] struct {
	noCopy noCopy

	sec   api.Section
	buf   []T
	head  int // next free write slot
	count int // valid elements, 0..len(buf)
}

// New creates a ring buffer holding at most capacity elements.
// A capacity below 1 is clamped to 1. The default Section is a
// MutexSection; single-context callers may pass WithSection(NopSection{}).
func New[T any](capacity int, opts ...Option[T]) *RingBuf[T] {
	if capacity < 1 {
		capacity = 1
	}
	b := &RingBuf[T]{
		sec: &MutexSection{},
		buf: make([]T, capacity),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Cap returns the fixed capacity. The backing store never changes
// after New, so no critical section is needed.
func (b *RingBuf[T]) Cap() int {
	return len(b.buf)
}

// Len returns the current number of buffered elements.
func (b *RingBuf[T]) Len() int {
	b.sec.Acquire()
	defer b.sec.Release()
	return b.count
}

// Empty reports whether the buffer holds no elements.
func (b *RingBuf[T]) Empty() bool {
	b.sec.Acquire()
	defer b.sec.Release()
	return b.count == 0
}

// Full reports whether the buffer is at capacity.
func (b *RingBuf[T]) Full() bool {
	b.sec.Acquire()
	defer b.sec.Release()
	return b.count == len(b.buf)
}

// Clear removes all elements and rewinds the head. Always succeeds.
// Vacated slots keep their old values until overwritten by a future
// push.
func (b *RingBuf[T]) Clear() {
	b.sec.Acquire()
	defer b.sec.Release()
	b.head = 0
	b.count = 0
}

// Push appends item; returns false without mutation if the buffer is
// full.
func (b *RingBuf[T]) Push(item T) bool {
	return b.push(item, false)
}

// ForcePush appends item, discarding the oldest element when the
// buffer is full. The displaced element is not returned; callers that
// need it must Poll first. Always returns true.
func (b *RingBuf[T]) ForcePush(item T) bool {
	return b.push(item, true)
}

func (b *RingBuf[T]) push(item T, force bool) bool {
	b.sec.Acquire()
	defer b.sec.Release()

	space := b.count < len(b.buf)
	if !space && !force {
		return false
	}
	b.buf[b.head] = item
	b.head++
	if b.head >= len(b.buf) {
		b.head = 0
	}
	if space {
		b.count++
	}
	// When full and forced, head advances over the old tail and count
	// stays pinned at capacity.
	return true
}

// Peek copies out the index-th oldest element without removing it.
// Index 0 is the oldest element, Len()-1 the newest. Returns the zero
// value and false when index is out of range at the moment of the
// check.
func (b *RingBuf[T]) Peek(index int) (T, bool) {
	var zero T
	b.sec.Acquire()
	defer b.sec.Release()

	if index < 0 || index >= b.count {
		return zero, false
	}
	return b.buf[b.slotOf(index)], true
}

// Inspect runs fn on the index-th oldest element inside the critical
// section, for element types too large to copy or callers needing a
// read-modify view. The pointer passed to fn aliases live storage and
// must not escape the callback. Returns false without calling fn when
// index is out of range.
func (b *RingBuf[T]) Inspect(index int, fn func(*T)) bool {
	b.sec.Acquire()
	defer b.sec.Release()

	if index < 0 || index >= b.count {
		return false
	}
	fn(&b.buf[b.slotOf(index)])
	return true
}

// Poll removes the oldest element. When dst is non-nil the element is
// copied into it first; a nil dst discards the element. Returns false
// with dst untouched if the buffer is empty. The vacated slot is not
// zeroed: for pointer element types the pointee stays reachable until
// a wraparound write replaces it.
func (b *RingBuf[T]) Poll(dst *T) bool {
	b.sec.Acquire()
	defer b.sec.Release()

	if b.count == 0 {
		return false
	}
	if dst != nil {
		*dst = b.buf[b.tailIndex()]
	}
	b.count--
	return true
}

// Pop removes and returns the oldest element; ok is false when the
// buffer is empty.
func (b *RingBuf[T]) Pop() (T, bool) {
	var item T
	ok := b.Poll(&item)
	return item, ok
}

// slotOf maps a logical FIFO index to its backing slot. Must be called
// inside the critical section with index already range-checked.
func (b *RingBuf[T]) slotOf(index int) int {
	slot := b.tailIndex() + index
	if slot >= len(b.buf) {
		slot -= len(b.buf)
	}
	return slot
}

// tailIndex returns the backing slot of the oldest element. At full
// capacity head and tail coincide. Must be called inside the critical
// section.
func (b *RingBuf[T]) tailIndex() int {
	switch {
	case b.count == len(b.buf):
		return b.head
	case b.head >= b.count:
		return b.head - b.count
	default:
		return len(b.buf) + b.head - b.count
	}
}
