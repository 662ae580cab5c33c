// File: concurrency/ring.go
// Package concurrency implements the lock-free SPSC ring.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// RingBuffer is a bounded circular buffer with atomic head/tail,
// padded to prevent false sharing between the producer and consumer
// index. Capacity is rounded up to a power of two so slot mapping is a
// single mask.

package concurrency

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// RingBuffer is a lock-free ring buffer for one producer and one
// consumer. Calling Enqueue from more than one goroutine, or Dequeue
// from more than one goroutine, voids all guarantees.
type RingBuffer[T any] struct {
	mask    uint64
	entries []T
	_       cpu.CacheLinePad
	head    uint64 // consumer index
	_       cpu.CacheLinePad
	tail    uint64 // producer index
	_       cpu.CacheLinePad
}

// NewRingBuffer creates a ring with capacity rounded up to a power of
// two; a capacity below 1 is treated as 1.
func NewRingBuffer[T any](capacity int) *RingBuffer[T] {
	size := 1
	for size < capacity {
		size <<= 1
	}
	return &RingBuffer[T]{
		mask:    uint64(size - 1),
		entries: make([]T, size),
	}
}

// Enqueue adds item; returns false if full. Producer side only.
func (r *RingBuffer[T]) Enqueue(item T) bool {
	tail := atomic.LoadUint64(&r.tail)
	head := atomic.LoadUint64(&r.head)
	if tail-head >= uint64(len(r.entries)) {
		return false
	}
	r.entries[tail&r.mask] = item
	atomic.StoreUint64(&r.tail, tail+1)
	return true
}

// Dequeue removes and returns the oldest item; ok false if empty.
// Consumer side only.
func (r *RingBuffer[T]) Dequeue() (item T, ok bool) {
	head := atomic.LoadUint64(&r.head)
	tail := atomic.LoadUint64(&r.tail)
	if head >= tail {
		return item, false
	}
	item = r.entries[head&r.mask]
	atomic.StoreUint64(&r.head, head+1)
	return item, true
}

// Len returns the number of items currently buffered.
func (r *RingBuffer[T]) Len() int {
	head := atomic.LoadUint64(&r.head)
	tail := atomic.LoadUint64(&r.tail)
	return int(tail - head)
}

// Cap returns the rounded buffer capacity.
func (r *RingBuffer[T]) Cap() int {
	return len(r.entries)
}
