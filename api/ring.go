// File: api/ring.go
// Package api defines the fixed-capacity FIFO ring contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Ring is a fixed-capacity FIFO ring buffer contract.
//
// Every operation is total: full and empty conditions are reported
// through boolean returns, never through panics or blocking. Index 0
// always addresses the oldest buffered element.
type Ring[T any] interface {
	// Cap returns the fixed buffer capacity.
	Cap() int
	// Len returns the current number of buffered elements.
	Len() int
	// Empty reports whether Len() == 0.
	Empty() bool
	// Full reports whether Len() == Cap().
	Full() bool
	// Clear removes all elements. Always succeeds.
	Clear()
	// Push appends an element; returns false if the buffer is full.
	Push(item T) bool
	// ForcePush appends an element, overwriting the oldest one when
	// full. The displaced element is discarded, not returned.
	ForcePush(item T) bool
	// Peek copies out the index-th oldest element without removing it;
	// ok is false when index is out of range.
	Peek(index int) (item T, ok bool)
	// Poll removes the oldest element, copying it into dst when dst is
	// non-nil; returns false if the buffer is empty.
	Poll(dst *T) bool
}
