// File: adapters/drain_test.go
// Package adapters tests the ring-to-queue drainer.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package adapters

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/momentics/ringbuf/control"
	"github.com/momentics/ringbuf/ringbuf"
)

func TestDrainer_MovesAllInOrder(t *testing.T) {
	ring := ringbuf.New[int](8)
	mr := control.NewMetricsRegistry()
	d := NewDrainer[int](ring, mr)

	for i := 0; i < 5; i++ {
		require.True(t, ring.Push(i))
	}

	moved := d.Drain()
	require.Equal(t, 5, moved)
	require.True(t, ring.Empty())
	require.Equal(t, 5, d.Pending())
	require.Equal(t, int64(5), mr.Get("drained"))

	for i := 0; i < 5; i++ {
		v, ok := d.Next()
		require.True(t, ok)
		require.Equal(t, i, v)
	}
	_, ok := d.Next()
	require.False(t, ok)
	require.Equal(t, 0, d.Pending())
}

func TestDrainer_EmptyRing(t *testing.T) {
	d := NewDrainer[string](ringbuf.New[string](4), nil)
	require.Equal(t, 0, d.Drain())
	_, ok := d.Next()
	require.False(t, ok)
}

func TestDrainer_RepeatedCycles(t *testing.T) {
	ring := ringbuf.New[int](4)
	mr := control.NewMetricsRegistry()
	d := NewDrainer[int](ring, mr)

	next := 0
	for cycle := 0; cycle < 3; cycle++ {
		for i := 0; i < 3; i++ {
			require.True(t, ring.Push(next))
			next++
		}
		require.Equal(t, 3, d.Drain())
	}
	require.Equal(t, int64(9), mr.Get("drained"))

	for want := 0; want < 9; want++ {
		v, ok := d.Next()
		require.True(t, ok)
		require.Equal(t, want, v)
	}
}

func TestDrainer_BoundedPerCall(t *testing.T) {
	ring := ringbuf.New[int](4)
	d := NewDrainer[int](ring, nil)
	for i := 0; i < 4; i++ {
		ring.Push(i)
	}
	// One Drain call moves at most Cap() elements.
	require.Equal(t, 4, d.Drain())
	require.Equal(t, 0, d.Drain())
}
