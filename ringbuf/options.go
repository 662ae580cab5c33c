// File: ringbuf/options.go
// Package ringbuf defines functional options for RingBuf construction.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ringbuf

import "github.com/momentics/ringbuf/api"

// Option customizes RingBuf initialization.
type Option[T any] func(*RingBuf[T])

// WithSection installs the critical-section primitive guarding every
// operation. Pass NopSection{} for strictly single-context use, or a
// platform-supplied api.Section on embedded targets.
func WithSection[T any](sec api.Section) Option[T] {
	return func(b *RingBuf[T]) {
		if sec != nil {
			b.sec = sec
		}
	}
}
