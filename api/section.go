// File: api/section.go
// Package api defines the critical-section capability.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Section is a scoped critical-section primitive supplied by the
// embedding environment. On embedded targets this maps to masking
// interrupt delivery; on hosted targets a mutex or CAS spin serves.
//
// Callers bracket an operation body with Acquire and a deferred
// Release so the prior state is restored on every exit path. Sections
// are not reentrant: a context already inside a section must not
// re-enter it.
type Section interface {
	// Acquire enters the critical section.
	Acquire()
	// Release leaves the critical section, restoring the prior state.
	Release()
}
