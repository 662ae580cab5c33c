// Package ringbuf
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-capacity FIFO ring buffer with pluggable critical-section
// protection, built for the single-interrupt-vs-mainline reentrancy
// model: one side of the producer/consumer pair may preempt the other
// mid-operation on the same core. Storage is allocated exactly once at
// construction; no operation allocates, blocks, panics, or spawns
// goroutines, so every operation is safe to call from an interrupt-style
// context. See section.go for the bundled Section implementations and
// the concurrency package for the lock-free SPSC alternative.
package ringbuf
