// Package concurrency
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Lock-free single-producer/single-consumer ring buffer for hosted
// targets, where the interrupt-vs-mainline pair maps to exactly one
// producer goroutine and one consumer goroutine. For indexed peeks,
// force-push, or any call pattern beyond strict SPSC, use the
// critical-section ring in the ringbuf package instead.
package concurrency
