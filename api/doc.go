// Package api
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Contract layer for the ringbuf library.
// Defines the fixed-capacity FIFO ring contract and the pluggable
// critical-section capability supplied by the embedding environment.
// Implementations live in the ringbuf and concurrency packages and
// assert compliance at compile time.
package api
