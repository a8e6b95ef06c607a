//go:build tinygo

package core

import "sync/atomic"

var clockMs uint32

// Now returns the monotonic system time in milliseconds. The target's
// main loop refreshes it from the hardware timer before each poll.
func Now() uint32 {
	return atomic.LoadUint32(&clockMs)
}

// SetNow sets the monotonic system time in milliseconds.
func SetNow(ms uint32) {
	atomic.StoreUint32(&clockMs, ms)
}
