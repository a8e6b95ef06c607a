//go:build !tinygo

package core

var clockMs uint32

// Now returns the monotonic system time in milliseconds (regular Go
// implementation, settable for tests).
func Now() uint32 {
	return clockMs
}

// SetNow sets the monotonic system time in milliseconds.
func SetNow(ms uint32) {
	clockMs = ms
}
