package core

// PaddleDriver reports the state of the two paddle levers. Signals are
// sampled fresh on every poll; the driver retains nothing.
type PaddleDriver interface {
	// DitClosed reports whether the dit lever is pressed.
	DitClosed() bool

	// DahClosed reports whether the dah lever is pressed.
	DahClosed() bool
}
