package core

// Morse element timing derived from the code speed.
//
// The reference word is 50 dit units, so at w words per minute one dit
// lasts 60000/(50*w) = 1200/w milliseconds. A dah is three dit units and
// the silence between elements is one dit unit.

const (
	// DefaultWPM is the code speed the firmware boots with.
	DefaultWPM = 15

	dahUnits = 3
)

// Timing holds the element durations for the current code speed.
// Durations are in milliseconds of the monotonic system clock.
type Timing struct {
	wpm   uint32
	DitMs uint32
	DahMs uint32
}

// NewTiming creates timing parameters for the given code speed.
func NewTiming(wpm uint32) *Timing {
	t := &Timing{}
	t.SetWPM(wpm)
	return t
}

// SetWPM recomputes the element durations for a new code speed.
// A speed of zero is ignored.
func (t *Timing) SetWPM(wpm uint32) {
	if wpm == 0 {
		return
	}
	t.wpm = wpm
	t.DitMs = 1200 / wpm
	t.DahMs = dahUnits * t.DitMs
}

// WPM returns the current code speed.
func (t *Timing) WPM() uint32 {
	return t.wpm
}
