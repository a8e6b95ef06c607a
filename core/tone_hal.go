package core

// ToneDriver is the abstract tone output that the keyer drives.
// Platform-specific implementations handle the actual oscillator
// (hardware PWM or a PIO state machine on the RP2040).
type ToneDriver interface {
	// StartTone starts oscillation at the given audio frequency.
	StartTone(freqHz uint32)

	// StopTone stops oscillation.
	StopTone()
}
