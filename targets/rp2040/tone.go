//go:build rp2040

package main

import "github.com/JibRay/80meterTransmitter/core"

// usePIOTone selects the PIO square wave backend for the sidetone
// instead of hardware PWM.
const usePIOTone = false

func newToneDriver() core.ToneDriver {
	if usePIOTone {
		if t, err := newPIOTone(tonePin); err == nil {
			return t
		}
		// Fall back to PWM if the PIO program could not be loaded.
	}
	return newPWMTone(tonePin)
}
