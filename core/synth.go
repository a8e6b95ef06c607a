package core

import "errors"

// Synthesizer plan for the 80 meter band: PLL A runs at a fixed 900 MHz
// (25 MHz reference x36) and the transmit frequency is derived from it
// with a fractional multisynth divider.
const (
	RefFreqHz uint64 = 25_000_000
	PLLMult   uint8  = 36

	// FracDenom is the fixed denominator of the divider fraction, giving
	// three decimal digits of divider resolution.
	FracDenom uint32 = 1000

	// Band limits, inclusive.
	MinFreqHz uint32 = 3_500_000
	MaxFreqHz uint32 = 4_000_000

	// TxOutput is the multisynth output that drives the transmitter.
	TxOutput uint8 = 1
)

// ErrFreqOutOfRange reports a requested frequency outside the band.
var ErrFreqOutOfRange = errors.New("frequency out of range (3.5 to 4.0 MHz)")

// Synth programs the clock generator for a requested transmit frequency.
type Synth struct {
	drv SynthDriver
}

// NewSynth creates a frequency programmer over the given synthesizer.
func NewSynth(drv SynthDriver) *Synth {
	return &Synth{drv: drv}
}

// TxDivider computes the multisynth divider for a transmit frequency:
// the integer part of (RefFreqHz * PLLMult) / freqHz, truncated, and the
// remainder quantized to a numerator over FracDenom (0..999). The
// truncate-then-quantize order matches the synthesizer's expected
// programming within its resolution.
func TxDivider(freqHz uint32) (div, num uint32) {
	pllHz := RefFreqHz * uint64(PLLMult)
	div = uint32(pllHz / uint64(freqHz))
	rem := pllHz % uint64(freqHz)
	num = uint32(rem * uint64(FracDenom) / uint64(freqHz))
	return div, num
}

// SetFrequency range-checks freqHz and programs the PLL and the transmit
// output divider. On an out-of-range frequency the synthesizer is left
// unchanged.
func (s *Synth) SetFrequency(freqHz uint32) error {
	if freqHz < MinFreqHz || freqHz > MaxFreqHz {
		return ErrFreqOutOfRange
	}

	if err := s.drv.SetupPLL(PLLA, PLLMult, 0, FracDenom); err != nil {
		return err
	}

	div, num := TxDivider(freqHz)
	if err := s.drv.SetupMultisynth(TxOutput, PLLA, div, num, FracDenom); err != nil {
		return err
	}

	return s.drv.EnableOutputs(true)
}
