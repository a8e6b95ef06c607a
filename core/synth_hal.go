package core

// PLL identifies one of the synthesizer's two PLL stages.
type PLL uint8

const (
	PLLA PLL = iota
	PLLB
)

// SynthDriver is the abstract frequency synthesizer configuration
// interface. The register-level Si5351 implementation lives in
// synth/si5351.
type SynthDriver interface {
	// SetupPLL configures a PLL stage to multiply the crystal reference
	// by mult + num/den.
	SetupPLL(pll PLL, mult uint8, num, den uint32) error

	// SetupMultisynth configures an output divider to div + num/den of
	// the given PLL stage.
	SetupMultisynth(output uint8, pll PLL, div, num, den uint32) error

	// EnableOutputs turns all clock outputs on or off.
	EnableOutputs(on bool) error
}
