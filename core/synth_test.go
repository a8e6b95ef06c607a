package core

import (
	"math"
	"testing"
)

type pllCall struct {
	pll      PLL
	mult     uint8
	num, den uint32
}

type msCall struct {
	output        uint8
	pll           PLL
	div, num, den uint32
}

// fakeSynth records configuration calls in order.
type fakeSynth struct {
	order   []string
	plls    []pllCall
	ms      []msCall
	enables []bool
}

func (f *fakeSynth) SetupPLL(pll PLL, mult uint8, num, den uint32) error {
	f.order = append(f.order, "pll")
	f.plls = append(f.plls, pllCall{pll, mult, num, den})
	return nil
}

func (f *fakeSynth) SetupMultisynth(output uint8, pll PLL, div, num, den uint32) error {
	f.order = append(f.order, "multisynth")
	f.ms = append(f.ms, msCall{output, pll, div, num, den})
	return nil
}

func (f *fakeSynth) EnableOutputs(on bool) error {
	f.order = append(f.order, "enable")
	f.enables = append(f.enables, on)
	return nil
}

func TestTxDivider(t *testing.T) {
	tests := []struct {
		freqHz   uint32
		div, num uint32
	}{
		// 900 MHz / 3.56 MHz = 252.80898..., truncated to 252 + 808/1000.
		{3_560_000, 252, 808},
		// Exact integer ratios quantize to a zero numerator.
		{3_600_000, 250, 0},
		{4_000_000, 225, 0},
		// 900 / 3.5 = 257.142857...
		{3_500_000, 257, 142},
	}

	for _, test := range tests {
		div, num := TxDivider(test.freqHz)
		if div != test.div || num != test.num {
			t.Errorf("TxDivider(%d): expected %d + %d/1000, got %d + %d/1000",
				test.freqHz, test.div, test.num, div, num)
		}
	}
}

func TestTxDividerRoundTrip(t *testing.T) {
	const target = 3_560_000.0

	div, num := TxDivider(uint32(target))
	pll := float64(RefFreqHz) * float64(PLLMult)
	applied := pll / (float64(div) + float64(num)/float64(FracDenom))

	// One numerator step moves the output by about pll/(div^2 * 1000);
	// truncation can be off by at most one step.
	step := pll/float64(div) - pll/(float64(div)+1.0/float64(FracDenom))
	if diff := math.Abs(applied - target); diff > step {
		t.Errorf("applied %.1f Hz is %.1f Hz from target, above quantization step %.1f Hz",
			applied, diff, step)
	}
}

func TestSetFrequencyProgramsSynth(t *testing.T) {
	drv := &fakeSynth{}
	s := NewSynth(drv)

	if err := s.SetFrequency(3_560_000); err != nil {
		t.Fatalf("SetFrequency failed: %v", err)
	}

	// PLL first, then the divider, then outputs on.
	want := []string{"pll", "multisynth", "enable"}
	if len(drv.order) != len(want) {
		t.Fatalf("expected call order %v, got %v", want, drv.order)
	}
	for i := range want {
		if drv.order[i] != want[i] {
			t.Fatalf("expected call order %v, got %v", want, drv.order)
		}
	}

	if got := drv.plls[0]; got != (pllCall{PLLA, 36, 0, 1000}) {
		t.Errorf("unexpected PLL setup %+v", got)
	}
	if got := drv.ms[0]; got != (msCall{TxOutput, PLLA, 252, 808, 1000}) {
		t.Errorf("unexpected multisynth setup %+v", got)
	}
	if !drv.enables[0] {
		t.Error("expected outputs enabled")
	}
}

func TestSetFrequencyBandLimits(t *testing.T) {
	accepted := []uint32{3_500_000, 4_000_000}
	for _, hz := range accepted {
		drv := &fakeSynth{}
		if err := NewSynth(drv).SetFrequency(hz); err != nil {
			t.Errorf("%d Hz should be accepted: %v", hz, err)
		}
	}

	rejected := []uint32{3_499_999, 4_000_001, 0, 7_000_000}
	for _, hz := range rejected {
		drv := &fakeSynth{}
		if err := NewSynth(drv).SetFrequency(hz); err != ErrFreqOutOfRange {
			t.Errorf("%d Hz: expected ErrFreqOutOfRange, got %v", hz, err)
		}
		if len(drv.order) != 0 {
			t.Errorf("%d Hz: synthesizer must stay unchanged, got calls %v", hz, drv.order)
		}
	}
}
