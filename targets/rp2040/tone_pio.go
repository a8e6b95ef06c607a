//go:build rp2040

package main

import (
	"machine"

	rp2pio "github.com/tinygo-org/pio/rp2-pio"
)

// PIO square wave sidetone: two set instructions with 15 idle cycles
// each, giving 32 PIO cycles per tone period. The audio frequency is set
// with the state machine clock divider, leaving the CPU out of the
// waveform entirely.
func buildToneProgram() []uint16 {
	asm := rp2pio.AssemblerV0{SidesetBits: 0}
	return []uint16{
		// .wrap_target
		asm.Set(rp2pio.SetDestPins, 1).Delay(15).Encode(), // 0: set pins, 1 [15]
		asm.Set(rp2pio.SetDestPins, 0).Delay(15).Encode(), // 1: set pins, 0 [15]
		// .wrap
	}
}

const (
	toneCyclesPerPeriod = 32
	toneProgramOrigin   = 0
)

type pioTone struct {
	pio    *rp2pio.PIO
	sm     rp2pio.StateMachine
	pin    machine.Pin
	offset uint8
	length uint8
}

func newPIOTone(pin machine.Pin) (*pioTone, error) {
	pioHW := rp2pio.PIO1
	sm := pioHW.StateMachine(0)
	sm.TryClaim()

	program := buildToneProgram()
	offset, err := pioHW.AddProgram(program, toneProgramOrigin)
	if err != nil {
		return nil, err
	}

	return &pioTone{
		pio:    pioHW,
		sm:     sm,
		pin:    pin,
		offset: offset,
		length: uint8(len(program)),
	}, nil
}

func (t *pioTone) StartTone(freqHz uint32) {
	t.pin.Configure(machine.PinConfig{Mode: t.pio.PinMode()})
	t.sm.SetPindirsConsecutive(t.pin, 1, true)

	cfg := rp2pio.DefaultStateMachineConfig()
	cfg.SetSetPins(t.pin, 1)
	cfg.SetWrap(t.offset+t.length-1, t.offset)

	// PIO clock = sysclk / divider; one tone period is 32 PIO cycles.
	target := uint64(freqHz) * toneCyclesPerPeriod
	cpu := uint64(machine.CPUFrequency())
	whole := uint16(cpu / target)
	frac := uint8((cpu % target) * 256 / target)
	cfg.SetClkDivIntFrac(whole, frac)

	t.sm.Init(t.offset, cfg)
	t.sm.SetEnabled(true)
}

func (t *pioTone) StopTone() {
	t.sm.SetEnabled(false)
	t.sm.ClearFIFOs()
	t.sm.Restart()
	// Park the pin low as plain GPIO so the output is not left keyed
	// mid-cycle.
	t.pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	t.pin.Low()
}
