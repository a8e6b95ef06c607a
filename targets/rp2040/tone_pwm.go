//go:build rp2040

package main

import "machine"

// pwmPeripheral abstracts over TinyGo's unexported *pwmGroup type.
type pwmPeripheral interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Top() uint32
	Set(channel uint8, value uint32)
}

// pwmTone generates the sidetone with a hardware PWM slice at 50% duty.
type pwmTone struct {
	pin        machine.Pin
	slice      pwmPeripheral
	channel    uint8
	configured bool
}

func newPWMTone(pin machine.Pin) *pwmTone {
	return &pwmTone{pin: pin, slice: pwmSliceForPin(pin)}
}

// StartTone reconfigures the slice period for the requested audio
// frequency and keys the output at half duty.
func (t *pwmTone) StartTone(freqHz uint32) {
	period := uint64(1_000_000_000) / uint64(freqHz)
	if err := t.slice.Configure(machine.PWMConfig{Period: period}); err != nil {
		return
	}
	ch, err := t.slice.Channel(t.pin)
	if err != nil {
		return
	}
	t.channel = ch
	t.configured = true
	t.slice.Set(ch, t.slice.Top()/2)
}

// StopTone silences the output by dropping the duty cycle to zero.
func (t *pwmTone) StopTone() {
	if !t.configured {
		return
	}
	t.slice.Set(t.channel, 0)
}

// pwmSliceForPin maps a GPIO pin to its PWM slice.
// RP2040: GPIO pin N belongs to slice (N >> 1) & 0x7.
func pwmSliceForPin(pin machine.Pin) pwmPeripheral {
	switch (uint32(pin) >> 1) & 0x7 {
	case 0:
		return machine.PWM0
	case 1:
		return machine.PWM1
	case 2:
		return machine.PWM2
	case 3:
		return machine.PWM3
	case 4:
		return machine.PWM4
	case 5:
		return machine.PWM5
	case 6:
		return machine.PWM6
	default:
		return machine.PWM7
	}
}
