//go:build rp2040

package main

import "machine"

// paddleInput reads the two paddle levers. The levers short to ground
// when pressed, so the pins use pull-ups and closed reads low.
type paddleInput struct {
	dit machine.Pin
	dah machine.Pin
}

func newPaddleInput(dit, dah machine.Pin) *paddleInput {
	dit.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	dah.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return &paddleInput{dit: dit, dah: dah}
}

func (p *paddleInput) DitClosed() bool {
	return !p.dit.Get()
}

func (p *paddleInput) DahClosed() bool {
	return !p.dah.Get()
}
