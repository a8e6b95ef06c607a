//go:build rp2040

package main

import (
	"machine"
	"time"

	"github.com/JibRay/80meterTransmitter/core"
	"github.com/JibRay/80meterTransmitter/synth/si5351"
)

// Board wiring.
const (
	ditPin  = machine.GP2
	dahPin  = machine.GP3
	tonePin = machine.GP15
	sdaPin  = machine.GP4
	sclPin  = machine.GP5
)

func main() {
	// Give USB CDC time to enumerate so early messages are not lost.
	time.Sleep(2 * time.Second)

	err := machine.I2C0.Configure(machine.I2CConfig{
		SDA:       sdaPin,
		SCL:       sclPin,
		Frequency: 400 * machine.KHz,
	})
	if err != nil {
		println("i2c init failed:", err.Error())
		return
	}

	synth := si5351.New(machine.I2C0)
	if !synth.Connected() {
		println("si5351 not responding on i2c")
		return
	}
	if err := synth.Init(); err != nil {
		// Fatal: do not enter the control loop without a synthesizer.
		println("si5351 init failed:", err.Error())
		return
	}
	if err := initAuxOutputs(synth); err != nil {
		println("si5351 aux outputs failed:", err.Error())
		return
	}

	timing := core.NewTiming(core.DefaultWPM)
	ctl := core.NewController(
		newPaddleInput(ditPin, dahPin),
		newToneDriver(),
		synth,
		machine.Serial,
		timing,
	)

	println(core.Version, "ready")

	for {
		updateSystemTime()
		ctl.Poll(core.Now())
	}
}

// initAuxOutputs programs the two fixed auxiliary outputs. Output 1 is
// the operator-tunable transmit output and is programmed by the f
// command.
func initAuxOutputs(d *si5351.Device) error {
	if err := d.SetupPLL(core.PLLA, core.PLLMult, 0, core.FracDenom); err != nil {
		return err
	}
	// CLK0: 10 MHz calibration marker (900 MHz / 90).
	if err := d.SetupMultisynth(0, core.PLLA, 90, 0, core.FracDenom); err != nil {
		return err
	}
	// CLK2: 4 MHz band edge marker (900 MHz / 225).
	return d.SetupMultisynth(2, core.PLLA, 225, 0, core.FracDenom)
}
