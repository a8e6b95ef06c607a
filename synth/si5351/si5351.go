// Package si5351 is a register-level driver for the Si5351A clock
// generator. It speaks to the chip through the hardware-agnostic
// drivers.I2C interface and implements core.SynthDriver.
//
// Register layout and parameter encoding follow the Si5351A datasheet
// and AN619: each PLL and multisynth stage takes a P1/P2/P3 triple
// packed into eight consecutive registers.
package si5351

import (
	"errors"

	"tinygo.org/x/drivers"

	"github.com/JibRay/80meterTransmitter/core"
)

// DefaultAddress is the 7-bit I2C address of the Si5351A.
const DefaultAddress = 0x60

// Register addresses.
const (
	regDeviceStatus = 0
	regOutputEnable = 3
	regClkControl   = 16 // CLK0; CLKn is regClkControl+n
	regMSNAParams   = 26 // PLL A parameter block
	regMSNBParams   = 34 // PLL B parameter block
	regMS0Params    = 42 // multisynth 0; MSn is regMS0Params+8*n
	regPLLReset     = 177
	regCrystalLoad  = 183
)

// CLKn control bits.
const (
	clkPowerDown        = 0x80
	clkIntegerMode      = 0x40
	clkSourcePLLB       = 0x20
	clkSourceMultisynth = 0x0C
	clkDrive8mA         = 0x03
)

const (
	pllResetA = 0x20
	pllResetB = 0x80

	crystalLoad10pF = 0xD2
)

var (
	ErrBadMultiplier = errors.New("si5351: PLL multiplier out of range")
	ErrBadDivider    = errors.New("si5351: multisynth divider out of range")
	ErrBadFraction   = errors.New("si5351: fractional part out of range")
	ErrBadOutput     = errors.New("si5351: no such output")
)

// Device drives one Si5351A over I2C.
type Device struct {
	bus  drivers.I2C
	addr uint16
}

// New creates a driver at the default chip address.
func New(bus drivers.I2C) *Device {
	return &Device{bus: bus, addr: DefaultAddress}
}

// NewAt creates a driver at a non-default chip address.
func NewAt(bus drivers.I2C, addr uint16) *Device {
	return &Device{bus: bus, addr: addr}
}

// Connected probes the device status register to check the chip is
// responding on the bus.
func (d *Device) Connected() bool {
	var status [1]byte
	return d.bus.Tx(d.addr, []byte{regDeviceStatus}, status[:]) == nil
}

// Init puts the chip in a known state: all outputs disabled, all clock
// control blocks powered down, crystal load capacitance set. A failure
// here means the chip is absent or the bus is broken, which is fatal at
// startup.
func (d *Device) Init() error {
	if err := d.writeRegister(regOutputEnable, 0xFF); err != nil {
		return err
	}
	for n := uint8(0); n < 8; n++ {
		if err := d.writeRegister(regClkControl+n, clkPowerDown); err != nil {
			return err
		}
	}
	return d.writeRegister(regCrystalLoad, crystalLoad10pF)
}

// SetupPLL configures a PLL stage to mult + num/den times the crystal
// reference and resets the PLL so the new ratio takes effect.
func (d *Device) SetupPLL(pll core.PLL, mult uint8, num, den uint32) error {
	if mult < 15 || mult > 90 {
		return ErrBadMultiplier
	}
	if err := checkFraction(num, den); err != nil {
		return err
	}

	base := uint8(regMSNAParams)
	reset := uint8(pllResetA)
	if pll == core.PLLB {
		base = regMSNBParams
		reset = pllResetB
	}

	p1, p2, p3 := packParams(uint32(mult), num, den)
	if err := d.writeParams(base, p1, p2, p3); err != nil {
		return err
	}
	return d.writeRegister(regPLLReset, reset)
}

// SetupMultisynth configures output divider stage `output` to
// div + num/den of the given PLL and powers up its clock control block.
func (d *Device) SetupMultisynth(output uint8, pll core.PLL, div, num, den uint32) error {
	if output > 2 {
		return ErrBadOutput
	}
	if div < 4 || div > 2048 {
		return ErrBadDivider
	}
	if err := checkFraction(num, den); err != nil {
		return err
	}

	p1, p2, p3 := packParams(div, num, den)
	if err := d.writeParams(regMS0Params+8*output, p1, p2, p3); err != nil {
		return err
	}

	ctrl := uint8(clkSourceMultisynth | clkDrive8mA)
	if pll == core.PLLB {
		ctrl |= clkSourcePLLB
	}
	if num == 0 {
		ctrl |= clkIntegerMode
	}
	return d.writeRegister(regClkControl+output, ctrl)
}

// EnableOutputs turns all clock outputs on or off via the output enable
// register (bits are active low).
func (d *Device) EnableOutputs(on bool) error {
	if on {
		return d.writeRegister(regOutputEnable, 0x00)
	}
	return d.writeRegister(regOutputEnable, 0xFF)
}

func checkFraction(num, den uint32) error {
	if den == 0 || den > 0xFFFFF || num > 0xFFFFF || (num != 0 && num >= den) {
		return ErrBadFraction
	}
	return nil
}

// packParams encodes an integer + num/den ratio into the chip's P1/P2/P3
// form (AN619 eq. 2 and 3).
func packParams(intPart, num, den uint32) (p1, p2, p3 uint32) {
	if num == 0 {
		return 128*intPart - 512, 0, 1
	}
	t := 128 * num / den
	p1 = 128*intPart + t - 512
	p2 = 128*num - den*t
	p3 = den
	return p1, p2, p3
}

// writeParams writes one packed parameter block starting at base.
func (d *Device) writeParams(base uint8, p1, p2, p3 uint32) error {
	return d.writeRegisters(base, []byte{
		byte(p3 >> 8),
		byte(p3),
		byte(p1>>16) & 0x03,
		byte(p1 >> 8),
		byte(p1),
		byte(p3>>12)&0xF0 | byte(p2>>16)&0x0F,
		byte(p2 >> 8),
		byte(p2),
	})
}

func (d *Device) writeRegister(reg, value uint8) error {
	return d.bus.Tx(d.addr, []byte{reg, value}, nil)
}

func (d *Device) writeRegisters(reg uint8, values []byte) error {
	buf := make([]byte, 0, 9)
	buf = append(buf, reg)
	buf = append(buf, values...)
	return d.bus.Tx(d.addr, buf, nil)
}
