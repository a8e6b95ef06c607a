//go:build rp2040

package main

import (
	"runtime/volatile"
	"unsafe"

	"github.com/JibRay/80meterTransmitter/core"
)

// RP2040 timer peripheral: a 64-bit microsecond counter at 1MHz.
const (
	timerBase     = 0x40054000
	timerTIMERAWH = timerBase + 0x08 // Raw timer high word
	timerTIMERAWL = timerBase + 0x0C // Raw timer low word
)

var (
	timerRAWH = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWH)))
	timerRAWL = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWL)))
)

// hardwareUptimeUS reads the full 64-bit microsecond counter.
func hardwareUptimeUS() uint64 {
	// Must read high, then low, then high again to detect rollover.
	for {
		high1 := timerRAWH.Get()
		low := timerRAWL.Get()
		high2 := timerRAWH.Get()

		if high1 == high2 {
			return (uint64(high1) << 32) | uint64(low)
		}
		// Rollover happened during the read, retry.
	}
}

// updateSystemTime refreshes the core millisecond clock from the
// hardware timer. Called once per control loop iteration.
func updateSystemTime() {
	core.SetNow(uint32(hardwareUptimeUS() / 1000))
}
