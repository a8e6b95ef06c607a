// Package serial opens the transmitter's USB CDC console as a byte
// stream for the host tools.
package serial

import (
	"io"
)

// Port is one open console connection. Reads honor the configured
// timeout so a command exchange can detect the end of a reply.
type Port interface {
	io.ReadWriteCloser
}

// Config holds serial port configuration.
type Config struct {
	// Device path (e.g., "/dev/ttyACM0", "COM3")
	Device string

	// Baud rate (USB CDC ignores this)
	Baud int

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int
}

// DefaultConfig returns a default configuration for the transmitter's
// USB CDC console.
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200,
		ReadTimeout: 200, // long enough for the firmware to answer a line
	}
}
