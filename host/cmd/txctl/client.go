package main

import (
	"fmt"
	"strings"

	"github.com/JibRay/80meterTransmitter/host/serial"
)

// conn is one open console session with the firmware.
type conn struct {
	port serial.Port
}

func dial() (*conn, error) {
	cfg := serial.DefaultConfig(device)
	cfg.Baud = baud
	cfg.ReadTimeout = timeout

	port, err := serial.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}
	return &conn{port: port}, nil
}

// exchange sends one protocol line and collects reply text until the
// read timeout expires. The firmware answers immediately, so the first
// quiet read window means the reply is complete.
func (c *conn) exchange(line string) (string, error) {
	if _, err := c.port.Write([]byte(line + "\n")); err != nil {
		return "", fmt.Errorf("write failed: %w", err)
	}

	var reply strings.Builder
	buf := make([]byte, 256)
	for {
		n, err := c.port.Read(buf)
		if n > 0 {
			reply.Write(buf[:n])
			continue
		}
		// Timeout or EOF ends the reply.
		if err != nil && reply.Len() == 0 {
			return "", fmt.Errorf("no reply: %w", err)
		}
		return reply.String(), nil
	}
}

func (c *conn) Close() error {
	return c.port.Close()
}
