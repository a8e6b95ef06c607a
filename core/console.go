package core

// Firmware identity reported on the console.
const (
	Version = "80meterTransmitter 1.0.0"
	Ident   = "80 meter CW transmitter"
)

// lineBufCap bounds a command argument. Longer arguments are rejected
// and the command is dropped rather than silently truncated.
const lineBufCap = 16

type consoleState uint8

const (
	consoleIdle consoleState = iota
	consoleAwaitingArgument
)

type consoleCommand uint8

const (
	cmdNone consoleCommand = iota
	cmdVersion
	cmdHelp
	cmdFrequency
)

// lineBuffer is a bounded argument accumulator with explicit overflow
// signaling.
type lineBuffer struct {
	data [lineBufCap]byte
	n    int
}

func (b *lineBuffer) append(c byte) bool {
	if b.n >= len(b.data) {
		return false
	}
	b.data[b.n] = c
	b.n++
	return true
}

func (b *lineBuffer) bytes() []byte {
	return b.data[:b.n]
}

func (b *lineBuffer) reset() {
	b.n = 0
}

// Console interprets the line-oriented operator protocol. Single command
// letters select a command; 'f' accumulates a frequency argument until a
// CR or LF terminator. Unrecognized letters, including bare terminators,
// are silently ignored.
type Console struct {
	io     ConsoleIO
	synth  *Synth
	timing *Timing
	state  consoleState
	active consoleCommand
	buf    lineBuffer
}

// NewConsole creates a command interpreter over the given byte stream.
func NewConsole(io ConsoleIO, synth *Synth, timing *Timing) *Console {
	return &Console{io: io, synth: synth, timing: timing}
}

// Tick processes at most one pending input byte. With no input buffered
// it is a no-op, keeping the control loop non-blocking.
func (c *Console) Tick() {
	if c.io.Buffered() == 0 {
		return
	}
	ch, err := c.io.ReadByte()
	if err != nil {
		return
	}

	switch c.state {
	case consoleIdle:
		switch ch {
		case 'v':
			c.active = cmdVersion
			c.state = consoleAwaitingArgument
		case 'h':
			c.active = cmdHelp
			c.state = consoleAwaitingArgument
		case 'f':
			c.buf.reset()
			c.active = cmdFrequency
			c.state = consoleAwaitingArgument
		case '@':
			c.printLine(Ident)
		}

	case consoleAwaitingArgument:
		if ch == '\r' || ch == '\n' {
			c.dispatch()
			c.reset()
			return
		}
		if c.active == cmdFrequency {
			if !c.buf.append(ch) {
				c.printLine("error: frequency argument too long")
				c.reset()
			}
		}
	}
}

func (c *Console) dispatch() {
	switch c.active {
	case cmdVersion:
		c.printLine(Version)
	case cmdHelp:
		c.printHelp()
	case cmdFrequency:
		c.setFrequency()
	}
}

func (c *Console) setFrequency() {
	hz, ok := parseMegahertz(c.buf.bytes())
	if !ok {
		c.printLine("error: bad frequency value")
		return
	}
	if err := c.synth.SetFrequency(hz); err != nil {
		c.printLine("error: " + err.Error())
		return
	}
	c.printLine("frequency set to " + string(c.buf.bytes()) + " MHz")
}

func (c *Console) printHelp() {
	c.printLine("commands:")
	c.printLine("  v       print firmware version")
	c.printLine("  h       print this help")
	c.printLine("  f<MHz>  set transmit frequency, 3.5 to 4.0")
	c.printLine("  @       print station identification")
	c.printLine("speed: " + utoa(c.timing.WPM()) + " wpm")
}

func (c *Console) printLine(s string) {
	// Console writes are best effort; a full USB buffer must not stall
	// the control loop.
	c.io.Write([]byte(s + "\r\n"))
}

func (c *Console) reset() {
	c.buf.reset()
	c.active = cmdNone
	c.state = consoleIdle
}
