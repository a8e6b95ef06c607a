package core

// ConsoleIO is the byte stream the command interpreter polls and writes
// to. It is shaped to match TinyGo's machine.Serial USB CDC API so the
// target wiring is a direct assignment.
type ConsoleIO interface {
	// Buffered returns the number of input bytes available to read.
	Buffered() int

	// ReadByte reads one input byte. Only called when Buffered reports
	// data available.
	ReadByte() (byte, error)

	// Write sends response text to the operator.
	Write(p []byte) (n int, err error)
}
