package core

// ToneRequest is what the paddle state machine asks the keyer to send.
// It is re-derived on every poll; while a paddle is held the same value
// is emitted each cycle.
type ToneRequest uint8

const (
	ReqQuiet ToneRequest = iota
	ReqDit
	ReqDah
	ReqDitThenDah // squeeze with the dit paddle closed first
	ReqDahThenDit // squeeze with the dah paddle closed first
)

type paddleState uint8

const (
	paddleIdle paddleState = iota
	paddleSendingDit
	paddleSendingDah
	paddleSendingAlternating
)

// Paddle interprets the two paddle levers into tone requests. Squeeze
// keying latches which lever closed first so the alternating pattern
// starts with the right element.
type Paddle struct {
	state   paddleState
	squeeze ToneRequest
}

// NewPaddle creates a paddle state machine in the idle state.
func NewPaddle() *Paddle {
	return &Paddle{}
}

// Tick samples both lever signals and returns the tone request for this
// poll cycle. Releasing either lever during a squeeze stops keying
// immediately rather than falling back to single-lever repetition.
func (p *Paddle) Tick(dit, dah bool) ToneRequest {
	switch p.state {
	case paddleIdle:
		if dit {
			p.state = paddleSendingDit
			return ReqDit
		}
		if dah {
			p.state = paddleSendingDah
			return ReqDah
		}
		return ReqQuiet

	case paddleSendingDit:
		if dit && dah {
			p.state = paddleSendingAlternating
			p.squeeze = ReqDitThenDah
			return ReqDitThenDah
		}
		if !dit && !dah {
			p.state = paddleIdle
			return ReqQuiet
		}
		return ReqDit

	case paddleSendingDah:
		if dit && dah {
			p.state = paddleSendingAlternating
			p.squeeze = ReqDahThenDit
			return ReqDahThenDit
		}
		if !dit && !dah {
			p.state = paddleIdle
			return ReqQuiet
		}
		return ReqDah

	case paddleSendingAlternating:
		if dit && dah {
			return p.squeeze
		}
		p.state = paddleIdle
		return ReqQuiet
	}

	return ReqQuiet
}
