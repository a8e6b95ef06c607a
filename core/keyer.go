package core

// Element identifies a Morse element keyed by the tone sequencer.
type Element uint8

const (
	ElementNone Element = iota
	ElementDit
	ElementDah
)

// SidetoneHz is the audio frequency of the keyed tone.
const SidetoneHz = 700

type toneState uint8

const (
	toneIdle toneState = iota
	toneSounding
	toneSilent
)

// Keyer turns tone requests into timed tone on/off intervals. Deadlines
// are compared with now >= deadline, so a poll that arrives late simply
// stretches the current interval by the delay.
type Keyer struct {
	tone     ToneDriver
	timing   *Timing
	state    toneState
	last     Element
	deadline uint32
}

// NewKeyer creates a tone sequencer driving the given tone output.
func NewKeyer(tone ToneDriver, timing *Timing) *Keyer {
	return &Keyer{tone: tone, timing: timing}
}

// Tick advances the sequencer given the current tone request and the
// monotonic time in milliseconds. It reports true when an element and
// its trailing one-dit silence have completed and the sequencer is back
// to idle.
func (k *Keyer) Tick(req ToneRequest, now uint32) bool {
	switch k.state {
	case toneIdle:
		switch req {
		case ReqDit, ReqDitThenDah:
			k.startElement(ElementDit, now)
		case ReqDah, ReqDahThenDit:
			k.startElement(ElementDah, now)
		}

	case toneSounding:
		if now >= k.deadline {
			k.tone.StopTone()
			// Inter-element silence is one dit regardless of the
			// element just sent.
			k.deadline = now + k.timing.DitMs
			k.state = toneSilent
		}

	case toneSilent:
		if now >= k.deadline {
			switch req {
			case ReqDitThenDah, ReqDahThenDit:
				// Squeeze in progress: send the opposite of the
				// last element.
				if k.last == ElementDit {
					k.startElement(ElementDah, now)
				} else {
					k.startElement(ElementDit, now)
				}
			default:
				k.state = toneIdle
				k.last = ElementNone
				return true
			}
		}
	}

	return false
}

// LastElement returns the element currently being sent, or ElementNone
// when the sequencer is idle.
func (k *Keyer) LastElement() Element {
	return k.last
}

func (k *Keyer) startElement(e Element, now uint32) {
	k.tone.StartTone(SidetoneHz)
	if e == ElementDah {
		k.deadline = now + k.timing.DahMs
	} else {
		k.deadline = now + k.timing.DitMs
	}
	k.last = e
	k.state = toneSounding
}
