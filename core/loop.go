package core

// Controller runs the three subsystems cooperatively. One Poll executes
// paddle evaluation, then tone sequencing, then command handling, in that
// order, with no blocking anywhere. All retained state lives in the
// subsystem structs, so the controller needs no locking.
type Controller struct {
	input   PaddleDriver
	paddle  *Paddle
	keyer   *Keyer
	console *Console
}

// NewController wires the subsystems to their capabilities.
func NewController(input PaddleDriver, tone ToneDriver, synth SynthDriver, io ConsoleIO, timing *Timing) *Controller {
	return &Controller{
		input:   input,
		paddle:  NewPaddle(),
		keyer:   NewKeyer(tone, timing),
		console: NewConsole(io, NewSynth(synth), timing),
	}
}

// Poll runs one control iteration at the given monotonic millisecond
// time. Targets call this in a tight loop after refreshing the clock.
func (c *Controller) Poll(now uint32) {
	req := c.paddle.Tick(c.input.DitClosed(), c.input.DahClosed())
	c.keyer.Tick(req, now)
	c.console.Tick()
}
