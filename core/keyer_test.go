package core

import "testing"

// fakeTone records tone output calls for inspection.
type fakeTone struct {
	calls []string
}

func (f *fakeTone) StartTone(freqHz uint32) {
	f.calls = append(f.calls, "start:"+utoa(freqHz))
}

func (f *fakeTone) StopTone() {
	f.calls = append(f.calls, "stop")
}

func (f *fakeTone) check(t *testing.T, want ...string) {
	t.Helper()
	if len(f.calls) != len(want) {
		t.Fatalf("expected calls %v, got %v", want, f.calls)
	}
	for i := range want {
		if f.calls[i] != want[i] {
			t.Fatalf("call %d: expected %q, got %q (all: %v)", i, want[i], f.calls[i], f.calls)
		}
	}
}

// 12 wpm gives round numbers: dit 100ms, dah 300ms.
func newTestKeyer() (*Keyer, *fakeTone) {
	tone := &fakeTone{}
	return NewKeyer(tone, NewTiming(12)), tone
}

func TestDitTiming(t *testing.T) {
	k, tone := newTestKeyer()

	if k.Tick(ReqDit, 0) {
		t.Fatal("element should not complete on start")
	}
	tone.check(t, "start:700")

	if k.Tick(ReqQuiet, 50) {
		t.Fatal("element should not complete mid-tone")
	}
	tone.check(t, "start:700")

	k.Tick(ReqQuiet, 100)
	tone.check(t, "start:700", "stop")

	if k.Tick(ReqQuiet, 150) {
		t.Fatal("silence should not complete early")
	}
	if !k.Tick(ReqQuiet, 200) {
		t.Fatal("expected completion after one dit of silence")
	}
	if k.LastElement() != ElementNone {
		t.Fatalf("expected last element cleared, got %v", k.LastElement())
	}
}

func TestDahTiming(t *testing.T) {
	k, tone := newTestKeyer()

	k.Tick(ReqDah, 0)
	tone.check(t, "start:700")

	k.Tick(ReqQuiet, 299)
	tone.check(t, "start:700")

	k.Tick(ReqQuiet, 300)
	tone.check(t, "start:700", "stop")

	// Inter-element silence is one dit regardless of the element sent.
	if k.Tick(ReqQuiet, 399) {
		t.Fatal("silence should last a full dit")
	}
	if !k.Tick(ReqQuiet, 400) {
		t.Fatal("expected completion at 400ms")
	}
}

func TestHeldDitRepeats(t *testing.T) {
	k, tone := newTestKeyer()

	k.Tick(ReqDit, 0)
	k.Tick(ReqDit, 100)
	if !k.Tick(ReqDit, 200) {
		t.Fatal("expected element completion at 200ms")
	}
	// The request is still ReqDit, so the next poll keys a fresh element.
	k.Tick(ReqDit, 200)
	tone.check(t, "start:700", "stop", "start:700")
}

func TestSqueezeAlternatesElements(t *testing.T) {
	k, tone := newTestKeyer()

	k.Tick(ReqDitThenDah, 0)
	if k.LastElement() != ElementDit {
		t.Fatalf("squeeze with dit first should start with dit, got %v", k.LastElement())
	}

	k.Tick(ReqDitThenDah, 100) // dit done, silence starts
	k.Tick(ReqDitThenDah, 200) // silence done, dah starts
	if k.LastElement() != ElementDah {
		t.Fatalf("expected dah after dit in squeeze, got %v", k.LastElement())
	}

	k.Tick(ReqDitThenDah, 500) // dah done
	k.Tick(ReqDitThenDah, 600) // back to dit
	if k.LastElement() != ElementDit {
		t.Fatalf("expected dit after dah in squeeze, got %v", k.LastElement())
	}

	tone.check(t, "start:700", "stop", "start:700", "stop", "start:700")
}

func TestSqueezeDahFirstStartsWithDah(t *testing.T) {
	k, _ := newTestKeyer()

	k.Tick(ReqDahThenDit, 0)
	if k.LastElement() != ElementDah {
		t.Fatalf("squeeze with dah first should start with dah, got %v", k.LastElement())
	}

	k.Tick(ReqDahThenDit, 300)
	k.Tick(ReqDahThenDit, 400)
	if k.LastElement() != ElementDit {
		t.Fatalf("expected dit after dah, got %v", k.LastElement())
	}
}

func TestQuietRequestEndsSqueeze(t *testing.T) {
	k, tone := newTestKeyer()

	k.Tick(ReqDitThenDah, 0)
	k.Tick(ReqDitThenDah, 100)
	// Paddles released before the silence ends: sequencer goes idle
	// instead of keying the next element.
	if !k.Tick(ReqQuiet, 200) {
		t.Fatal("expected completion when request went quiet")
	}
	tone.check(t, "start:700", "stop")
}

func TestIdempotentPolling(t *testing.T) {
	k, tone := newTestKeyer()

	for i := 0; i < 5; i++ {
		k.Tick(ReqDit, 0)
	}
	tone.check(t, "start:700")

	for i := 0; i < 5; i++ {
		k.Tick(ReqDit, 100)
	}
	tone.check(t, "start:700", "stop")
}

func TestLatePollStretchesElement(t *testing.T) {
	k, tone := newTestKeyer()

	k.Tick(ReqDit, 0)
	// The loop stalls well past the deadline: the element simply sounds
	// longer and the silence is re-armed from the late poll time.
	k.Tick(ReqQuiet, 250)
	tone.check(t, "start:700", "stop")

	if k.Tick(ReqQuiet, 349) {
		t.Fatal("silence deadline should be 250+100ms")
	}
	if !k.Tick(ReqQuiet, 350) {
		t.Fatal("expected completion at 350ms")
	}
}

func TestQuietStaysIdle(t *testing.T) {
	k, tone := newTestKeyer()

	for now := uint32(0); now < 500; now += 50 {
		if k.Tick(ReqQuiet, now) {
			t.Fatal("idle sequencer should not signal completion")
		}
	}
	tone.check(t)
}
