package systems

import (
	"testing"

	cfg "github.com/mossback/spellstorm-mp/config"
)

func TestStepperAccumulatesWholeTicks(t *testing.T) {
	s := NewFixedStepper()
	step := cfg.Net.FixedDelta()

	if got := s.Advance(step / 2); got != 0 {
		t.Fatalf("half a step produced %d ticks", got)
	}
	if got := s.Advance(step / 2); got != 1 {
		t.Fatalf("completed step produced %d ticks, want 1", got)
	}
	if got := s.Advance(step * 3.001); got != 3 {
		t.Fatalf("three steps produced %d ticks, want 3", got)
	}
}

func TestStepperPreservesRemainder(t *testing.T) {
	s := NewFixedStepper()
	step := cfg.Net.FixedDelta()

	// Half a step per frame: ticks fire on every second frame only.
	ticks := 0
	for i := 0; i < 12; i++ {
		n := s.Advance(step / 2)
		if n > 1 {
			t.Fatalf("frame %d produced %d ticks", i, n)
		}
		ticks += n
	}
	if ticks != 6 {
		t.Fatalf("accumulated %d ticks, want 6", ticks)
	}
}

func TestStepperClampsCatchUp(t *testing.T) {
	s := NewFixedStepper()

	// A multi-second stall must not replay as hundreds of ticks.
	if got := s.Advance(5.0); got > maxCatchUpTicks {
		t.Fatalf("stall produced %d ticks, clamp is %d", got, maxCatchUpTicks)
	}
	// And the dropped backlog must not leak into the next frame.
	if got := s.Advance(0); got != 0 {
		t.Fatalf("backlog leaked %d ticks after clamp", got)
	}
}
