package systems

import (
	"log"

	cfg "github.com/mossback/spellstorm-mp/config"
	"github.com/mossback/spellstorm-mp/network"
	"github.com/mossback/spellstorm-mp/shared/gamemath"
	"github.com/mossback/spellstorm-mp/shared/messages"
)

// FixedStepper converts variable frame deltas into whole simulation
// ticks. Prediction and outgoing intent both run on this clock so the
// client integrates with the same step the server does.
type FixedStepper struct {
	accumulator float64
	step        float64
}

// maxCatchUpTicks bounds how many ticks a single frame may run after a
// long stall, dropping the remainder instead of spiraling.
const maxCatchUpTicks = 8

func NewFixedStepper() *FixedStepper {
	return &FixedStepper{step: cfg.Net.FixedDelta()}
}

func (f *FixedStepper) Step() float64 {
	return f.step
}

// Advance adds a frame delta and returns how many fixed ticks to run.
func (f *FixedStepper) Advance(frameDelta float64) int {
	f.accumulator += frameDelta
	ticks := 0
	for f.accumulator >= f.step {
		f.accumulator -= f.step
		ticks++
	}
	if ticks > maxCatchUpTicks {
		ticks = maxCatchUpTicks
		f.accumulator = 0
	}
	return ticks
}

// TickSender transmits the per-tick update, skipping ticks where
// nothing the server cares about changed since the last send.
type TickSender struct {
	client   *network.Client
	lastSent messages.UpdatePlayerInput
	sentOnce bool
}

func NewTickSender(client *network.Client) *TickSender {
	return &TickSender{client: client}
}

// Send transmits one tick's update unless it duplicates the previous
// one. Send failures are logged and dropped; the next changed tick
// retries naturally.
func (t *TickSender) Send(in messages.InputState, position gamemath.Vec3, yaw float64, animation string) {
	msg := messages.UpdatePlayerInput{
		Input:     in,
		Position:  position,
		Rotation:  gamemath.Vec3{Y: yaw},
		Animation: animation,
	}

	if t.sentOnce && msg == t.lastSent {
		return
	}

	if err := t.client.SendUpdate(msg); err != nil {
		log.Printf("[netsend] update failed: %v", err)
		return
	}
	t.lastSent = msg
	t.sentOnce = true
}
