package systems

import (
	"math"

	cfg "github.com/mossback/spellstorm-mp/config"
	"github.com/mossback/spellstorm-mp/shared/gamemath"
	"github.com/mossback/spellstorm-mp/shared/messages"
)

// Predictor advances the local player's position and yaw one fixed
// simulation tick at a time, using the same kinematic rule the server
// integrates with. Reconciliation is a separate pass; this step never
// reads authoritative state.
type Predictor struct {
	Position gamemath.Vec3
	Yaw      float64
}

func NewPredictor() *Predictor {
	return &Predictor{}
}

// LocalMovement builds the camera-local movement vector for the active
// axes. The axis signs swap between Follow and Orbital mode: movement
// is always resolved relative to the active camera reference frame.
func LocalMovement(in messages.InputState, mode CameraMode) gamemath.Vec3 {
	var v gamemath.Vec3
	if in.Forward {
		v.Z -= 1
	}
	if in.Backward {
		v.Z += 1
	}
	if in.Left {
		v.X -= 1
	}
	if in.Right {
		v.X += 1
	}
	if mode == ModeOrbital {
		v.X, v.Z = -v.X, -v.Z
	}
	return v
}

// MovementVector resolves the intent to a world-space direction using
// the camera provider's reference yaw. Diagonals are normalized so
// diagonal speed never exceeds axis speed.
func MovementVector(in messages.InputState, mode CameraMode, referenceYaw float64) gamemath.Vec3 {
	local := LocalMovement(in, mode)
	if local == (gamemath.Vec3{}) {
		return local
	}
	return local.ClampLength(cfg.Player.DiagonalLimit).RotateY(referenceYaw)
}

// Step advances one fixed tick. With no movement axis active the state
// is returned untouched.
func (p *Predictor) Step(in messages.InputState, mode CameraMode, referenceYaw, dt float64) {
	if !in.Forward && !in.Backward && !in.Left && !in.Right {
		return
	}

	dir := MovementVector(in, mode, referenceYaw)
	speed := cfg.Player.Speed
	if in.Sprint {
		speed *= cfg.Player.SprintMultiplier
	}
	p.Position = p.Position.Add(dir.Scale(speed * dt))

	if mode == ModeOrbital {
		// Visual facing tracks the movement direction, not the camera.
		p.Yaw = yawFromDirection(dir)
	} else {
		p.Yaw = referenceYaw
	}
}

// yawFromDirection inverts the forward-is-negative-Z convention:
// RotateY of (0,0,-1) by yaw gives (-sin yaw, 0, -cos yaw).
func yawFromDirection(dir gamemath.Vec3) float64 {
	return math.Atan2(-dir.X, -dir.Z)
}
