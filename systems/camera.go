package systems

import (
	"math"

	cfg "github.com/mossback/spellstorm-mp/config"
	"github.com/mossback/spellstorm-mp/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// CameraMode selects the active camera scheme.
type CameraMode int

const (
	ModeFollow CameraMode = iota
	ModeOrbital
)

func (m CameraMode) String() string {
	if m == ModeOrbital {
		return "orbital"
	}
	return "follow"
}

// FollowState is the over-the-shoulder camera: yaw/pitch driven by the
// pointer, distance by scroll.
type FollowState struct {
	Yaw            float64
	Pitch          float64
	Distance       float64
	TargetDistance float64
}

// OrbitalState is the detached orbit camera. FrozenYaw is the player
// yaw captured on mode entry; the predictor's movement basis uses it
// instead of the live camera angle.
type OrbitalState struct {
	Angle          float64
	Elevation      float64
	Distance       float64
	TargetDistance float64
	FrozenYaw      float64
}

// CameraRig is the camera coordinate provider. It owns both mode
// states, eases zoom and eye position, and exposes the reference yaw
// the motion predictor resolves movement against.
type CameraRig struct {
	mode    CameraMode
	Follow  FollowState
	Orbital OrbitalState

	Eye gamemath.Vec3
	Aim gamemath.Vec3

	zoomTween   *gween.Tween
	initialized bool
}

func NewCameraRig() *CameraRig {
	return &CameraRig{
		Follow: FollowState{
			Distance:       cfg.Camera.FollowDistance,
			TargetDistance: cfg.Camera.FollowDistance,
		},
		Orbital: OrbitalState{
			Distance:       cfg.Camera.OrbitalDistance,
			TargetDistance: cfg.Camera.OrbitalDistance,
			Elevation:      cfg.Camera.OrbitalElevation,
		},
	}
}

func (r *CameraRig) Mode() CameraMode {
	return r.mode
}

// Toggle switches between Follow and Orbital. Entering Orbital
// snapshots the player's current yaw as the frozen movement basis and
// resets elevation to the default.
func (r *CameraRig) Toggle(playerYaw float64) {
	if r.mode == ModeFollow {
		r.mode = ModeOrbital
		r.Orbital.FrozenYaw = playerYaw
		r.Orbital.Angle = playerYaw
		r.Orbital.Elevation = cfg.Camera.OrbitalElevation
		r.zoomTween = nil
		return
	}
	r.mode = ModeFollow
	r.zoomTween = nil
}

// ReferenceYaw is the yaw basis supplied to the motion predictor: the
// live camera yaw in Follow mode, the frozen entry yaw in Orbital.
func (r *CameraRig) ReferenceYaw() float64 {
	if r.mode == ModeOrbital {
		return r.Orbital.FrozenYaw
	}
	return r.Follow.Yaw
}

// HandlePointer applies a pointer delta. Follow drives yaw/pitch;
// Orbital drives orbit angle/elevation. Neither touches the movement
// basis in Orbital mode.
func (r *CameraRig) HandlePointer(dx, dy float64) {
	sens := cfg.Camera.PointerSensitivity
	if r.mode == ModeOrbital {
		r.Orbital.Angle -= dx * sens
		r.Orbital.Elevation = clamp(
			r.Orbital.Elevation+dy*sens,
			cfg.Camera.OrbitalElevationMin,
			cfg.Camera.OrbitalElevationMax,
		)
		return
	}
	r.Follow.Yaw -= dx * sens
	r.Follow.Pitch = clamp(r.Follow.Pitch+dy*sens, cfg.Camera.PitchMin, cfg.Camera.PitchMax)
}

// HandleScroll retargets the zoom distance and starts an eased tween
// from the current distance toward it.
func (r *CameraRig) HandleScroll(dy float64) {
	if dy == 0 {
		return
	}
	step := cfg.Camera.ScrollStep
	if r.mode == ModeOrbital {
		r.Orbital.TargetDistance = clamp(
			r.Orbital.TargetDistance-dy*step,
			cfg.Camera.OrbitalMinDistance,
			cfg.Camera.OrbitalMaxDistance,
		)
		r.zoomTween = gween.New(
			float32(r.Orbital.Distance),
			float32(r.Orbital.TargetDistance),
			cfg.Camera.ZoomEaseDuration,
			ease.OutQuad,
		)
		return
	}
	r.Follow.TargetDistance = clamp(
		r.Follow.TargetDistance-dy*step,
		cfg.Camera.FollowMinDistance,
		cfg.Camera.FollowMaxDistance,
	)
	r.zoomTween = gween.New(
		float32(r.Follow.Distance),
		float32(r.Follow.TargetDistance),
		cfg.Camera.ZoomEaseDuration,
		ease.OutQuad,
	)
}

// Update eases zoom and the camera eye toward their targets and aims
// at a fixed offset above the tracked position.
func (r *CameraRig) Update(dt float64, tracked gamemath.Vec3) {
	if r.zoomTween != nil {
		v, done := r.zoomTween.Update(float32(dt))
		if r.mode == ModeOrbital {
			r.Orbital.Distance = float64(v)
		} else {
			r.Follow.Distance = float64(v)
		}
		if done {
			r.zoomTween = nil
		}
	}

	desired := r.desiredEye(tracked)
	if !r.initialized {
		r.Eye = desired
		r.initialized = true
	} else {
		r.Eye = r.Eye.Lerp(desired, cfg.Camera.PositionSmoothing)
	}
	r.Aim = tracked.Add(gamemath.Vec3{Y: cfg.Camera.AimHeight})
}

func (r *CameraRig) desiredEye(tracked gamemath.Vec3) gamemath.Vec3 {
	if r.mode == ModeOrbital {
		o := r.Orbital
		horizontal := o.Distance * math.Cos(o.Elevation)
		return tracked.Add(gamemath.Vec3{
			X: horizontal * math.Sin(o.Angle),
			Y: o.Distance * math.Sin(o.Elevation),
			Z: horizontal * math.Cos(o.Angle),
		})
	}

	f := r.Follow
	// Behind the tracked yaw: forward is -Z, so the camera sits on +Z
	// rotated into the yaw frame, lifted by height plus pitch.
	offset := gamemath.Vec3{Z: f.Distance}.RotateY(f.Yaw)
	offset.Y = cfg.Camera.FollowHeight + f.Distance*math.Sin(f.Pitch)
	return tracked.Add(offset)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
