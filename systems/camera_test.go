package systems

import (
	"math"
	"testing"

	cfg "github.com/mossback/spellstorm-mp/config"
	"github.com/mossback/spellstorm-mp/shared/gamemath"
)

func TestToggleFreezesPlayerYaw(t *testing.T) {
	rig := NewCameraRig()
	rig.Toggle(0.8)

	if rig.Mode() != ModeOrbital {
		t.Fatalf("mode = %v, want orbital", rig.Mode())
	}
	if rig.ReferenceYaw() != 0.8 {
		t.Fatalf("reference yaw = %f, want frozen 0.8", rig.ReferenceYaw())
	}
}

func TestOrbitalPointerDoesNotMoveReferenceYaw(t *testing.T) {
	rig := NewCameraRig()
	rig.Toggle(0.8)

	rig.HandlePointer(500, 120)
	rig.HandlePointer(-300, -40)

	if rig.ReferenceYaw() != 0.8 {
		t.Fatalf("orbiting changed the movement basis: %f", rig.ReferenceYaw())
	}
	if rig.Orbital.Angle == 0.8 {
		t.Fatalf("pointer did not orbit the camera")
	}
}

func TestFollowPointerDrivesReferenceYaw(t *testing.T) {
	rig := NewCameraRig()
	rig.HandlePointer(100, 0)

	if rig.ReferenceYaw() == 0 {
		t.Fatalf("follow-mode pointer must drive the reference yaw")
	}
}

func TestToggleBackRestoresFollowYaw(t *testing.T) {
	rig := NewCameraRig()
	rig.HandlePointer(100, 0)
	followYaw := rig.ReferenceYaw()

	rig.Toggle(1.5) // into orbital
	rig.Toggle(0)   // back to follow

	if rig.Mode() != ModeFollow {
		t.Fatalf("mode = %v, want follow", rig.Mode())
	}
	if rig.ReferenceYaw() != followYaw {
		t.Fatalf("follow yaw = %f, want preserved %f", rig.ReferenceYaw(), followYaw)
	}
}

func TestOrbitalReentryResetsElevation(t *testing.T) {
	rig := NewCameraRig()
	rig.Toggle(0)
	rig.HandlePointer(0, 1000) // crank elevation
	rig.Toggle(0)              // back to follow
	rig.Toggle(0)              // re-enter orbital

	if rig.Orbital.Elevation != cfg.Camera.OrbitalElevation {
		t.Fatalf("elevation = %f, want reset to %f",
			rig.Orbital.Elevation, cfg.Camera.OrbitalElevation)
	}
}

func TestPitchAndElevationClamped(t *testing.T) {
	rig := NewCameraRig()
	rig.HandlePointer(0, 1e6)
	if rig.Follow.Pitch > cfg.Camera.PitchMax {
		t.Fatalf("pitch %f above max", rig.Follow.Pitch)
	}
	rig.HandlePointer(0, -1e6)
	if rig.Follow.Pitch < cfg.Camera.PitchMin {
		t.Fatalf("pitch %f below min", rig.Follow.Pitch)
	}

	rig.Toggle(0)
	rig.HandlePointer(0, 1e6)
	if rig.Orbital.Elevation > cfg.Camera.OrbitalElevationMax {
		t.Fatalf("elevation %f above max", rig.Orbital.Elevation)
	}
}

func TestScrollClampsTargetDistance(t *testing.T) {
	rig := NewCameraRig()
	for i := 0; i < 100; i++ {
		rig.HandleScroll(1) // zoom in
	}
	if rig.Follow.TargetDistance < cfg.Camera.FollowMinDistance {
		t.Fatalf("target distance %f below min", rig.Follow.TargetDistance)
	}
	for i := 0; i < 100; i++ {
		rig.HandleScroll(-1)
	}
	if rig.Follow.TargetDistance > cfg.Camera.FollowMaxDistance {
		t.Fatalf("target distance %f above max", rig.Follow.TargetDistance)
	}
}

func TestScrollZoomEasesTowardTarget(t *testing.T) {
	rig := NewCameraRig()
	start := rig.Follow.Distance
	rig.HandleScroll(1)
	target := rig.Follow.TargetDistance

	rig.Update(0.05, gamemath.Vec3{})
	if rig.Follow.Distance == start {
		t.Fatalf("zoom did not begin easing")
	}
	if rig.Follow.Distance < target {
		t.Fatalf("zoom overshot target: %f < %f", rig.Follow.Distance, target)
	}

	// After the full ease duration the distance settles on the target.
	for i := 0; i < 20; i++ {
		rig.Update(0.05, gamemath.Vec3{})
	}
	if math.Abs(rig.Follow.Distance-target) > 1e-3 {
		t.Fatalf("zoom did not settle: %f, want %f", rig.Follow.Distance, target)
	}
}

func TestUpdateSnapsEyeOnFirstCall(t *testing.T) {
	rig := NewCameraRig()
	tracked := gamemath.Vec3{X: 10, Z: 10}

	rig.Update(1.0/60, tracked)
	first := rig.Eye

	rig.Update(1.0/60, tracked)
	if first.Distance(rig.Eye) > rig.Eye.Distance(tracked) {
		t.Fatalf("first update should snap, then smooth")
	}

	wantAim := tracked.Add(gamemath.Vec3{Y: cfg.Camera.AimHeight})
	if rig.Aim != wantAim {
		t.Fatalf("aim = %+v, want %+v", rig.Aim, wantAim)
	}
}

func TestOrbitalEyeRespectsDistance(t *testing.T) {
	rig := NewCameraRig()
	rig.Toggle(0)
	tracked := gamemath.Vec3{X: 5, Z: -3}

	rig.Update(1.0/60, tracked)

	got := rig.Eye.Distance(tracked)
	if math.Abs(got-cfg.Camera.OrbitalDistance) > 1e-6 {
		t.Fatalf("eye distance = %f, want %f", got, cfg.Camera.OrbitalDistance)
	}
}
