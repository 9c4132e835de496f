package systems

import (
	"math"
	"testing"

	cfg "github.com/mossback/spellstorm-mp/config"
	"github.com/mossback/spellstorm-mp/shared/gamemath"
	"github.com/mossback/spellstorm-mp/shared/messages"
)

func spawnRow(caster, target string) messages.ProjectileRow {
	return messages.ProjectileRow{
		ID:             1,
		CasterIdentity: caster,
		TargetIdentity: target,
		Speed:          cfg.Projectile.Speed,
		ProjectileType: "homing_sphere",
	}
}

func TestResolveTargetPrefersExplicitReference(t *testing.T) {
	candidates := []TargetCandidate{
		{Identity: "caster", Position: gamemath.Vec3{}},
		{Identity: "near", Position: gamemath.Vec3{X: 1}},
		{Identity: "far", Position: gamemath.Vec3{X: 30}},
	}

	id, ok := ResolveTarget(spawnRow("caster", "far"), candidates)
	if !ok || id != "far" {
		t.Fatalf("ResolveTarget = %q,%v, want explicit target", id, ok)
	}
}

func TestResolveTargetFallsBackToNearest(t *testing.T) {
	candidates := []TargetCandidate{
		{Identity: "caster", Position: gamemath.Vec3{}},
		{Identity: "near", Position: gamemath.Vec3{X: 2}},
		{Identity: "far", Position: gamemath.Vec3{X: 30}},
	}

	// Unresolvable explicit reference.
	id, ok := ResolveTarget(spawnRow("caster", "gone"), candidates)
	if !ok || id != "near" {
		t.Fatalf("ResolveTarget = %q,%v, want nearest fallback", id, ok)
	}

	// No reference at all.
	id, ok = ResolveTarget(spawnRow("caster", ""), candidates)
	if !ok || id != "near" {
		t.Fatalf("ResolveTarget = %q,%v, want nearest", id, ok)
	}
}

func TestResolveTargetExcludesCaster(t *testing.T) {
	candidates := []TargetCandidate{
		{Identity: "caster", Position: gamemath.Vec3{}},
	}

	if id, ok := ResolveTarget(spawnRow("caster", ""), candidates); ok {
		t.Fatalf("caster selected as its own target: %q", id)
	}
}

func TestUntargetedProjectileFliesStraight(t *testing.T) {
	state := NewProjectileState(spawnRow("caster", ""), "", false, gamemath.Vec3{})

	start := state.Position
	for i := 0; i < 60; i++ {
		AdvanceProjectile(&state, nil, 1.0/60)
	}

	moved := state.Position.Sub(start)
	if moved.Normalized().Dot(gamemath.Vec3{Z: -1}) < 1-1e-9 {
		t.Fatalf("untargeted flight deviated from the default heading: %+v", moved)
	}
	if math.Abs(moved.Length()-cfg.Projectile.Speed) > 1e-6 {
		t.Fatalf("distance after 1s = %f, want %f", moved.Length(), cfg.Projectile.Speed)
	}
}

func TestHomingTurnIsBounded(t *testing.T) {
	row := spawnRow("caster", "t")
	target := gamemath.Vec3{X: 10}
	state := NewProjectileState(row, "t", true, gamemath.Vec3{Z: -10})

	dt := 1.0 / 60
	// Target directly behind the initial heading.
	before := state.Velocity.Normalized()
	AdvanceProjectile(&state, &target, dt)
	after := state.Velocity.Normalized()

	angle := math.Acos(clampProjDot(before.Dot(after)))
	maxStep := cfg.Projectile.MaxTurnRate * dt
	if angle > maxStep+1e-9 {
		t.Fatalf("turned %.5f rad in one frame, max %.5f", angle, maxStep)
	}
	if speed := state.Velocity.Length(); math.Abs(speed-row.Speed) > 1e-6 {
		t.Fatalf("turning changed speed: %f", speed)
	}
}

func TestHomingConvergesOnStationaryTarget(t *testing.T) {
	row := spawnRow("caster", "t")
	target := gamemath.Vec3{X: 12, Z: 5}
	// Initial heading away from the target.
	state := NewProjectileState(row, "t", true, gamemath.Vec3{Z: -50})

	dt := 1.0 / 60
	closest := state.Position.Distance(target)
	for i := 0; i < 60*10; i++ {
		AdvanceProjectile(&state, &target, dt)
		if d := state.Position.Distance(target); d < closest {
			closest = d
		}
	}

	// Original hit radius.
	if closest > 1.0 {
		t.Fatalf("projectile never closed on the target, closest %.3f", closest)
	}
}

func TestSpawnHeadingPointsAtTarget(t *testing.T) {
	row := spawnRow("caster", "t")
	row.Position = gamemath.Vec3{X: 1, Y: 1, Z: 1}
	targetPos := gamemath.Vec3{X: 4, Y: 1, Z: 5}

	state := NewProjectileState(row, "t", true, targetPos)

	want := targetPos.Sub(row.Position).Normalized()
	if state.Velocity.Normalized().Dot(want) < 1-1e-9 {
		t.Fatalf("spawn heading %+v, want toward %+v", state.Velocity, want)
	}
	if math.Abs(state.Velocity.Length()-row.Speed) > 1e-9 {
		t.Fatalf("spawn speed = %f, want %f", state.Velocity.Length(), row.Speed)
	}
}

func clampProjDot(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
