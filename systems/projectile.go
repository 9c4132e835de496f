package systems

import (
	"github.com/mossback/spellstorm-mp/components"
	cfg "github.com/mossback/spellstorm-mp/config"
	"github.com/mossback/spellstorm-mp/shared/gamemath"
	"github.com/mossback/spellstorm-mp/shared/messages"
	"github.com/yohamta/donburi"
)

// defaultHeading is the straight-line flight direction for projectiles
// that resolved no target.
var defaultHeading = gamemath.Vec3{Z: -1}

// TargetCandidate is a player considered for homing at spawn time.
type TargetCandidate struct {
	Identity string
	Position gamemath.Vec3
}

// ResolveTarget picks the homing target for a freshly spawned
// projectile: the explicit target reference when it resolves, else the
// nearest player excluding the caster, else nothing (straight flight).
func ResolveTarget(row messages.ProjectileRow, candidates []TargetCandidate) (string, bool) {
	if row.TargetIdentity != "" {
		for _, c := range candidates {
			if c.Identity == row.TargetIdentity {
				return c.Identity, true
			}
		}
		// Target reference didn't resolve; fall through to the
		// nearest-player heuristic.
	}

	best := ""
	bestDist := 0.0
	for _, c := range candidates {
		if c.Identity == row.CasterIdentity {
			continue
		}
		d := row.Position.Distance(c.Position)
		if best == "" || d < bestDist {
			best = c.Identity
			bestDist = d
		}
	}
	return best, best != ""
}

// NewProjectileState seeds the client-owned kinematic state from a
// spawn row. This is the only point where server data touches the
// projectile; afterwards it free-runs.
func NewProjectileState(row messages.ProjectileRow, targetID string, hasTarget bool, targetPos gamemath.Vec3) components.ProjectileData {
	heading := defaultHeading
	if hasTarget {
		if dir := gamemath.HomingDirection(row.Position, targetPos); dir.Length() > 0 {
			heading = dir
		}
	}
	return components.ProjectileData{
		ID:             row.ID,
		CasterIdentity: row.CasterIdentity,
		TargetIdentity: targetID,
		HasTarget:      hasTarget,
		Position:       row.Position,
		Velocity:       heading.Scale(row.Speed),
		Speed:          row.Speed,
	}
}

// AdvanceProjectile integrates one frame. With a live target the
// velocity turns toward it at a bounded angular rate, which is what
// keeps homing projectiles dodgable; without one it flies straight.
func AdvanceProjectile(p *components.ProjectileData, targetPos *gamemath.Vec3, dt float64) {
	if targetPos != nil {
		desired := gamemath.HomingDirection(p.Position, *targetPos)
		p.Velocity = gamemath.TurnToward(p.Velocity, desired, cfg.Projectile.MaxTurnRate*dt)
	}
	p.Position = p.Position.Add(p.Velocity.Scale(dt))
}

// UpdateProjectiles advances every projectile entity, homing each one
// toward its target's current authoritative position.
func UpdateProjectiles(world donburi.World, dt float64) {
	// Index player positions once per frame.
	positions := make(map[string]gamemath.Vec3)
	components.NetPlayer.Each(world, func(entry *donburi.Entry) {
		p := components.NetPlayer.Get(entry)
		positions[p.Identity] = p.Position
	})

	components.Projectile.Each(world, func(entry *donburi.Entry) {
		p := components.Projectile.Get(entry)
		var targetPos *gamemath.Vec3
		if p.HasTarget {
			if pos, ok := positions[p.TargetIdentity]; ok {
				targetPos = &pos
			}
		}
		AdvanceProjectile(p, targetPos, dt)
	})
}
