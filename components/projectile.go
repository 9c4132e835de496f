package components

import (
	"github.com/mossback/spellstorm-mp/shared/gamemath"
	"github.com/yohamta/donburi"
)

// ProjectileData is the client-owned kinematic state of one projectile.
// It is seeded from the spawn row and then free-runs: the server's
// position updates are never applied after spawn, so long flights can
// drift from server-side hit resolution.
type ProjectileData struct {
	ID             uint64
	CasterIdentity string
	TargetIdentity string // resolved at spawn; empty means no target
	HasTarget      bool

	Position gamemath.Vec3
	Velocity gamemath.Vec3
	Speed    float64
}

var Projectile = donburi.NewComponentType[ProjectileData]()
