package messages

import "github.com/mossback/spellstorm-mp/shared/gamemath"

// PlayerRow is a full authoritative snapshot of one player, pushed on
// every insert or update of the player's row. It is applied atomically:
// a row either replaces the previous snapshot entirely or not at all.
type PlayerRow struct {
	Identity       string
	Username       string
	CharacterClass string
	Color          string
	Position       gamemath.Vec3
	Rotation       gamemath.Vec3 // Euler, only Y (yaw) is meaningful
	Health         int
	MaxHealth      int
	Mana           int
	MaxMana        int
	Animation      string
	LastInputSeq   uint32
}

// PlayerRemove is pushed when a player's row is deleted (disconnect).
type PlayerRemove struct {
	Identity string
}

// ProjectileRow is pushed when a projectile row is inserted. The client
// reads spawn parameters once and free-runs its own integration; later
// updates to the server-side row are deliberately ignored.
type ProjectileRow struct {
	ID             uint64
	CasterIdentity string
	TargetIdentity string // empty when the server found no target
	Position       gamemath.Vec3
	Speed          float64
	ProjectileType string // "homing_sphere"
}

// ProjectileRemove is pushed when a projectile expires or hits.
type ProjectileRemove struct {
	ID uint64
}

// SubscriptionApplied signals that the initial row set has been fully
// delivered; rows arriving before it are the initial state.
type SubscriptionApplied struct{}
