package components

import (
	"github.com/mossback/spellstorm-mp/shared/gamemath"
	"github.com/yohamta/donburi"
)

// NetPlayerData holds the latest authoritative snapshot for one player
// plus client-side render state. Snapshot fields are replaced as a unit
// when a row arrives, never partially.
type NetPlayerData struct {
	Identity       string
	Username       string
	CharacterClass string
	Color          string

	// Authoritative snapshot
	Position     gamemath.Vec3
	Rotation     gamemath.Vec3 // Euler, only Y (yaw) is meaningful
	Health       int
	MaxHealth    int
	Mana         int
	MaxMana      int
	Animation    string
	LastInputSeq uint32

	// Client-side only
	IsLocal     bool
	RenderPos   gamemath.Vec3 // smoothed display position
	RenderYaw   float64
	Initialized bool // first snapshot applied
}

var NetPlayer = donburi.NewComponentType[NetPlayerData]()
