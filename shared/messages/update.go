package messages

import "github.com/mossback/spellstorm-mp/shared/gamemath"

// UpdatePlayerInput is the per-tick payload from client to server: the
// current intent plus the client's predicted transform and locally
// selected animation. The sender dedups identical consecutive payloads.
type UpdatePlayerInput struct {
	Input     InputState
	Position  gamemath.Vec3
	Rotation  gamemath.Vec3 // Euler, only Y (yaw) is meaningful
	Animation string
}

// RegisterPlayer asks the server to create (or rejoin) a player row for
// this connection's identity.
type RegisterPlayer struct {
	Version        string
	Username       string
	CharacterClass string
}

// RegisterAccepted is the server's reply carrying the identity assigned
// to this connection.
type RegisterAccepted struct {
	Identity   string
	ServerName string
	TickRate   int
}

// RegisterRejected is sent when registration fails.
type RegisterRejected struct {
	Reason string
}

// CastSpell is a discrete action request, independent of the per-tick
// intent stream.
type CastSpell struct {
	SpellName string
}
