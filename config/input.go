package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveForward
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionSprint
	ActionJump
	ActionAttack
	ActionCastSpell
	ActionToggleCamera
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the key bindings for an action. Attack also
// listens to the left mouse button; that is handled by the sampler
// system, not here.
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings.
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration.
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveForward: {
				Keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyUp},
			},
			ActionMoveBackward: {
				Keys: []ebiten.Key{ebiten.KeyS, ebiten.KeyDown},
			},
			ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft},
			},
			ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyRight},
			},
			ActionSprint: {
				Keys: []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
			},
			ActionJump: {
				Keys: []ebiten.Key{ebiten.KeySpace},
			},
			ActionAttack: {
				Keys: []ebiten.Key{ebiten.KeyZ},
			},
			ActionCastSpell: {
				Keys: []ebiten.Key{ebiten.KeyE},
			},
			ActionToggleCamera: {
				Keys: []ebiten.Key{ebiten.KeyC},
			},
		},
	}
}
