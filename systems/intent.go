package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	cfg "github.com/mossback/spellstorm-mp/config"
	"github.com/mossback/spellstorm-mp/shared/messages"
)

// IntentSampler owns the current input intent. It is the only mutator
// of the record; the predictor and animation selector read snapshots.
// The sequence number advances whenever any field changes.
type IntentSampler struct {
	intent messages.InputState
}

func NewIntentSampler() *IntentSampler {
	return &IntentSampler{}
}

// HandleAction applies the pressed state of one action. Repeating the
// same state is a no-op, so callers may feed held keys every frame and
// the sequence still only advances on real edges.
func (s *IntentSampler) HandleAction(action cfg.ActionID, pressed bool) {
	next := s.intent
	switch action {
	case cfg.ActionMoveForward:
		next.Forward = pressed
	case cfg.ActionMoveBackward:
		next.Backward = pressed
	case cfg.ActionMoveLeft:
		next.Left = pressed
	case cfg.ActionMoveRight:
		next.Right = pressed
	case cfg.ActionSprint:
		next.Sprint = pressed
	case cfg.ActionJump:
		next.Jump = pressed
	case cfg.ActionAttack:
		next.Attack = pressed
	case cfg.ActionCastSpell:
		next.CastSpell = pressed
	default:
		return
	}

	next.Sequence = s.intent.Sequence
	if next.Equal(s.intent) {
		return
	}
	next.Sequence++
	s.intent = next
}

// Intent returns a snapshot of the current record.
func (s *IntentSampler) Intent() messages.InputState {
	return s.intent
}

// DesiredAnimation derives the locally-guessed animation from the
// current intent. Priority: attack > cast > jump > movement > idle,
// first match wins.
func (s *IntentSampler) DesiredAnimation() string {
	in := s.intent
	switch {
	case in.Attack:
		return "attack"
	case in.CastSpell:
		return "cast"
	case in.Jump:
		return "jump"
	}

	dir := movementDirection(in)
	if dir == "" {
		return cfg.IdleClip
	}
	if in.Sprint {
		return "run-" + dir
	}
	return "walk-" + dir
}

// movementDirection resolves the active axes to a single direction.
// Opposite axes cancel; on perpendicular combinations the lateral axis
// wins (forward+left -> left, backward+right -> right, and so on).
func movementDirection(in messages.InputState) string {
	forward := in.Forward && !in.Backward
	backward := in.Backward && !in.Forward
	left := in.Left && !in.Right
	right := in.Right && !in.Left

	switch {
	case left:
		return "left"
	case right:
		return "right"
	case forward:
		return "forward"
	case backward:
		return "back"
	}
	return ""
}

// PollInput reads the ebiten key and mouse state and feeds it through
// the sampler. Attack also listens to the left mouse button.
func PollInput(s *IntentSampler) {
	for action, binding := range cfg.Input.Bindings {
		if action == cfg.ActionToggleCamera {
			continue // camera toggle is an edge handled by the scene
		}
		pressed := anyKeyPressed(binding.Keys)
		if action == cfg.ActionAttack {
			pressed = pressed || ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
		}
		s.HandleAction(action, pressed)
	}
}

func anyKeyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
