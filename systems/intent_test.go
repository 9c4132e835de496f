package systems

import (
	"testing"

	cfg "github.com/mossback/spellstorm-mp/config"
	"github.com/mossback/spellstorm-mp/shared/messages"
)

func TestHandleActionSetsFields(t *testing.T) {
	tests := []struct {
		action cfg.ActionID
		check  func(messages.InputState) bool
	}{
		{cfg.ActionMoveForward, func(in messages.InputState) bool { return in.Forward }},
		{cfg.ActionMoveBackward, func(in messages.InputState) bool { return in.Backward }},
		{cfg.ActionMoveLeft, func(in messages.InputState) bool { return in.Left }},
		{cfg.ActionMoveRight, func(in messages.InputState) bool { return in.Right }},
		{cfg.ActionSprint, func(in messages.InputState) bool { return in.Sprint }},
		{cfg.ActionJump, func(in messages.InputState) bool { return in.Jump }},
		{cfg.ActionAttack, func(in messages.InputState) bool { return in.Attack }},
		{cfg.ActionCastSpell, func(in messages.InputState) bool { return in.CastSpell }},
	}

	for _, tt := range tests {
		s := NewIntentSampler()
		s.HandleAction(tt.action, true)
		if !tt.check(s.Intent()) {
			t.Errorf("action %d: field not set", tt.action)
		}
		s.HandleAction(tt.action, false)
		if tt.check(s.Intent()) {
			t.Errorf("action %d: field not cleared", tt.action)
		}
	}
}

func TestSequenceAdvancesOnlyOnChange(t *testing.T) {
	s := NewIntentSampler()

	if got := s.Intent().Sequence; got != 0 {
		t.Fatalf("initial sequence = %d, want 0", got)
	}

	s.HandleAction(cfg.ActionMoveForward, true)
	if got := s.Intent().Sequence; got != 1 {
		t.Fatalf("after press, sequence = %d, want 1", got)
	}

	// Held key repeated every frame must not advance the sequence.
	for i := 0; i < 10; i++ {
		s.HandleAction(cfg.ActionMoveForward, true)
	}
	if got := s.Intent().Sequence; got != 1 {
		t.Fatalf("after holds, sequence = %d, want 1", got)
	}

	s.HandleAction(cfg.ActionMoveForward, false)
	if got := s.Intent().Sequence; got != 2 {
		t.Fatalf("after release, sequence = %d, want 2", got)
	}
}

func TestSequenceAdvancesPerFieldChange(t *testing.T) {
	s := NewIntentSampler()
	s.HandleAction(cfg.ActionMoveForward, true)
	s.HandleAction(cfg.ActionSprint, true)
	s.HandleAction(cfg.ActionMoveLeft, true)
	if got := s.Intent().Sequence; got != 3 {
		t.Fatalf("sequence = %d, want 3", got)
	}
}

func TestUnknownActionIgnored(t *testing.T) {
	s := NewIntentSampler()
	s.HandleAction(cfg.ActionToggleCamera, true)
	s.HandleAction(cfg.ActionNone, true)
	if s.Intent() != (messages.InputState{}) {
		t.Fatalf("unbound actions must not change the intent: %+v", s.Intent())
	}
}

func TestDesiredAnimationPriority(t *testing.T) {
	tests := []struct {
		name    string
		actions []cfg.ActionID
		want    string
	}{
		{"idle", nil, "idle"},
		{"walk forward", []cfg.ActionID{cfg.ActionMoveForward}, "walk-forward"},
		{"walk back", []cfg.ActionID{cfg.ActionMoveBackward}, "walk-back"},
		{"walk left", []cfg.ActionID{cfg.ActionMoveLeft}, "walk-left"},
		{"walk right", []cfg.ActionID{cfg.ActionMoveRight}, "walk-right"},
		{"run forward", []cfg.ActionID{cfg.ActionMoveForward, cfg.ActionSprint}, "run-forward"},
		{"attack beats movement", []cfg.ActionID{cfg.ActionMoveForward, cfg.ActionAttack}, "attack"},
		{"attack beats cast", []cfg.ActionID{cfg.ActionCastSpell, cfg.ActionAttack}, "attack"},
		{"cast beats jump", []cfg.ActionID{cfg.ActionJump, cfg.ActionCastSpell}, "cast"},
		{"jump beats movement", []cfg.ActionID{cfg.ActionMoveForward, cfg.ActionJump}, "jump"},
		{"sprint alone is idle", []cfg.ActionID{cfg.ActionSprint}, "idle"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewIntentSampler()
			for _, a := range tt.actions {
				s.HandleAction(a, true)
			}
			if got := s.DesiredAnimation(); got != tt.want {
				t.Errorf("DesiredAnimation() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDesiredAnimationTieBreaks(t *testing.T) {
	tests := []struct {
		name    string
		actions []cfg.ActionID
		want    string
	}{
		{"forward+left is left", []cfg.ActionID{cfg.ActionMoveForward, cfg.ActionMoveLeft}, "walk-left"},
		{"forward+right is right", []cfg.ActionID{cfg.ActionMoveForward, cfg.ActionMoveRight}, "walk-right"},
		{"back+left is left", []cfg.ActionID{cfg.ActionMoveBackward, cfg.ActionMoveLeft}, "walk-left"},
		{"opposites cancel to idle", []cfg.ActionID{cfg.ActionMoveForward, cfg.ActionMoveBackward}, "idle"},
		{"lateral opposites cancel", []cfg.ActionID{cfg.ActionMoveLeft, cfg.ActionMoveRight}, "idle"},
		{"cancelled plus forward", []cfg.ActionID{cfg.ActionMoveLeft, cfg.ActionMoveRight, cfg.ActionMoveForward}, "walk-forward"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewIntentSampler()
			for _, a := range tt.actions {
				s.HandleAction(a, true)
			}
			if got := s.DesiredAnimation(); got != tt.want {
				t.Errorf("DesiredAnimation() = %q, want %q", got, tt.want)
			}
		})
	}
}
