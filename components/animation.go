package components

import (
	"log"
	"math"

	"github.com/mossback/spellstorm-mp/config"
	"github.com/yohamta/donburi"
)

// AnimationData is a per-player animation mixer. Exactly one action is
// active (weight 1) at a time; the previously active action fades out
// over the crossfade window. One-shot clips clamp on their last frame
// and transition back to idle exactly once.
type AnimationData struct {
	// Registry is the full clip table for the class: every tag the
	// server may legally send. Clips is the subset that actually
	// loaded; a registered-but-unloaded clip falls back to idle.
	Registry map[string]config.ClipDef
	Clips    map[string]config.ClipDef

	Current      string
	Fading       string // previous action fading out, "" when fade done
	Elapsed      float64
	FadeElapsed  float64
	FadeDuration float64

	oneShotDone bool
	lastAuthTag string
}

var Animation = donburi.NewComponentType[AnimationData]()

// NewAnimationState builds a mixer starting on idle.
func NewAnimationState(registry, clips map[string]config.ClipDef) AnimationData {
	return AnimationData{
		Registry: registry,
		Clips:    clips,
		Current:  config.IdleClip,
	}
}

// Request plays a locally-guessed action for instant feedback. The
// authoritative tag from the next snapshot confirms or overrides it.
func (a *AnimationData) Request(name string) {
	if name == a.Current {
		return
	}
	if _, ok := a.Clips[name]; !ok {
		log.Printf("[animation] clip %q not loaded, falling back to idle", name)
		a.play(config.IdleClip, config.CrossfadeDuration)
		return
	}
	a.play(name, config.CrossfadeDuration)
}

// SetAuthoritative applies the server-confirmed animation tag. The tag
// is the source of truth and overrides local guesses, but a repeated
// tag is not re-triggered (rows arrive far more often than actions
// change, and one-shots must not restart on every snapshot).
func (a *AnimationData) SetAuthoritative(tag string) {
	if tag == "" || tag == a.lastAuthTag {
		return
	}
	a.lastAuthTag = tag

	if _, known := a.Registry[tag]; !known {
		log.Printf("[animation] unrecognized animation tag %q, keeping %q", tag, a.Current)
		return
	}
	if _, loaded := a.Clips[tag]; !loaded {
		log.Printf("[animation] clip %q not loaded, falling back to idle", tag)
		a.play(config.IdleClip, config.CrossfadeDuration)
		return
	}
	if tag != a.Current {
		a.play(tag, config.CrossfadeDuration)
	}
}

// Update advances playback and fades by dt seconds.
func (a *AnimationData) Update(dt float64) {
	if a.Fading != "" {
		a.FadeElapsed += dt
		if a.FadeElapsed >= a.FadeDuration {
			a.Fading = ""
		}
	}

	clip, ok := a.Clips[a.Current]
	if !ok {
		return
	}

	a.Elapsed += dt
	if clip.Loop {
		if a.Elapsed >= clip.Duration && clip.Duration > 0 {
			a.Elapsed = math.Mod(a.Elapsed, clip.Duration)
		}
		return
	}

	// One-shot: clamp on finish, then return to idle with the short
	// fade. The oneShotDone latch makes the idle trigger fire once.
	if a.Elapsed >= clip.Duration && !a.oneShotDone {
		a.oneShotDone = true
		a.Elapsed = clip.Duration
		a.play(config.IdleClip, config.IdleCrossfadeDuration)
	}
}

// ActiveWeight is the fade-in weight of the current action, reaching 1
// once the crossfade completes.
func (a *AnimationData) ActiveWeight() float64 {
	if a.Fading == "" || a.FadeDuration <= 0 {
		return 1
	}
	w := a.FadeElapsed / a.FadeDuration
	if w > 1 {
		return 1
	}
	return w
}

func (a *AnimationData) play(name string, fade float64) {
	if name == a.Current {
		return
	}
	a.Fading = a.Current
	a.Current = name
	a.Elapsed = 0
	a.FadeElapsed = 0
	a.FadeDuration = fade
	a.oneShotDone = false
}
