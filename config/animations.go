package config

// ClipDef describes one animation clip by logical name.
type ClipDef struct {
	Duration float64 // seconds for one playthrough
	Loop     bool
}

// Crossfade timing. Transitions back to idle after a one-shot use the
// short fade so the character doesn't float through the blend.
const (
	CrossfadeDuration     = 0.24
	IdleCrossfadeDuration = CrossfadeDuration / 3
)

// IdleClip is the fallback action when nothing else can play.
const IdleClip = "idle"

// CharacterClips maps a character class to its clip set. Clip names are
// the logical names requested from the asset loader; the server's
// animation tags use the same vocabulary.
var CharacterClips = map[string]map[string]ClipDef{
	"wizard": {
		"idle":         {Duration: 2.4, Loop: true},
		"walk-forward": {Duration: 0.9, Loop: true},
		"walk-back":    {Duration: 0.9, Loop: true},
		"walk-left":    {Duration: 0.9, Loop: true},
		"walk-right":   {Duration: 0.9, Loop: true},
		"run-forward":  {Duration: 0.6, Loop: true},
		"run-back":     {Duration: 0.6, Loop: true},
		"run-left":     {Duration: 0.6, Loop: true},
		"run-right":    {Duration: 0.6, Loop: true},
		"jump":         {Duration: 0.8},
		"attack":       {Duration: 0.7},
		"cast":         {Duration: 1.1},
		"damage":       {Duration: 0.5},
		"death":        {Duration: 1.6},
	},
	"paladin": {
		"idle":         {Duration: 2.0, Loop: true},
		"walk-forward": {Duration: 1.0, Loop: true},
		"walk-back":    {Duration: 1.0, Loop: true},
		"walk-left":    {Duration: 1.0, Loop: true},
		"walk-right":   {Duration: 1.0, Loop: true},
		"run-forward":  {Duration: 0.7, Loop: true},
		"run-back":     {Duration: 0.7, Loop: true},
		"run-left":     {Duration: 0.7, Loop: true},
		"run-right":    {Duration: 0.7, Loop: true},
		"jump":         {Duration: 0.9},
		"attack":       {Duration: 0.6},
		"cast":         {Duration: 1.3},
		"damage":       {Duration: 0.5},
		"death":        {Duration: 1.8},
	},
}

// CharacterClasses lists the selectable classes in UI order.
var CharacterClasses = []string{"wizard", "paladin"}
