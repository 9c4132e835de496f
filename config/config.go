package config

import "image/color"

// GeneralConfig holds window and loop settings.
type GeneralConfig struct {
	Width  int
	Height int
	Title  string
}

// PlayerConfig contains movement tuning. Speed and SprintMultiplier must
// match the server's constants exactly or prediction drifts every tick.
type PlayerConfig struct {
	Speed            float64
	SprintMultiplier float64

	// Movement vectors longer than DiagonalLimit are normalized so
	// diagonal speed cannot exceed axis speed.
	DiagonalLimit float64
}

// NetConfig contains networking settings.
type NetConfig struct {
	// SimTickRate is the fixed simulation rate shared with the server.
	// Prediction and outgoing intent both run on this clock.
	SimTickRate    int
	GameVersion    string
	DefaultAddress string
}

// FixedDelta returns the simulation step in seconds.
func (n NetConfig) FixedDelta() float64 {
	return 1.0 / float64(n.SimTickRate)
}

// ReconcileConfig tunes how predicted state is blended toward
// authoritative snapshots. Corrections are rate-bounded blends, never
// snaps.
type ReconcileConfig struct {
	PositionThreshold float64 // meters of divergence before correcting
	PositionLerp      float64 // per-frame blend factor toward snapshot
	RotationThreshold float64 // radians of divergence before correcting
	RotationSlerp     float64 // per-frame slerp factor toward snapshot
}

// CameraConfig tunes both camera modes.
type CameraConfig struct {
	// Follow mode
	FollowDistance    float64
	FollowMinDistance float64
	FollowMaxDistance float64
	FollowHeight      float64
	PitchMin          float64
	PitchMax          float64

	// Orbital mode
	OrbitalDistance     float64
	OrbitalMinDistance  float64
	OrbitalMaxDistance  float64
	OrbitalElevation    float64 // default on mode entry
	OrbitalElevationMin float64
	OrbitalElevationMax float64

	// Shared
	AimHeight          float64 // camera always aims this far above the tracked position
	PointerSensitivity float64
	ScrollStep         float64
	ZoomEaseDuration   float32 // seconds for the scroll-zoom tween
	PositionSmoothing  float64 // per-frame exponential smoothing factor
}

// ProjectileConfig tunes the client-side projectile integrator. Speed
// matches the server's spawn parameter; MaxTurnRate is what makes
// homing projectiles dodgable.
type ProjectileConfig struct {
	Speed       float64
	MaxTurnRate float64 // radians per second
}

// DebugConfig holds development toggles.
type DebugConfig struct {
	SkipRegister bool
	ShowOverlay  bool
}

var C = GeneralConfig{
	Width:  1280,
	Height: 720,
	Title:  "spellstorm-mp",
}

var Player = PlayerConfig{
	Speed:            7.5,
	SprintMultiplier: 1.8,
	DiagonalLimit:    1.1,
}

var Net = NetConfig{
	SimTickRate:    60,
	GameVersion:    "0.3.0",
	DefaultAddress: "localhost:7373",
}

var Reconcile = ReconcileConfig{
	PositionThreshold: 0.4,
	PositionLerp:      0.2,
	RotationThreshold: 0.12,
	RotationSlerp:     0.3,
}

var Camera = CameraConfig{
	FollowDistance:    7.0,
	FollowMinDistance: 2.5,
	FollowMaxDistance: 16.0,
	FollowHeight:      2.5,
	PitchMin:          -0.6,
	PitchMax:          0.9,

	OrbitalDistance:     10.0,
	OrbitalMinDistance:  4.0,
	OrbitalMaxDistance:  24.0,
	OrbitalElevation:    0.55,
	OrbitalElevationMin: 0.12,
	OrbitalElevationMax: 1.35,

	AimHeight:          1.5,
	PointerSensitivity: 0.004,
	ScrollStep:         1.2,
	ZoomEaseDuration:   0.25,
	PositionSmoothing:  0.12,
}

var Projectile = ProjectileConfig{
	Speed:       15.0,
	MaxTurnRate: 2.4,
}

var Debug = DebugConfig{}

// Palette used by the arena renderer and HUD.
var (
	White       = color.RGBA{255, 255, 255, 255}
	LightGreen  = color.RGBA{150, 255, 150, 255}
	BrightGreen = color.RGBA{80, 255, 80, 255}
	HealthRed   = color.RGBA{220, 60, 60, 255}
	ManaBlue    = color.RGBA{80, 120, 255, 255}
	GridGray    = color.RGBA{45, 45, 60, 255}
)

// PlayerColors maps the server's assigned color names to render colors.
// Unknown names fall back to white.
var PlayerColors = map[string]color.RGBA{
	"cyan":       {0, 255, 255, 255},
	"magenta":    {255, 0, 255, 255},
	"yellow":     {255, 255, 0, 255},
	"lightgreen": {150, 255, 150, 255},
	"white":      {255, 255, 255, 255},
	"orange":     {255, 165, 0, 255},
}
