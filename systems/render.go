package systems

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/mossback/spellstorm-mp/components"
	cfg "github.com/mossback/spellstorm-mp/config"
	"github.com/mossback/spellstorm-mp/fonts"
	"github.com/mossback/spellstorm-mp/shared/gamemath"
	"github.com/yohamta/donburi"
)

const (
	gridSpacing      = 2.0  // meters between grid lines
	gridExtent       = 60.0 // meters of grid drawn around the camera aim
	playerRadius     = 0.5  // meters
	projectileRadius = 0.25 // meters
	nameBarWidth     = 44.0 // pixels
	nameBarHeight    = 4.0  // pixels
)

// ArenaRenderer projects the 3D arena onto the screen top-down, looking
// along -Y. The camera rig still matters: view rotation follows the
// rig's yaw and zoom follows its distance, so both camera modes are
// visible in how the arena moves.
type ArenaRenderer struct {
	rig *CameraRig
}

func NewArenaRenderer(rig *CameraRig) *ArenaRenderer {
	return &ArenaRenderer{rig: rig}
}

func (r *ArenaRenderer) viewYaw() float64 {
	if r.rig.Mode() == ModeOrbital {
		return r.rig.Orbital.Angle
	}
	return r.rig.Follow.Yaw
}

func (r *ArenaRenderer) viewDistance() float64 {
	if r.rig.Mode() == ModeOrbital {
		return r.rig.Orbital.Distance
	}
	return r.rig.Follow.Distance
}

// pixelsPerMeter ties the projection scale to the camera zoom.
func (r *ArenaRenderer) pixelsPerMeter() float64 {
	return 420.0 / r.viewDistance()
}

// project maps a world position into screen coordinates. Camera-forward
// (-Z in the view frame) points up the screen.
func (r *ArenaRenderer) project(p gamemath.Vec3, screen *ebiten.Image) (float32, float32) {
	bounds := screen.Bounds()
	cx := float64(bounds.Dx()) / 2
	cy := float64(bounds.Dy()) / 2
	ppm := r.pixelsPerMeter()

	rel := p.Sub(r.rig.Aim).RotateY(-r.viewYaw())
	return float32(cx + rel.X*ppm), float32(cy + rel.Z*ppm)
}

// Draw renders the grid, every player, and every projectile.
func (r *ArenaRenderer) Draw(world donburi.World, screen *ebiten.Image) {
	r.drawGrid(screen)
	r.drawProjectiles(world, screen)
	r.drawPlayers(world, screen)
}

func (r *ArenaRenderer) drawGrid(screen *ebiten.Image) {
	// Snap the grid origin to the spacing so lines stay put as the
	// camera moves.
	startX := math.Floor((r.rig.Aim.X-gridExtent)/gridSpacing) * gridSpacing
	startZ := math.Floor((r.rig.Aim.Z-gridExtent)/gridSpacing) * gridSpacing

	for x := startX; x <= r.rig.Aim.X+gridExtent; x += gridSpacing {
		x1, y1 := r.project(gamemath.Vec3{X: x, Z: r.rig.Aim.Z - gridExtent}, screen)
		x2, y2 := r.project(gamemath.Vec3{X: x, Z: r.rig.Aim.Z + gridExtent}, screen)
		vector.StrokeLine(screen, x1, y1, x2, y2, 1, cfg.GridGray, false)
	}
	for z := startZ; z <= r.rig.Aim.Z+gridExtent; z += gridSpacing {
		x1, y1 := r.project(gamemath.Vec3{X: r.rig.Aim.X - gridExtent, Z: z}, screen)
		x2, y2 := r.project(gamemath.Vec3{X: r.rig.Aim.X + gridExtent, Z: z}, screen)
		vector.StrokeLine(screen, x1, y1, x2, y2, 1, cfg.GridGray, false)
	}
}

func (r *ArenaRenderer) drawPlayers(world donburi.World, screen *ebiten.Image) {
	smallFont := fonts.UISmall.Get()
	ppm := r.pixelsPerMeter()

	components.NetPlayer.Each(world, func(entry *donburi.Entry) {
		p := components.NetPlayer.Get(entry)
		if !p.Initialized {
			return
		}

		sx, sy := r.project(p.RenderPos, screen)
		radius := float32(playerRadius * ppm)

		bodyColor, ok := cfg.PlayerColors[p.Color]
		if !ok {
			bodyColor = cfg.PlayerColors["white"]
		}
		vector.DrawFilledCircle(screen, sx, sy, radius, bodyColor, true)
		if p.IsLocal {
			vector.StrokeCircle(screen, sx, sy, radius+2, 2, cfg.BrightGreen, true)
		}

		// Facing tick: a short line from the center along the yaw's
		// forward direction.
		forward := gamemath.Vec3{Z: -1}.RotateY(p.RenderYaw)
		tip := p.RenderPos.Add(forward.Scale(playerRadius * 1.6))
		tx, ty := r.project(tip, screen)
		vector.StrokeLine(screen, sx, sy, tx, ty, 2, cfg.White, true)

		// Name and health above the circle.
		labelX := int(sx) - len(p.Username)*3
		labelY := int(sy) - int(radius) - 14
		text.Draw(screen, p.Username, smallFont, labelX, labelY, cfg.White)

		if p.MaxHealth > 0 {
			barX := sx - nameBarWidth/2
			barY := sy - radius - 10
			ratio := float32(p.Health) / float32(p.MaxHealth)
			vector.DrawFilledRect(screen, barX, barY, nameBarWidth, nameBarHeight, cfg.GridGray, false)
			vector.DrawFilledRect(screen, barX, barY, nameBarWidth*ratio, nameBarHeight, cfg.HealthRed, false)
		}
	})
}

func (r *ArenaRenderer) drawProjectiles(world donburi.World, screen *ebiten.Image) {
	ppm := r.pixelsPerMeter()
	components.Projectile.Each(world, func(entry *donburi.Entry) {
		p := components.Projectile.Get(entry)
		sx, sy := r.project(p.Position, screen)
		radius := float32(projectileRadius * ppm)
		vector.DrawFilledCircle(screen, sx, sy, radius, cfg.ManaBlue, true)

		// Short velocity trail behind the sphere.
		if speed := p.Velocity.Length(); speed > 0 {
			tail := p.Position.Sub(p.Velocity.Scale(0.08))
			tx, ty := r.project(tail, screen)
			vector.StrokeLine(screen, sx, sy, tx, ty, 2, cfg.ManaBlue, true)
		}
	})
}
