package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/mossback/spellstorm-mp/components"
	cfg "github.com/mossback/spellstorm-mp/config"
	"github.com/mossback/spellstorm-mp/fonts"
	"github.com/yohamta/donburi"
)

const (
	hudBarWidth  = 180
	hudBarHeight = 14
	hudMargin    = 12
	hudBarGap    = 6
)

// DrawHUD renders the local player's health and mana bars in the
// bottom-left corner plus the camera mode indicator.
func DrawHUD(world donburi.World, screen *ebiten.Image, rig *CameraRig) {
	local := findLocalPlayer(world)
	if local == nil {
		return
	}

	bounds := screen.Bounds()
	baseY := float32(bounds.Dy() - hudMargin - 2*hudBarHeight - hudBarGap)

	drawBar(screen, float32(hudMargin), baseY,
		float32(local.Health), float32(local.MaxHealth), cfg.HealthRed)
	drawBar(screen, float32(hudMargin), baseY+hudBarHeight+hudBarGap,
		float32(local.Mana), float32(local.MaxMana), cfg.ManaBlue)

	smallFont := fonts.UISmall.Get()
	modeLabel := fmt.Sprintf("camera: %s  [C to switch]", rig.Mode())
	text.Draw(screen, modeLabel, smallFont,
		hudMargin, int(baseY)-8, cfg.LightGreen)
}

// DrawStatusLine renders the connection status in the top-left corner.
func DrawStatusLine(screen *ebiten.Image, status string) {
	text.Draw(screen, status, fonts.UISmall.Get(), hudMargin, 16, cfg.LightGreen)
}

// DrawDebugOverlay renders prediction diagnostics when enabled.
func DrawDebugOverlay(world donburi.World, screen *ebiten.Image, rig *CameraRig, inputSeq uint32) {
	if !cfg.Debug.ShowOverlay {
		return
	}
	local := findLocalPlayer(world)
	if local == nil {
		return
	}

	smallFont := fonts.UISmall.Get()
	lines := []string{
		fmt.Sprintf("pos %.2f %.2f %.2f", local.RenderPos.X, local.RenderPos.Y, local.RenderPos.Z),
		fmt.Sprintf("yaw %.2f  refYaw %.2f", local.RenderYaw, rig.ReferenceYaw()),
		fmt.Sprintf("seq local %d  acked %d", inputSeq, local.LastInputSeq),
		fmt.Sprintf("auth %.2f %.2f %.2f  anim %s", local.Position.X, local.Position.Y, local.Position.Z, local.Animation),
	}
	y := 32
	for _, line := range lines {
		text.Draw(screen, line, smallFont, hudMargin, y, cfg.White)
		y += 14
	}
}

func drawBar(screen *ebiten.Image, x, y, value, max float32, fill color.Color) {
	vector.DrawFilledRect(screen, x, y, hudBarWidth, hudBarHeight, cfg.GridGray, false)
	if max <= 0 {
		return
	}
	ratio := value / max
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	vector.DrawFilledRect(screen, x, y, hudBarWidth*ratio, hudBarHeight, fill, false)
}

func findLocalPlayer(world donburi.World) *components.NetPlayerData {
	var local *components.NetPlayerData
	components.NetPlayer.Each(world, func(entry *donburi.Entry) {
		p := components.NetPlayer.Get(entry)
		if p.IsLocal {
			local = p
		}
	})
	return local
}
