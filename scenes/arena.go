package scenes

import (
	"fmt"
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/mossback/spellstorm-mp/archetypes"
	"github.com/mossback/spellstorm-mp/assets/clips"
	"github.com/mossback/spellstorm-mp/components"
	cfg "github.com/mossback/spellstorm-mp/config"
	"github.com/mossback/spellstorm-mp/network"
	"github.com/mossback/spellstorm-mp/shared/gamemath"
	"github.com/mossback/spellstorm-mp/shared/messages"
	"github.com/mossback/spellstorm-mp/systems"
	"github.com/yohamta/donburi"
)

// Remote players render their latest snapshot through a short blend
// instead of snapping.
const (
	remotePosLerp  = 0.25
	remoteYawSlerp = 0.25
)

// ArenaScene is the in-game scene: it owns the ECS world, the local
// prediction loop, and the row-apply path from the network client.
type ArenaScene struct {
	sceneChanger SceneChanger
	netClient    *network.Client
	once         sync.Once

	world      donburi.World
	sampler    *systems.IntentSampler
	predictor  *systems.Predictor
	reconciler *systems.Reconciler
	rig        *systems.CameraRig
	stepper    *systems.FixedStepper
	sender     *systems.TickSender
	animSys    *systems.AnimationSystem
	renderer   *systems.ArenaRenderer

	playerEntries     map[string]*donburi.Entry
	projectileEntries map[uint64]*donburi.Entry
	clipLibraries     map[string]*clips.Library

	subApplied bool
	prevCast   bool
	lastCurX   int
	lastCurY   int
}

func NewArenaScene(sc SceneChanger, client *network.Client) *ArenaScene {
	return &ArenaScene{
		sceneChanger:      sc,
		netClient:         client,
		playerEntries:     make(map[string]*donburi.Entry),
		projectileEntries: make(map[uint64]*donburi.Entry),
		clipLibraries:     make(map[string]*clips.Library),
	}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)

	state := as.netClient.State()
	if state == network.StateDisconnected || state == network.StateError {
		log.Println("[arena] disconnected, returning to register screen")
		as.netClient.Disconnect()
		as.sceneChanger.ChangeScene(NewRegisterSceneWithStatus(
			as.sceneChanger, "Disconnected from server"))
		return
	}

	if !as.subApplied && as.netClient.SubscriptionApplied() {
		as.subApplied = true
	}

	as.applyRows()
	as.reconcileLocal()
	as.handleInput()

	frameDelta := 1.0 / float64(ebiten.TPS())

	// Fixed-tick prediction and intent send.
	intent := as.sampler.Intent()
	desired := as.sampler.DesiredAnimation()
	for i := 0; i < as.stepper.Advance(frameDelta); i++ {
		as.predictor.Step(intent, as.rig.Mode(), as.rig.ReferenceYaw(), as.stepper.Step())
		as.sender.Send(intent, as.predictor.Position, as.predictor.Yaw, desired)
	}

	as.updateRenderState()
	systems.UpdateProjectiles(as.world, frameDelta)
	as.animSys.Update(as.world, desired, frameDelta)
	as.rig.Update(frameDelta, as.predictor.Position)
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if as.world == nil {
		return
	}

	as.renderer.Draw(as.world, screen)
	systems.DrawHUD(as.world, screen, as.rig)
	systems.DrawStatusLine(screen, as.statusLine())
	systems.DrawDebugOverlay(as.world, screen, as.rig, as.sampler.Intent().Sequence)
}

func (as *ArenaScene) configure() {
	as.world = donburi.NewWorld()
	as.sampler = systems.NewIntentSampler()
	as.predictor = systems.NewPredictor()
	as.reconciler = systems.NewReconciler()
	as.rig = systems.NewCameraRig()
	as.stepper = systems.NewFixedStepper()
	as.sender = systems.NewTickSender(as.netClient)
	as.animSys = systems.NewAnimationSystem()
	as.renderer = systems.NewArenaRenderer(as.rig)
	as.lastCurX, as.lastCurY = ebiten.CursorPosition()
}

// applyRows drains pending row pushes and applies them to the world.
// Each row replaces its entity's snapshot as a unit.
func (as *ArenaScene) applyRows() {
	for _, row := range as.netClient.DrainPlayerRows() {
		as.applyPlayerRow(row)
	}
	for _, rm := range as.netClient.DrainPlayerRemoves() {
		if entry, ok := as.playerEntries[rm.Identity]; ok {
			entry.Remove()
			delete(as.playerEntries, rm.Identity)
		}
	}
	for _, row := range as.netClient.DrainProjectileRows() {
		as.spawnProjectile(row)
	}
	for _, rm := range as.netClient.DrainProjectileRemoves() {
		if entry, ok := as.projectileEntries[rm.ID]; ok {
			entry.Remove()
			delete(as.projectileEntries, rm.ID)
		}
	}
}

func (as *ArenaScene) applyPlayerRow(row messages.PlayerRow) {
	entry, ok := as.playerEntries[row.Identity]
	if !ok {
		entry = as.createPlayer(row)
		as.playerEntries[row.Identity] = entry
	}

	p := components.NetPlayer.Get(entry)
	isLocal := row.Identity == as.netClient.Identity()
	firstSnapshot := !p.Initialized

	p.Username = row.Username
	p.CharacterClass = row.CharacterClass
	p.Color = row.Color
	p.Position = row.Position
	p.Rotation = row.Rotation
	p.Health = row.Health
	p.MaxHealth = row.MaxHealth
	p.Mana = row.Mana
	p.MaxMana = row.MaxMana
	p.Animation = row.Animation
	p.LastInputSeq = row.LastInputSeq
	p.IsLocal = isLocal
	p.Initialized = true

	if isLocal && firstSnapshot {
		// Initial spawn: accept the server position outright.
		as.predictor.Position = row.Position
		as.predictor.Yaw = row.Rotation.Y
		return
	}

	if firstSnapshot {
		p.RenderPos = row.Position
		p.RenderYaw = row.Rotation.Y
	}
}

// reconcileLocal blends the predictor toward the latest stored snapshot
// every frame, not just on row arrival, so a persistent divergence
// keeps correcting until it closes.
func (as *ArenaScene) reconcileLocal() {
	entry, ok := as.playerEntries[as.netClient.Identity()]
	if !ok {
		return
	}
	p := components.NetPlayer.Get(entry)
	if !p.Initialized {
		return
	}

	if pos, corrected := as.reconciler.ReconcilePosition(
		as.predictor.Position, p.Position, as.rig.Mode()); corrected {
		as.predictor.Position = pos
	}
	if yaw, corrected := as.reconciler.ReconcileYaw(
		as.predictor.Yaw, p.Rotation.Y); corrected {
		as.predictor.Yaw = yaw
	}
}

func (as *ArenaScene) createPlayer(row messages.PlayerRow) *donburi.Entry {
	entry := archetypes.Player.Spawn(as.world)

	components.NetPlayer.SetValue(entry, components.NetPlayerData{
		Identity: row.Identity,
	})

	lib := as.clipLibrary(row.CharacterClass)
	components.Animation.SetValue(entry, components.NewAnimationState(
		clips.Registry(row.CharacterClass), lib.Clips))

	return entry
}

// clipLibrary loads and caches the clip set for a class. An unknown
// class still gets a mixer; it just has nothing to play beyond logging.
func (as *ArenaScene) clipLibrary(class string) *clips.Library {
	if lib, ok := as.clipLibraries[class]; ok {
		return lib
	}
	lib, err := clips.Load(class)
	if err != nil {
		log.Printf("[arena] clips for class %q: %v", class, err)
		lib = &clips.Library{Class: class, Clips: map[string]cfg.ClipDef{}}
	}
	as.clipLibraries[class] = lib
	return lib
}

func (as *ArenaScene) spawnProjectile(row messages.ProjectileRow) {
	var candidates []systems.TargetCandidate
	components.NetPlayer.Each(as.world, func(entry *donburi.Entry) {
		p := components.NetPlayer.Get(entry)
		candidates = append(candidates, systems.TargetCandidate{
			Identity: p.Identity,
			Position: p.Position,
		})
	})

	targetID, hasTarget := systems.ResolveTarget(row, candidates)
	var targetPos gamemath.Vec3
	if hasTarget {
		for _, c := range candidates {
			if c.Identity == targetID {
				targetPos = c.Position
				break
			}
		}
	}

	entry := archetypes.Projectile.Spawn(as.world)
	components.Projectile.SetValue(entry,
		systems.NewProjectileState(row, targetID, hasTarget, targetPos))
	as.projectileEntries[row.ID] = entry
}

func (as *ArenaScene) handleInput() {
	systems.PollInput(as.sampler)

	for _, key := range cfg.Input.Bindings[cfg.ActionToggleCamera].Keys {
		if inpututil.IsKeyJustPressed(key) {
			as.rig.Toggle(as.predictor.Yaw)
		}
	}

	// Camera look while the right mouse button is held.
	curX, curY := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		as.rig.HandlePointer(float64(curX-as.lastCurX), float64(curY-as.lastCurY))
	}
	as.lastCurX, as.lastCurY = curX, curY

	_, wheelY := ebiten.Wheel()
	as.rig.HandleScroll(wheelY)

	// Discrete spell cast on the rising edge of the cast action.
	castHeld := as.sampler.Intent().CastSpell
	if castHeld && !as.prevCast {
		if err := as.netClient.CastSpell("magic_missile"); err != nil {
			log.Printf("[arena] cast failed: %v", err)
		}
	}
	as.prevCast = castHeld
}

// updateRenderState moves each entity's display position toward its
// simulation position: the local player tracks the predictor exactly,
// remote players blend toward their latest snapshot.
func (as *ArenaScene) updateRenderState() {
	components.NetPlayer.Each(as.world, func(entry *donburi.Entry) {
		p := components.NetPlayer.Get(entry)
		if !p.Initialized {
			return
		}
		if p.IsLocal {
			p.RenderPos = as.predictor.Position
			p.RenderYaw = as.predictor.Yaw
			return
		}
		p.RenderPos = p.RenderPos.Lerp(p.Position, remotePosLerp)
		current := gamemath.QuatFromYaw(p.RenderYaw)
		target := gamemath.QuatFromYaw(p.Rotation.Y)
		p.RenderYaw = current.Slerp(target, remoteYawSlerp).Yaw()
	})
}

func (as *ArenaScene) statusLine() string {
	if !as.subApplied {
		return "Synchronizing world state..."
	}
	return fmt.Sprintf("%s @ %d Hz | players: %d | projectiles: %d",
		as.netClient.ServerName(), as.netClient.TickRate(),
		len(as.playerEntries), len(as.projectileEntries))
}
