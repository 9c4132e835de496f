package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	cfg "github.com/mossback/spellstorm-mp/config"
	"github.com/mossback/spellstorm-mp/network"
	"github.com/mossback/spellstorm-mp/systems"
	"github.com/mossback/spellstorm-mp/ui"
)

// RegisterScene shows the join form and drives the connect/register
// handshake. On success it hands the live client to the arena scene.
type RegisterScene struct {
	sceneChanger SceneChanger
	registerUI   *ui.RegisterUI
	netClient    *network.Client
	once         sync.Once

	pendingProfile *systems.SavedProfile
	initialStatus  string
}

func NewRegisterScene(sc SceneChanger) *RegisterScene {
	return &RegisterScene{sceneChanger: sc}
}

// NewRegisterSceneWithStatus seeds the status line, used when a session
// ends and the player lands back on the form.
func NewRegisterSceneWithStatus(sc SceneChanger, status string) *RegisterScene {
	return &RegisterScene{sceneChanger: sc, initialStatus: status}
}

func (s *RegisterScene) Update() {
	s.once.Do(s.configure)

	s.registerUI.Update()

	if s.netClient == nil {
		return
	}

	switch s.netClient.State() {
	case network.StateRegistered:
		s.registerUI.SetStatus("Registered! Entering arena...")
		if s.pendingProfile != nil {
			_ = systems.SaveProfile(s.pendingProfile)
		}
		client := s.netClient
		s.netClient = nil
		s.sceneChanger.ChangeScene(NewArenaScene(s.sceneChanger, client))

	case network.StateError:
		errMsg := "Connection failed"
		if err := s.netClient.LastError(); err != nil {
			errMsg = err.Error()
		}
		s.registerUI.SetStatus(errMsg)
		s.registerUI.SetConnecting(false)
		s.netClient.Disconnect()
		s.netClient = nil

	case network.StateConnecting:
		s.registerUI.SetStatus("Connecting...")

	case network.StateConnected:
		s.registerUI.SetStatus("Connected, registering...")

	case network.StateDisconnected:
		s.registerUI.SetStatus("Disconnected")
		s.registerUI.SetConnecting(false)
		s.netClient = nil
	}
}

func (s *RegisterScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 30, 255})

	if s.registerUI == nil {
		return
	}
	s.registerUI.UI.Draw(screen)
}

func (s *RegisterScene) configure() {
	s.registerUI = ui.NewRegisterUI(s.connect)
	if s.initialStatus != "" {
		s.registerUI.SetStatus(s.initialStatus)
	}

	if profile, err := systems.LoadProfile(); err == nil && profile != nil {
		s.registerUI.Prefill(profile.Username, profile.CharacterClass, profile.Address)
	}
}

func (s *RegisterScene) connect(address, username, characterClass string) {
	if s.netClient != nil {
		return // handshake already in flight
	}

	s.pendingProfile = &systems.SavedProfile{
		Username:       username,
		CharacterClass: characterClass,
		Address:        address,
	}

	s.registerUI.SetStatus("Connecting...")
	s.registerUI.SetConnecting(true)

	s.netClient = network.NewClient()
	s.netClient.Connect(address, cfg.Net.GameVersion, username, characterClass)
}
