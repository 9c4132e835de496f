package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

// SavedProfile is the player profile stored on disk: what the register
// form was last submitted with, so rejoining is one click.
type SavedProfile struct {
	Username       string `json:"username"`
	CharacterClass string `json:"characterClass"`
	Address        string `json:"address"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for profile storage.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "spellstorm",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadProfile loads the saved profile from disk. A missing or corrupt
// profile is not an error; the register form just starts empty.
func LoadProfile() (*SavedProfile, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("profile")
	if err != nil {
		log.Printf("Warning: Could not load profile: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var profile SavedProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		log.Printf("Warning: Could not parse saved profile: %v", err)
		return nil, err
	}

	return &profile, nil
}

// SaveProfile saves the profile to disk.
func SaveProfile(p *SavedProfile) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		log.Printf("Warning: Could not serialize profile: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("profile", data); err != nil {
		log.Printf("Warning: Could not save profile: %v", err)
		return err
	}
	return nil
}
