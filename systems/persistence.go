package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/alienrun/components"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Debug      bool `json:"debug"`
	Fullscreen bool `json:"fullscreen"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool
var savedDefaults *SavedSettings

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "alienrun",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings persists the live settings component.
func SaveCurrentSettings(s *components.SettingsData) {
	_ = SaveSettings(&SavedSettings{
		Debug:      s.Debug,
		Fullscreen: s.Fullscreen,
	})
}

// ApplySavedSettingsGlobal records loaded settings as the defaults every new
// scene's settings component starts from.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	savedDefaults = saved
}

func settingsDefaults() components.SettingsData {
	if savedDefaults == nil {
		return components.SettingsData{}
	}
	return components.SettingsData{
		Debug:      savedDefaults.Debug,
		Fullscreen: savedDefaults.Fullscreen,
	}
}
