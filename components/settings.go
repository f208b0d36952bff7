package components

import "github.com/yohamta/donburi"

// SettingsData holds the toggles that persist across runs.
type SettingsData struct {
	Debug      bool
	Fullscreen bool
}

var Settings = donburi.NewComponentType[SettingsData]()
