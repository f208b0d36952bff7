package systems

import (
	cfg "github.com/automoto/alienrun/config"

	"github.com/automoto/alienrun/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the debug overlay hotkey. Runs even while paused.
func UpdateSettings(e *ecs.ECS) {
	input := getOrCreateInput(e)
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings := GetOrCreateSettings(e)
		settings.Debug = !settings.Debug
		SaveCurrentSettings(settings)
	}
}

// GetOrCreateSettings returns the singleton settings component, seeding it
// from the persisted values the first time.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, settingsDefaults())
	}
	return components.Settings.Get(entry)
}
