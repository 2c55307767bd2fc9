package systems

import (
	"github.com/ashreef/armlab/components"
	cfg "github.com/ashreef/armlab/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the preference hotkeys.
func UpdateSettings(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	settings := GetOrCreateSettings(ecs)

	if GetAction(input, cfg.ActionToggleHUD).JustPressed {
		settings.ShowHUD = !settings.ShowHUD
		SaveCurrentSettings(settings)
	}
}

// QuitRequested reports whether the quit action fired this tick.
func QuitRequested(ecs *ecs.ECS) bool {
	return GetAction(getOrCreateInput(ecs), cfg.ActionQuit).JustPressed
}

// MarkGuideSeen records that the welcome guide was dismissed.
func MarkGuideSeen(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	if settings.GuideSeen {
		return
	}
	settings.GuideSeen = true
	SaveCurrentSettings(settings)
}

// GetOrCreateSettings returns the singleton Settings component, creating if needed
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
	}
	return components.Settings.Get(entry)
}
