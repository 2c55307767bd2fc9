package components

import "github.com/yohamta/donburi"

// SettingsData stores user preferences that survive restarts.
type SettingsData struct {
	ShowHUD   bool
	GuideSeen bool
}

var Settings = donburi.NewComponentType[SettingsData]()
