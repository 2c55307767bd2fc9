package config

// SettingsConfig contains persistence configuration
type SettingsConfig struct {
	StorageKey string // gdata item holding the saved settings
}

// Settings is the global persistence configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		StorageKey: "settings",
	}
}
