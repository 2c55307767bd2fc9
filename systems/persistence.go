package systems

import (
	"encoding/json"
	"fmt"

	"github.com/ashreef/armlab/components"
	cfg "github.com/ashreef/armlab/config"
	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	ShowHUD   bool `json:"showHud"`
	GuideSeen bool `json:"guideSeen"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.C.AppName,
	})
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. A missing item yields the defaults.
func LoadSettings() (SavedSettings, error) {
	var settings SavedSettings
	if gdataManager == nil {
		return settings, nil
	}

	data, err := gdataManager.LoadItem(cfg.Settings.StorageKey)
	if err != nil {
		return settings, fmt.Errorf("load %s: %w", cfg.Settings.StorageKey, err)
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return settings, nil
	}

	if err := json.Unmarshal(data, &settings); err != nil {
		return SavedSettings{}, fmt.Errorf("parse %s: %w", cfg.Settings.StorageKey, err)
	}
	return settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := gdataManager.SaveItem(cfg.Settings.StorageKey, data); err != nil {
		return fmt.Errorf("save %s: %w", cfg.Settings.StorageKey, err)
	}
	return nil
}

// SaveCurrentSettings persists the Settings component. Failures are logged
// and otherwise ignored.
func SaveCurrentSettings(s *components.SettingsData) {
	saved := SavedSettings{
		ShowHUD:   s.ShowHUD,
		GuideSeen: s.GuideSeen,
	}
	if err := SaveSettings(saved); err != nil {
		zap.L().Warn("could not save settings", zap.Error(err))
	}
}

// ToSettingsData converts loaded settings into the component value.
func (s SavedSettings) ToSettingsData() components.SettingsData {
	return components.SettingsData{
		ShowHUD:   s.ShowHUD,
		GuideSeen: s.GuideSeen,
	}
}
