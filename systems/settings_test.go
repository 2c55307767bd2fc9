package systems

import (
	"testing"

	"github.com/ashreef/armlab/components"
	cfg "github.com/ashreef/armlab/config"
)

func TestToggleHUD(t *testing.T) {
	e := newTestScene(t)
	input := GetInput(e)

	input.Current[cfg.ActionToggleHUD] = true
	UpdateSettings(e)
	if !GetOrCreateSettings(e).ShowHUD {
		t.Fatal("HUD not shown after toggle")
	}

	// Still held: no second toggle.
	input.Previous = input.Current
	UpdateSettings(e)
	if !GetOrCreateSettings(e).ShowHUD {
		t.Error("held key toggled the HUD again")
	}

	input.Previous = input.Current
	input.Current[cfg.ActionToggleHUD] = false
	UpdateSettings(e)
	input.Previous = input.Current
	input.Current[cfg.ActionToggleHUD] = true
	UpdateSettings(e)
	if GetOrCreateSettings(e).ShowHUD {
		t.Error("second press did not hide the HUD")
	}
}

func TestMarkGuideSeen(t *testing.T) {
	e := newTestScene(t)
	MarkGuideSeen(e)
	if !GetOrCreateSettings(e).GuideSeen {
		t.Error("guide not marked seen")
	}
}

func TestQuitRequested(t *testing.T) {
	e := newTestScene(t)
	if QuitRequested(e) {
		t.Fatal("quit without input")
	}
	GetInput(e).Current[cfg.ActionQuit] = true
	if !QuitRequested(e) {
		t.Error("quit press not reported")
	}
}

func TestPersistenceWithoutStorage(t *testing.T) {
	// No InitPersistence: saving is a no-op and loading yields defaults.
	if err := SaveSettings(SavedSettings{ShowHUD: true}); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}
	got, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if got != (SavedSettings{}) {
		t.Errorf("LoadSettings = %+v, want defaults", got)
	}

	data := SavedSettings{ShowHUD: true, GuideSeen: true}.ToSettingsData()
	if data != (components.SettingsData{ShowHUD: true, GuideSeen: true}) {
		t.Errorf("ToSettingsData = %+v", data)
	}
}
