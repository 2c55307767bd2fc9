package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionGrab
	ActionToggleHUD
	ActionDismiss
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys and buttons bound to an action
type InputBinding struct {
	Keys                   []ebiten.Key
	MouseButtons           []ebiten.MouseButton
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Maximum queued clicks per tick; extra clicks in the same tick are dropped
	MaxClicksPerTick int
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		MaxClicksPerTick: 8,
		Bindings: map[ActionID]InputBinding{
			ActionGrab: {
				Keys: []ebiten.Key{ebiten.KeySpace},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionToggleHUD: {
				Keys: []ebiten.Key{ebiten.KeyP},
				// Back / Select button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterLeft,
				},
			},
			ActionDismiss: {
				Keys: []ebiten.Key{ebiten.KeyEnter},
			},
			ActionQuit: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
			},
		},
	}
}
