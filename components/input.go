package components

import (
	cfg "github.com/ashreef/armlab/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// Click is a pointer press or touch start in screen pixels. At is the clock's
// elapsed seconds when it was polled.
type Click struct {
	X, Y float64
	At   float64
}

// InputData stores this tick's polled input. Written only by UpdateInput.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state

	Pointer      math.Vec2 // last known pointer position
	PointerValid bool      // false until the pointer has been seen

	Clicks []Click // clicks polled this tick

	// Captured is set while a UI panel owns the pointer; the arm ignores
	// clicks and grab presses then.
	Captured bool
}

var Input = donburi.NewComponentType[InputData]()
