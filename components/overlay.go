package components

import (
	"github.com/ashreef/armlab/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// OverlayData holds the screen-space effects state. Gripper and camera are
// fed by events; nothing is drawn until both have arrived.
type OverlayData struct {
	Gripper      gamemath.Vec3
	GripperKnown bool

	Camera        gamemath.Camera
	Width, Height float64
	CameraKnown   bool

	Screen      math.Vec2 // gripper projected to pixels
	ScreenValid bool

	Glow     float64 // 0..1
	Hovering bool

	// Canvases keep the faded trails between frames.
	Canvas      *ebiten.Image
	SparkCanvas *ebiten.Image
}

var Overlay = donburi.NewComponentType[OverlayData]()
