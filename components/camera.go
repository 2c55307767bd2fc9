package components

import (
	"github.com/ashreef/armlab/gamemath"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	gamemath.Camera

	// Viewport in pixels; the camera's Aspect follows it.
	Width  float64
	Height float64
}

var Camera = donburi.NewComponentType[CameraData]()
