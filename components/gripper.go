package components

import (
	"github.com/charmbracelet/harmonica"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// GripperData tracks jaw travel and the grab hold timer.
type GripperData struct {
	Current  float64 // jaw travel, 0 = open
	Target   float64
	Velocity float64

	Spring      harmonica.Spring
	SpringDelta float64 // time step the spring was built for

	// Hold counts down the grab; nil while not grabbing.
	Hold *gween.Tween
}

var Gripper = donburi.NewComponentType[GripperData]()
