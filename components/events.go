package components

import (
	"github.com/ashreef/armlab/gamemath"
	"github.com/yohamta/donburi/features/events"
)

// GripperMoved carries the end effector's world position after each tick.
type GripperMoved struct {
	Position gamemath.Vec3
}

// CameraUpdated carries the camera and viewport the scene was drawn with.
type CameraUpdated struct {
	Camera gamemath.Camera
	Width  float64
	Height float64
}

// ParticleBurst is published on every grab with the click's screen position.
type ParticleBurst struct {
	X, Y  float64
	Count int
}

var (
	GripperMovedEvent  = events.NewEventType[GripperMoved]()
	CameraUpdatedEvent = events.NewEventType[CameraUpdated]()
	ParticleBurstEvent = events.NewEventType[ParticleBurst]()
)
