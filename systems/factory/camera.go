package factory

import (
	"github.com/ashreef/armlab/archetypes"
	"github.com/ashreef/armlab/components"
	cfg "github.com/ashreef/armlab/config"
	"github.com/ashreef/armlab/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns the fixed scene camera for a width×height viewport.
func CreateCamera(ecs *ecs.ECS, width, height float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		Camera: gamemath.Camera{
			Position: cfg.Camera.Position,
			Target:   cfg.Camera.LookAt,
			Up:       gamemath.V3(0, 1, 0),
			FovY:     cfg.Camera.FovY,
			Aspect:   aspect(width, height),
			Near:     cfg.Camera.Near,
			Far:      cfg.Camera.Far,
		},
		Width:  width,
		Height: height,
	})
	return camera
}

func aspect(width, height float64) float64 {
	if width <= 0 || height <= 0 {
		return 1
	}
	return width / height
}
