package systems

import (
	"github.com/ashreef/armlab/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpaceCellSize is the broadphase cell edge in pixels.
const SpaceCellSize = 32

// ResizeViewport updates the camera aspect and the hover broadphase for a new
// viewport. Calling it again with the same size does nothing.
func ResizeViewport(ecs *ecs.ECS, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	w, h := float64(width), float64(height)
	if camera.Width == w && camera.Height == h {
		return
	}
	camera.Width = w
	camera.Height = h
	camera.Aspect = w / h

	resizeSpace(ecs, width, height)
}

// resizeSpace swaps the broadphase for one covering the new viewport and moves
// every object across.
func resizeSpace(ecs *ecs.ECS, width, height int) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	old := components.Space.Get(spaceEntry)
	space := resolv.NewSpace(max(width, SpaceCellSize), max(height, SpaceCellSize), SpaceCellSize, SpaceCellSize)

	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		old.Remove(obj.Object)
		space.Add(obj.Object)
	})
	components.Space.Set(spaceEntry, space)
}

// GetCamera returns the scene camera, or nil before one exists.
func GetCamera(ecs *ecs.ECS) *components.CameraData {
	entry, ok := components.Camera.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Camera.Get(entry)
}
