package factory

import (
	"github.com/ashreef/armlab/archetypes"
	"github.com/ashreef/armlab/components"
	cfg "github.com/ashreef/armlab/config"
	"github.com/ashreef/armlab/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateOverlay spawns the effects overlay plus the two broadphase objects it
// hover-tests with: a square around the projected gripper and a point at the
// pointer. Both start off-screen.
func CreateOverlay(ecs *ecs.ECS, space *resolv.Space) *donburi.Entry {
	overlay := archetypes.Overlay.Spawn(ecs)
	components.Overlay.SetValue(overlay, components.OverlayData{})

	size := cfg.Overlay.HoverRadius * 2
	zone := archetypes.HoverZone.Spawn(ecs)
	zoneObj := resolv.NewObject(-size*2, -size*2, size, size, tags.ResolvHoverZone)
	zoneObj.Data = zone
	space.Add(zoneObj)
	components.Object.Set(zone, &components.ObjectData{Object: zoneObj})

	pointer := archetypes.Pointer.Spawn(ecs)
	pointerObj := resolv.NewObject(-size*2, -size*2, 1, 1, tags.ResolvPointer)
	pointerObj.Data = pointer
	space.Add(pointerObj)
	components.Object.Set(pointer, &components.ObjectData{Object: pointerObj})

	return overlay
}
