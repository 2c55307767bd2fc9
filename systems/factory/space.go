package factory

import (
	"github.com/ashreef/armlab/archetypes"
	"github.com/ashreef/armlab/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace spawns the screen-space broadphase used for hover checks.
func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(max(width, cellWidth), max(height, cellHeight), cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}
