package archetypes

import (
	"github.com/ashreef/armlab/components"
	cfg "github.com/ashreef/armlab/config"
	"github.com/ashreef/armlab/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Arm = newArchetype(
		tags.Arm,
		components.Arm,
		components.Gripper,
		components.State,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
	)
	Ripple = newArchetype(
		tags.Ripple,
		components.Ripple,
	)
	Spark = newArchetype(
		tags.Spark,
		components.Spark,
	)
	Space = newArchetype(
		components.Space,
	)
	HoverZone = newArchetype(
		tags.HoverZone,
		components.Object,
	)
	Pointer = newArchetype(
		tags.Pointer,
		components.Object,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Overlay = newArchetype(
		components.Overlay,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Random = newArchetype(
		components.Random,
	)
	Settings = newArchetype(
		components.Settings,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		a.with(cs)...,
	))
	return e
}

// SpawnInWorld creates the entity without a render layer. Event handlers
// only receive the world, not the ECS.
func (a *archetype) SpawnInWorld(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(a.with(cs)...))
}

func (a *archetype) with(cs []donburi.IComponentType) []donburi.IComponentType {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	return append(all, cs...)
}
