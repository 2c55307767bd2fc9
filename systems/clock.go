package systems

import (
	"github.com/ashreef/armlab/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the scene clock by one fixed tick. Must run first.
func UpdateClock(ecs *ecs.ECS) {
	AdvanceClock(ecs, 1/float64(ebiten.TPS()))
}

// AdvanceClock moves the clock forward by dt seconds.
func AdvanceClock(ecs *ecs.ECS, dt float64) {
	clock := GetOrCreateClock(ecs)
	clock.Delta = dt
	clock.Elapsed += dt
	clock.Tick++
}

// GetOrCreateClock returns the singleton Clock component, creating if needed
func GetOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}
