package factory

import (
	"math/rand"
	"time"

	"github.com/ashreef/armlab/archetypes"
	"github.com/ashreef/armlab/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateClock spawns the scene clock at zero.
func CreateClock(ecs *ecs.ECS) *donburi.Entry {
	clock := archetypes.Clock.Spawn(ecs)
	components.Clock.SetValue(clock, components.ClockData{})
	return clock
}

// CreateRandom spawns the world's random source. A zero seed uses the clock.
func CreateRandom(ecs *ecs.ECS, seed int64) *donburi.Entry {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	random := archetypes.Random.Spawn(ecs)
	components.Random.SetValue(random, components.RandomData{
		Rand: rand.New(rand.NewSource(seed)),
	})
	return random
}

// CreateSettings spawns the preferences singleton from loaded values.
func CreateSettings(ecs *ecs.ECS, settings components.SettingsData) *donburi.Entry {
	entry := archetypes.Settings.Spawn(ecs)
	components.Settings.SetValue(entry, settings)
	return entry
}
