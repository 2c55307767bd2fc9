package systems

import (
	"testing"

	"github.com/ashreef/armlab/components"
	"github.com/ashreef/armlab/systems/factory"
	"github.com/ashreef/armlab/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	testWidth  = 1280
	testHeight = 720
	testDT     = 1.0 / 60
)

// newTestScene builds the arm scene without ebiten: no input polling and no
// drawing. Tests drive InputData by hand.
func newTestScene(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())

	factory.CreateClock(e)
	factory.CreateRandom(e, 42)
	factory.CreateSettings(e, components.SettingsData{})
	factory.CreateCamera(e, testWidth, testHeight)
	spaceEntry := factory.CreateSpace(e, testWidth, testHeight, SpaceCellSize, SpaceCellSize)
	factory.CreateOverlay(e, components.Space.Get(spaceEntry))
	factory.CreateArm(e)

	SubscribeEvents(e.World)
	return e
}

// step runs one tick in scene order, then retires this tick's input the way
// UpdateInput would on the next poll.
func step(e *ecs.ECS) {
	AdvanceClock(e, testDT)
	UpdateArm(e)
	ProcessEvents(e)
	UpdateParticles(e)
	UpdateSparks(e)
	UpdateOverlay(e)

	input := GetInput(e)
	input.Previous = input.Current
	input.Clicks = input.Clicks[:0]
}

// run steps until the clock has advanced by at least seconds.
func run(e *ecs.ECS, seconds float64) {
	for n := int(seconds/testDT + 0.5); n > 0; n-- {
		step(e)
	}
}

func click(e *ecs.ECS, x, y float64) {
	input := GetInput(e)
	input.Clicks = append(input.Clicks, components.Click{X: x, Y: y})
}

func armEntry(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	entry, ok := tags.Arm.First(e.World)
	if !ok {
		t.Fatal("no arm in scene")
	}
	return entry
}

func count(w donburi.World, c eachable) int {
	return countEntries(w, c)
}
