package systems

import (
	"math"

	"github.com/ashreef/armlab/components"
	cfg "github.com/ashreef/armlab/config"
	"github.com/ashreef/armlab/systems/factory"
	"github.com/ashreef/armlab/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateOverlay queues click ripples, ages them, projects the gripper to the
// screen and eases the hover glow. Must run after ProcessEvents.
func UpdateOverlay(ecs *ecs.ECS) {
	overlay := getOverlay(ecs.World)
	if overlay == nil {
		return
	}
	input := getOrCreateInput(ecs)

	rng := GetOrCreateRandom(ecs.World)
	for _, click := range input.Clicks {
		factory.SpawnRipple(ecs.World, click.X, click.Y, rng)
	}
	updateRipples(ecs)

	overlay.ScreenValid = false
	if overlay.GripperKnown && overlay.CameraKnown {
		x, y, ok := overlay.Camera.ProjectToScreen(overlay.Gripper, overlay.Width, overlay.Height)
		if ok {
			overlay.Screen = dmath.Vec2{X: x, Y: y}
			overlay.ScreenValid = true
		}
	}

	overlay.Hovering = overlay.ScreenValid && input.PointerValid &&
		pointerNearGripper(ecs, overlay.Screen, input.Pointer)

	target := 0.0
	if overlay.Hovering {
		target = 1
	}
	overlay.Glow += (target - overlay.Glow) * cfg.Overlay.GlowEase
}

func updateRipples(ecs *ecs.ECS) {
	o := cfg.Overlay
	var expired []*donburi.Entry

	components.Ripple.Each(ecs.World, func(e *donburi.Entry) {
		r := components.Ripple.Get(e)
		r.Radius += (r.MaxRadius - r.Radius) * o.RippleGrowth
		r.Life -= o.RippleDecay
		if r.Life <= 0 {
			expired = append(expired, e)
		}
	})

	for _, e := range expired {
		ecs.World.Remove(e.Entity())
	}
}

// pointerNearGripper moves the broadphase objects to the gripper and pointer,
// then confirms a shared cell with an exact distance test.
func pointerNearGripper(ecs *ecs.ECS, gripper, pointer dmath.Vec2) bool {
	zoneEntry, ok := tags.HoverZone.First(ecs.World)
	if !ok {
		return false
	}
	pointerEntry, ok := tags.Pointer.First(ecs.World)
	if !ok {
		return false
	}

	zone := components.Object.Get(zoneEntry)
	zone.CenterOn(gripper.X, gripper.Y)
	probe := components.Object.Get(pointerEntry)
	probe.CenterOn(pointer.X, pointer.Y)

	if check := probe.Check(0, 0, tags.ResolvHoverZone); check == nil {
		return false
	}
	return math.Hypot(pointer.X-gripper.X, pointer.Y-gripper.Y) < cfg.Overlay.HoverRadius
}
