package systems

import (
	"math"
	"testing"

	"github.com/ashreef/armlab/components"
	"github.com/ashreef/armlab/gamemath"
	"github.com/ashreef/armlab/tags"
	"github.com/yohamta/donburi/ecs"
)

// pinOverlay feeds the overlay a gripper at the camera's look-at point, which
// lands in the middle of the viewport.
func pinOverlay(t *testing.T, e *ecs.ECS) *components.OverlayData {
	t.Helper()
	camera := GetCamera(e)
	overlay := getOverlay(e.World)
	overlay.Gripper = camera.Target
	overlay.GripperKnown = true
	overlay.Camera = camera.Camera
	overlay.Width, overlay.Height = camera.Width, camera.Height
	overlay.CameraKnown = true
	return overlay
}

func TestEventsReachOverlay(t *testing.T) {
	e := newTestScene(t)
	step(e)

	overlay := getOverlay(e.World)
	if !overlay.GripperKnown || !overlay.CameraKnown {
		t.Fatalf("overlay missed events: gripper %v camera %v", overlay.GripperKnown, overlay.CameraKnown)
	}
	arm := components.Arm.Get(armEntry(t, e))
	if overlay.Gripper != arm.Pose.EndEffector {
		t.Errorf("overlay gripper = %v, want %v", overlay.Gripper, arm.Pose.EndEffector)
	}
	if overlay.Width != testWidth || overlay.Height != testHeight {
		t.Errorf("overlay viewport = %vx%v", overlay.Width, overlay.Height)
	}
	if !overlay.ScreenValid {
		t.Error("gripper not projected on screen")
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	e := newTestScene(t)
	UnsubscribeEvents(e.World)

	components.GripperMovedEvent.Publish(e.World, components.GripperMoved{Position: gamemath.V3(1, 2, 3)})
	components.ParticleBurstEvent.Publish(e.World, components.ParticleBurst{X: 10, Y: 10, Count: 20})
	ProcessEvents(e)

	if getOverlay(e.World).GripperKnown {
		t.Error("overlay received GripperMoved after unsubscribe")
	}
	if n := count(e.World, components.Spark); n != 0 {
		t.Errorf("sparks = %d after unsubscribe, want 0", n)
	}
}

func TestGlowEasesTowardHover(t *testing.T) {
	e := newTestScene(t)
	overlay := pinOverlay(t, e)
	input := GetInput(e)
	input.PointerValid = true
	input.Pointer.X, input.Pointer.Y = testWidth/2+30, testHeight/2+20

	UpdateOverlay(e)
	if !overlay.Hovering {
		t.Fatalf("pointer 36px from gripper at %v not hovering", overlay.Screen)
	}
	if math.Abs(overlay.Glow-0.1) > 1e-9 {
		t.Errorf("glow after one tick = %v, want 0.1", overlay.Glow)
	}

	for i := 0; i < 60; i++ {
		UpdateOverlay(e)
	}
	if overlay.Glow < 0.99 || overlay.Glow > 1 {
		t.Errorf("glow after hovering = %v, want near 1", overlay.Glow)
	}

	input.Pointer.X = testWidth/2 + 300
	prev := overlay.Glow
	UpdateOverlay(e)
	if overlay.Hovering {
		t.Error("pointer 300px away still hovering")
	}
	if overlay.Glow >= prev {
		t.Errorf("glow did not fade: %v -> %v", prev, overlay.Glow)
	}
}

func TestHoverNeedsExactDistance(t *testing.T) {
	e := newTestScene(t)
	overlay := pinOverlay(t, e)
	input := GetInput(e)
	input.PointerValid = true

	// Inside the broadphase square but outside the radius.
	input.Pointer.X, input.Pointer.Y = testWidth/2+90, testHeight/2+90
	UpdateOverlay(e)
	if overlay.Hovering {
		t.Error("corner of hover square counted as hovering")
	}
}

func TestRipplesExpire(t *testing.T) {
	e := newTestScene(t)
	click(e, 100, 100)
	UpdateOverlay(e)
	GetInput(e).Clicks = nil

	for i := 0; i < 45; i++ {
		UpdateOverlay(e)
	}
	ripple, ok := tags.Ripple.First(e.World)
	if !ok {
		t.Fatal("ripple expired early")
	}
	r := components.Ripple.Get(ripple)
	if r.Radius <= 0 || r.Radius > r.MaxRadius {
		t.Errorf("radius %v outside (0, %v]", r.Radius, r.MaxRadius)
	}

	for i := 0; i < 10; i++ {
		UpdateOverlay(e)
	}
	if n := count(e.World, components.Ripple); n != 0 {
		t.Errorf("ripples = %d, want 0", n)
	}
}

func TestResizeViewportIsIdempotent(t *testing.T) {
	e := newTestScene(t)

	ResizeViewport(e, 800, 600)
	camera := GetCamera(e)
	if camera.Width != 800 || camera.Height != 600 {
		t.Fatalf("viewport = %vx%v, want 800x600", camera.Width, camera.Height)
	}
	if math.Abs(camera.Aspect-4.0/3.0) > 1e-12 {
		t.Errorf("aspect = %v, want 4/3", camera.Aspect)
	}

	zone, _ := tags.HoverZone.First(e.World)
	space := components.Object.Get(zone).Space
	if space == nil {
		t.Fatal("hover zone lost its space")
	}

	ResizeViewport(e, 800, 600)
	if got := components.Object.Get(zone).Space; got != space {
		t.Error("repeated resize rebuilt the broadphase")
	}

	ResizeViewport(e, 0, 600)
	if camera.Width != 800 {
		t.Error("zero width resize was applied")
	}
}
