package systems

import (
	"github.com/ashreef/armlab/components"
	"github.com/ashreef/armlab/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// ProcessEvents delivers everything published so far this tick.
// Runs right after UpdateArm so the overlay sees this tick's pose.
func ProcessEvents(ecs *ecs.ECS) {
	events.ProcessAllEvents(ecs.World)
}

// SubscribeEvents wires the overlay and spark burst to the arm's events.
func SubscribeEvents(w donburi.World) {
	components.GripperMovedEvent.Subscribe(w, OnGripperMoved)
	components.CameraUpdatedEvent.Subscribe(w, OnCameraUpdated)
	components.ParticleBurstEvent.Subscribe(w, OnParticleBurst)
}

// UnsubscribeEvents undoes SubscribeEvents.
func UnsubscribeEvents(w donburi.World) {
	components.GripperMovedEvent.Unsubscribe(w, OnGripperMoved)
	components.CameraUpdatedEvent.Unsubscribe(w, OnCameraUpdated)
	components.ParticleBurstEvent.Unsubscribe(w, OnParticleBurst)
}

func OnGripperMoved(w donburi.World, ev components.GripperMoved) {
	overlay := getOverlay(w)
	if overlay == nil {
		return
	}
	overlay.Gripper = ev.Position
	overlay.GripperKnown = true
}

func OnCameraUpdated(w donburi.World, ev components.CameraUpdated) {
	overlay := getOverlay(w)
	if overlay == nil {
		return
	}
	overlay.Camera = ev.Camera
	overlay.Width = ev.Width
	overlay.Height = ev.Height
	overlay.CameraKnown = true
}

func OnParticleBurst(w donburi.World, ev components.ParticleBurst) {
	factory.SpawnSparkBurst(w, ev.X, ev.Y, GetOrCreateRandom(w))
}

func getOverlay(w donburi.World) *components.OverlayData {
	entry, ok := components.Overlay.First(w)
	if !ok {
		return nil
	}
	return components.Overlay.Get(entry)
}
