package systems

import (
	"math"

	"github.com/ashreef/armlab/components"
	cfg "github.com/ashreef/armlab/config"
	"github.com/ashreef/armlab/gamemath"
	"github.com/ashreef/armlab/systems/factory"
	"github.com/ashreef/armlab/tags"
	"github.com/charmbracelet/harmonica"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateArm runs one tick of the arm: grabs, target tracking, inverse
// kinematics, smoothing, the gripper, and finally the pose and its events.
// Must run after UpdateInput and UpdateClock.
func UpdateArm(e *ecs.ECS) {
	armEntry, ok := tags.Arm.First(e.World)
	if !ok {
		return
	}
	camera := GetCamera(e)
	if camera == nil {
		return
	}

	arm := components.Arm.Get(armEntry)
	gripper := components.Gripper.Get(armEntry)
	state := components.State.Get(armEntry)
	input := getOrCreateInput(e)
	clock := GetOrCreateClock(e)
	dt := clock.Delta

	if !input.Captured {
		for _, click := range input.Clicks {
			grab(e.World, arm, gripper, state, click.X, click.Y)
		}
		if GetAction(input, cfg.ActionGrab).JustPressed {
			x, y := grabOrigin(arm, camera, input)
			grab(e.World, arm, gripper, state, x, y)
		}
	}

	trackPointer(arm, camera, input)

	arm.Raw = gamemath.Solve(arm.Target, arm.Geometry, arm.Limits, arm.Raw)
	smoothJoints(arm, dt)

	arm.Angles.WristRoll = arm.Limits.WristRoll.Clamp(
		math.Sin(clock.Elapsed*cfg.Arm.WristRollFrequency) * cfg.Arm.WristRollAmplitude)

	updateGripper(gripper, state, dt)

	arm.Pose = gamemath.ForwardKinematics(arm.Geometry, arm.Angles, gripper.Current)
	arm.ShoulderTrail.Push(arm.Pose.Shoulder.Lerp(arm.Pose.Elbow, 0.5))
	arm.ElbowTrail.Push(arm.Pose.Elbow.Lerp(arm.Pose.Wrist, 0.5))
	components.GripperMovedEvent.Publish(e.World, components.GripperMoved{
		Position: arm.Pose.EndEffector,
	})
	components.CameraUpdatedEvent.Publish(e.World, components.CameraUpdated{
		Camera: camera.Camera,
		Width:  camera.Width,
		Height: camera.Height,
	})

	state.StateTimer++
}

// trackPointer eases the target toward the pointer's projection and the
// projection plane toward the target.
func trackPointer(arm *components.ArmData, camera *components.CameraData, input *components.InputData) {
	if input.PointerValid && camera.Width > 0 && camera.Height > 0 {
		ndcX, ndcY := gamemath.ScreenToNDC(input.Pointer.X, input.Pointer.Y, camera.Width, camera.Height)
		projected := gamemath.ProjectPointer(
			camera.Camera, ndcX, ndcY,
			arm.Anchor, arm.Target,
			arm.Geometry.Reach(), cfg.Projector,
		)
		arm.Target = arm.Target.Lerp(projected, cfg.Arm.TargetFollow)
	}
	arm.Anchor = arm.Anchor.Lerp(arm.Target, cfg.Arm.AnchorFollow)
}

func smoothJoints(arm *components.ArmData, dt float64) {
	s := cfg.Smoothing
	a, raw, v := &arm.Angles, arm.Raw, &arm.Velocity

	// Base yaw wraps at ±π; chase the equivalent angle closest to where we are,
	// unwinding by a full turn when that would leave the joint's range.
	base := unwindInto(nearestAngle(a.Base, raw.Base), arm.Limits.Base)

	a.Base = gamemath.SmoothDamp(a.Base, base, &v.Base, s.Base, dt)
	a.Shoulder = gamemath.SmoothDamp(a.Shoulder, raw.Shoulder, &v.Shoulder, s.Shoulder, dt)
	a.Elbow = gamemath.SmoothDamp(a.Elbow, raw.Elbow, &v.Elbow, s.Elbow, dt)
	a.WristPitch = gamemath.SmoothDamp(a.WristPitch, raw.WristPitch, &v.WristPitch, s.WristPitch, dt)
}

// unwindInto shifts angle by whole turns until it lies within limit. A range
// narrower than a full turn falls back to clamping.
func unwindInto(angle float64, limit gamemath.JointLimit) float64 {
	const turn = 2 * math.Pi
	if limit.Max-limit.Min < turn {
		return limit.Clamp(angle)
	}
	for angle > limit.Max {
		angle -= turn
	}
	for angle < limit.Min {
		angle += turn
	}
	return angle
}

// nearestAngle returns target shifted by whole turns to lie within π of current.
func nearestAngle(current, target float64) float64 {
	return target + 2*math.Pi*math.Round((current-target)/(2*math.Pi))
}

// grab closes the gripper, restarts the hold timer and bursts particles. x, y
// is the screen position that triggered it.
func grab(w donburi.World, arm *components.ArmData, gripper *components.GripperData, state *components.StateData, x, y float64) {
	state.Set(cfg.Grabbing)
	gripper.Target = cfg.Gripper.ClosedTarget
	gripper.Hold = gween.New(0, 1, cfg.Gripper.HoldDuration, ease.Linear)

	count := factory.SpawnParticleBurst(w, arm.Pose.EndEffector, GetOrCreateRandom(w))
	components.ParticleBurstEvent.Publish(w, components.ParticleBurst{
		X:     x,
		Y:     y,
		Count: count,
	})
}

// grabOrigin picks the screen point a keyboard grab bursts from.
func grabOrigin(arm *components.ArmData, camera *components.CameraData, input *components.InputData) (float64, float64) {
	if x, y, ok := camera.ProjectToScreen(arm.Pose.EndEffector, camera.Width, camera.Height); ok {
		return x, y
	}
	return input.Pointer.X, input.Pointer.Y
}

func release(gripper *components.GripperData, state *components.StateData) {
	state.Set(cfg.Tracking)
	gripper.Target = cfg.Gripper.OpenTarget
	gripper.Hold = nil
}

// updateGripper runs the hold timer and springs the jaws toward their target.
func updateGripper(gripper *components.GripperData, state *components.StateData, dt float64) {
	if dt <= 0 {
		return
	}
	if gripper.Hold != nil {
		if _, done := gripper.Hold.Update(float32(dt)); done {
			release(gripper, state)
		}
	}

	if gripper.SpringDelta != dt {
		gripper.Spring = harmonica.NewSpring(dt, cfg.Gripper.SpringFrequency, cfg.Gripper.SpringDamping)
		gripper.SpringDelta = dt
	}
	gripper.Current, gripper.Velocity = gripper.Spring.Update(gripper.Current, gripper.Velocity, gripper.Target)
}

// IsGrabbing reports whether the arm is holding a grab.
func IsGrabbing(e *ecs.ECS) bool {
	armEntry, ok := tags.Arm.First(e.World)
	if !ok {
		return false
	}
	return components.State.Get(armEntry).CurrentState == cfg.Grabbing
}
