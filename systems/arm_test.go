package systems

import (
	"math"
	"testing"

	"github.com/ashreef/armlab/components"
	cfg "github.com/ashreef/armlab/config"
	"github.com/ashreef/armlab/gamemath"
)

func TestClickGrabsAndBursts(t *testing.T) {
	e := newTestScene(t)
	click(e, 640, 360)
	step(e)

	arm := armEntry(t, e)
	if got := components.State.Get(arm).CurrentState; got != cfg.Grabbing {
		t.Fatalf("state = %s, want grabbing", cfg.StateToName[got])
	}
	if got := components.Gripper.Get(arm).Target; got != cfg.Gripper.ClosedTarget {
		t.Errorf("gripper target = %v, want %v", got, cfg.Gripper.ClosedTarget)
	}
	if n := count(e.World, components.Particle); n < 15 || n > 25 {
		t.Errorf("particles = %d, want 15..25", n)
	}
	if n := count(e.World, components.Spark); n < 30 || n >= 50 {
		t.Errorf("sparks = %d, want 30..49", n)
	}
	if n := count(e.World, components.Ripple); n != 1 {
		t.Errorf("ripples = %d, want 1", n)
	}
}

func TestGrabReleasesAfterHold(t *testing.T) {
	e := newTestScene(t)
	click(e, 640, 360)
	step(e)

	run(e, 0.4)
	arm := armEntry(t, e)
	if got := components.State.Get(arm).CurrentState; got != cfg.Grabbing {
		t.Fatalf("released early: state = %s", cfg.StateToName[got])
	}

	run(e, 0.2)
	if got := components.State.Get(arm).CurrentState; got != cfg.Tracking {
		t.Fatalf("state = %s, want tracking", cfg.StateToName[got])
	}
	gripper := components.Gripper.Get(arm)
	if gripper.Target != cfg.Gripper.OpenTarget {
		t.Errorf("gripper target = %v, want open", gripper.Target)
	}
	if gripper.Hold != nil {
		t.Error("hold timer still set after release")
	}

	run(e, 2)
	if math.Abs(gripper.Current-cfg.Gripper.OpenTarget) > 0.01 {
		t.Errorf("gripper = %v after release, want open", gripper.Current)
	}
}

func TestRepeatClickRestartsHold(t *testing.T) {
	e := newTestScene(t)
	click(e, 640, 360)
	step(e)
	run(e, 0.4)

	click(e, 600, 300)
	step(e)
	run(e, 0.35)

	arm := armEntry(t, e)
	if got := components.State.Get(arm).CurrentState; got != cfg.Grabbing {
		t.Fatalf("second grab released early: state = %s", cfg.StateToName[got])
	}

	run(e, 0.25)
	if got := components.State.Get(arm).CurrentState; got != cfg.Tracking {
		t.Fatalf("state = %s, want tracking", cfg.StateToName[got])
	}
}

func TestGripperClosesWhileHeld(t *testing.T) {
	e := newTestScene(t)
	click(e, 640, 360)
	step(e)
	run(e, 0.4)

	gripper := components.Gripper.Get(armEntry(t, e))
	if math.Abs(gripper.Current-cfg.Gripper.ClosedTarget) > 0.01 {
		t.Errorf("gripper = %v, want near %v", gripper.Current, cfg.Gripper.ClosedTarget)
	}
	if gripper.Current > cfg.Gripper.ClosedTarget+1e-6 {
		t.Errorf("gripper overshot to %v", gripper.Current)
	}
}

func TestKeyboardGrab(t *testing.T) {
	e := newTestScene(t)
	GetInput(e).Current[cfg.ActionGrab] = true
	step(e)

	if got := components.State.Get(armEntry(t, e)).CurrentState; got != cfg.Grabbing {
		t.Fatalf("state = %s, want grabbing", cfg.StateToName[got])
	}

	// Holding the key does not grab again.
	before := count(e.World, components.Spark)
	step(e)
	if after := count(e.World, components.Spark); after > before {
		t.Errorf("held key spawned %d more sparks", after-before)
	}
}

func TestCapturedClicksDoNotGrab(t *testing.T) {
	e := newTestScene(t)
	GetInput(e).Captured = true
	click(e, 640, 360)
	GetInput(e).Current[cfg.ActionGrab] = true
	step(e)

	if got := components.State.Get(armEntry(t, e)).CurrentState; got != cfg.Tracking {
		t.Fatalf("state = %s, want tracking", cfg.StateToName[got])
	}
	if n := count(e.World, components.Particle); n != 0 {
		t.Errorf("particles = %d, want 0", n)
	}
	if n := count(e.World, components.Ripple); n != 1 {
		t.Errorf("ripples = %d, want 1", n)
	}
}

func TestTargetStaysInEnvelope(t *testing.T) {
	e := newTestScene(t)
	input := GetInput(e)
	input.PointerValid = true

	arm := components.Arm.Get(armEntry(t, e))
	reach := arm.Geometry.Reach()
	limits := cfg.Projector

	corners := [][2]float64{{0, 0}, {testWidth, 0}, {0, testHeight}, {testWidth, testHeight}, {640, 360}}
	for _, c := range corners {
		input.Pointer.X, input.Pointer.Y = c[0], c[1]
		for i := 0; i < 60; i++ {
			step(e)
			if r := arm.Target.LenXZ(); r > reach-limits.ReachMargin+1e-9 {
				t.Fatalf("pointer %v: target radius %v beyond envelope", c, r)
			}
			if arm.Target.Y < limits.MinY-1e-9 || arm.Target.Y > limits.MaxY+1e-9 {
				t.Fatalf("pointer %v: target height %v outside envelope", c, arm.Target.Y)
			}
		}
	}
}

func TestSolverOutputStaysWithinLimits(t *testing.T) {
	e := newTestScene(t)
	input := GetInput(e)
	input.PointerValid = true

	arm := components.Arm.Get(armEntry(t, e))
	l := arm.Limits
	for i := 0; i < 240; i++ {
		input.Pointer.X = 640 + 600*math.Sin(float64(i)*0.1)
		input.Pointer.Y = 360 + 340*math.Cos(float64(i)*0.07)
		step(e)

		a := arm.Raw
		if !l.Base.Contains(a.Base) || !l.Shoulder.Contains(a.Shoulder) ||
			!l.Elbow.Contains(a.Elbow) || !l.WristPitch.Contains(a.WristPitch) {
			t.Fatalf("tick %d: solved angles %+v outside limits", i, a)
		}
		if !l.WristRoll.Contains(arm.Angles.WristRoll) {
			t.Fatalf("tick %d: wrist roll %v outside limits", i, arm.Angles.WristRoll)
		}
	}
}

func TestNearestAngle(t *testing.T) {
	tests := []struct {
		name            string
		current, target float64
		want            float64
	}{
		{"same turn", 0.5, 1.0, 1.0},
		{"wrap up", 3.0, -3.0, -3.0 + 2*math.Pi},
		{"wrap down", -3.0, 3.0, 3.0 - 2*math.Pi},
		{"two turns", 4 * math.Pi, 0.1, 4*math.Pi + 0.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nearestAngle(tt.current, tt.target); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("nearestAngle(%v, %v) = %v, want %v", tt.current, tt.target, got, tt.want)
			}
		})
	}
}

func TestSmoothJointsTakesShortWayRound(t *testing.T) {
	arm := &components.ArmData{
		Limits: gamemath.DefaultJointLimits(),
		Angles: gamemath.JointAngles{Base: 3.0},
		Raw:    gamemath.JointAngles{Base: -3.0},
	}
	smoothJoints(arm, testDT)
	if arm.Angles.Base <= 3.0 {
		t.Errorf("base moved the long way: %v", arm.Angles.Base)
	}
}

func TestSmoothJointsUnwindsPastFullTurn(t *testing.T) {
	arm := &components.ArmData{
		Limits: gamemath.DefaultJointLimits(),
		Angles: gamemath.JointAngles{Base: 6.0},
		Raw:    gamemath.JointAngles{Base: 0.5},
	}
	for i := 0; i < 600; i++ {
		smoothJoints(arm, testDT)
		if !arm.Limits.Base.Contains(arm.Angles.Base) {
			t.Fatalf("step %d: base %v outside limits", i, arm.Angles.Base)
		}
	}
	heading := math.Remainder(arm.Angles.Base-arm.Raw.Base, 2*math.Pi)
	if math.Abs(heading) > 1e-3 {
		t.Errorf("heading error = %v rad after unwinding (base %v)", heading, arm.Angles.Base)
	}
}

func TestUnwindInto(t *testing.T) {
	full := gamemath.JointLimit{Min: -2 * math.Pi, Max: 2 * math.Pi}
	tests := []struct {
		name  string
		angle float64
		limit gamemath.JointLimit
		want  float64
	}{
		{"inside", 1, full, 1},
		{"above", 0.5 + 2*math.Pi + 0.1, full, 0.6},
		{"below", -2*math.Pi - 0.3, full, -0.3},
		{"narrow range clamps", 2, gamemath.JointLimit{Min: -1, Max: 1}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := unwindInto(tt.angle, tt.limit); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("unwindInto(%v) = %v, want %v", tt.angle, got, tt.want)
			}
		})
	}
}

func TestLinkTrailsFollowPose(t *testing.T) {
	e := newTestScene(t)
	run(e, 0.5)

	arm := components.Arm.Get(armEntry(t, e))
	if n := arm.ShoulderTrail.Len(); n != components.TrailSamples {
		t.Fatalf("shoulder trail has %d samples, want %d", n, components.TrailSamples)
	}
	want := arm.Pose.Elbow.Lerp(arm.Pose.Wrist, 0.5)
	if got := arm.ElbowTrail.At(0); got != want {
		t.Errorf("newest forearm sample = %v, want %v", got, want)
	}
}
