package gamemath

import (
	"math"
	"testing"
)

func TestSmoothDampApproachesWithoutOvershoot(t *testing.T) {
	var vel float64
	current, target := 0.0, 1.0
	prev := current
	for i := 0; i < 120; i++ {
		current = SmoothDamp(current, target, &vel, 0.15, 1.0/60)
		if current > target {
			t.Fatalf("step %d: overshot to %v", i, current)
		}
		if current < prev-1e-12 {
			t.Fatalf("step %d: moved away from target (%v -> %v)", i, prev, current)
		}
		prev = current
	}
	if math.Abs(current-target) > 1e-3 {
		t.Errorf("after 2s current = %v, want within 1e-3 of %v", current, target)
	}
}

func TestSmoothDampFromAbove(t *testing.T) {
	var vel float64
	current := 2.0
	for i := 0; i < 120; i++ {
		current = SmoothDamp(current, -1, &vel, 0.1, 1.0/60)
		if current < -1 {
			t.Fatalf("step %d: overshot to %v", i, current)
		}
	}
	if math.Abs(current+1) > 1e-3 {
		t.Errorf("current = %v, want about -1", current)
	}
}

func TestSmoothDampLargeStep(t *testing.T) {
	for _, dt := range []float64{0.5, 2, 10, 1000} {
		var vel float64
		got := SmoothDamp(0, 1, &vel, 0.15, dt)
		if !isFinite(got) || got < 0 || got > 1 {
			t.Errorf("dt=%v: got %v, want finite value in [0, 1]", dt, got)
		}
		if !isFinite(vel) {
			t.Errorf("dt=%v: velocity %v not finite", dt, vel)
		}
	}
}

func TestSmoothDampZeroStep(t *testing.T) {
	vel := 3.0
	if got := SmoothDamp(0.4, 1, &vel, 0.15, 0); got != 0.4 {
		t.Errorf("got %v, want unchanged 0.4", got)
	}
	if vel != 3 {
		t.Errorf("velocity = %v, want unchanged", vel)
	}
}

func TestSmoothDampAtTargetIsStill(t *testing.T) {
	var vel float64
	if got := SmoothDamp(0.7, 0.7, &vel, 0.15, 1.0/60); got != 0.7 || vel != 0 {
		t.Errorf("got %v vel %v, want 0.7 and 0", got, vel)
	}
}
