package gamemath

import "math"

// minSmoothTime keeps omega finite.
const minSmoothTime = 1e-4

// SmoothDamp eases current toward target like a critically damped spring.
// velocity carries the spring state between calls and is updated in place.
// smoothTime is roughly the time needed to reach the target. The exponential
// approximation keeps the result bounded for any dt, so a long stall (a
// window regaining focus) lands near the target instead of diverging.
func SmoothDamp(current, target float64, velocity *float64, smoothTime, dt float64) float64 {
	if dt <= 0 {
		return current
	}
	smoothTime = math.Max(minSmoothTime, smoothTime)

	omega := 2 / smoothTime
	x := omega * dt
	exp := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)

	change := current - target
	temp := (*velocity + omega*change) * dt
	*velocity = (*velocity - omega*temp) * exp
	result := target + (change+temp)*exp

	// Landing past the target means the spring overshot.
	if (target-current > 0) == (result > target) {
		*velocity = 0
		return target
	}
	return result
}
