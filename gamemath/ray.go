package gamemath

import "math"

const parallelEpsilon = 1e-6

type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Plane is the set of points p with Normal·(p - Point) = 0.
type Plane struct {
	Normal Vec3
	Point  Vec3
}

// IntersectPlane returns where the ray crosses the plane. It reports false
// when the ray runs parallel to the plane or the crossing lies behind the
// ray origin.
func (r Ray) IntersectPlane(pl Plane) (Vec3, bool) {
	denom := pl.Normal.Dot(r.Direction)
	if math.Abs(denom) < parallelEpsilon {
		return Vec3{}, false
	}
	t := pl.Normal.Dot(pl.Point.Sub(r.Origin)) / denom
	if t < 0 {
		return Vec3{}, false
	}
	return r.At(t), true
}
