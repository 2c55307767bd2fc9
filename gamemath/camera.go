package gamemath

import "math"

// Camera is a perspective camera looking from Position at Target.
type Camera struct {
	Position Vec3
	Target   Vec3
	Up       Vec3
	FovY     float64 // vertical field of view, degrees
	Aspect   float64
	Near     float64
	Far      float64
}

// Basis returns the camera's forward, right and up unit vectors.
func (c Camera) Basis() (forward, right, up Vec3) {
	forward = c.Forward()
	worldUp := c.Up
	if worldUp == (Vec3{}) {
		worldUp = Vec3{Y: 1}
	}
	right = forward.Cross(worldUp).Normalize()
	up = right.Cross(forward)
	return forward, right, up
}

// Forward is the unit view direction.
func (c Camera) Forward() Vec3 {
	return c.Target.Sub(c.Position).Normalize()
}

func (c Camera) tanHalfFov() float64 {
	return math.Tan(c.FovY * math.Pi / 360)
}

func (c Camera) aspect() float64 {
	if c.Aspect <= 0 {
		return 1
	}
	return c.Aspect
}

// RayFromNDC builds the world ray through a point in normalized device
// coordinates, x and y in [-1, 1] with +y up.
func (c Camera) RayFromNDC(x, y float64) Ray {
	forward, right, up := c.Basis()
	t := c.tanHalfFov()
	dir := forward.
		Add(right.Scale(x * t * c.aspect())).
		Add(up.Scale(y * t))
	return Ray{Origin: c.Position, Direction: dir.Normalize()}
}

// Project maps a world point to NDC. Z holds the view depth. ok is false when
// the point is at or behind the near plane.
func (c Camera) Project(p Vec3) (ndc Vec3, ok bool) {
	forward, right, up := c.Basis()
	v := p.Sub(c.Position)
	depth := v.Dot(forward)
	if depth <= c.Near {
		return Vec3{}, false
	}
	t := c.tanHalfFov()
	return Vec3{
		X: v.Dot(right) / (depth * t * c.aspect()),
		Y: v.Dot(up) / (depth * t),
		Z: depth,
	}, true
}

// ProjectToScreen maps a world point to pixel coordinates in a w×h viewport
// with the origin at the top left.
func (c Camera) ProjectToScreen(p Vec3, w, h float64) (x, y float64, ok bool) {
	ndc, ok := c.Project(p)
	if !ok {
		return 0, 0, false
	}
	x, y = NDCToScreen(ndc.X, ndc.Y, w, h)
	return x, y, true
}

// PixelsPerUnit is the on-screen size of one world unit at the depth of p.
func (c Camera) PixelsPerUnit(p Vec3, h float64) float64 {
	depth := p.Sub(c.Position).Dot(c.Forward())
	if depth <= c.Near {
		return 0
	}
	return h / (2 * depth * c.tanHalfFov())
}

// ScreenToNDC converts pixel coordinates to normalized device coordinates.
func ScreenToNDC(x, y, w, h float64) (float64, float64) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	return x/w*2 - 1, -(y/h*2 - 1)
}

// NDCToScreen is the inverse of ScreenToNDC.
func NDCToScreen(x, y, w, h float64) (float64, float64) {
	return (x + 1) / 2 * w, (1 - y) / 2 * h
}

// ClipSegment trims the segment a-b to the part in front of the near plane.
// ok is false when the whole segment is behind it.
func (c Camera) ClipSegment(a, b Vec3) (Vec3, Vec3, bool) {
	forward := c.Forward()
	da := a.Sub(c.Position).Dot(forward) - c.Near
	db := b.Sub(c.Position).Dot(forward) - c.Near

	const eps = 1e-6
	switch {
	case da <= eps && db <= eps:
		return a, b, false
	case da <= eps:
		a = a.Lerp(b, (eps-da)/(db-da))
	case db <= eps:
		b = b.Lerp(a, (eps-db)/(da-db))
	}
	return a, b, true
}
