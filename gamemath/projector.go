package gamemath

import "math"

// ProjectorLimits bounds where a projected pointer target may land.
type ProjectorLimits struct {
	ReachMargin float64
	MinY        float64
	MaxY        float64
}

// DefaultProjectorLimits keeps targets inside the arm's comfortable envelope.
func DefaultProjectorLimits() ProjectorLimits {
	return ProjectorLimits{
		ReachMargin: 0.5,
		MinY:        0.5,
		MaxY:        4.0,
	}
}

// ProjectPointer turns a pointer position in NDC into a world target for the
// arm. The pointer ray is cast against a plane facing the camera through
// anchor. When the ray misses, previous is returned unchanged. Hits are pulled
// inside reach-ReachMargin horizontally and clamped to [MinY, MaxY].
func ProjectPointer(cam Camera, ndcX, ndcY float64, anchor, previous Vec3, reach float64, limits ProjectorLimits) Vec3 {
	plane := Plane{Normal: cam.Forward(), Point: anchor}
	hit, ok := cam.RayFromNDC(ndcX, ndcY).IntersectPlane(plane)
	if !ok {
		return previous
	}
	return ClampTarget(hit, reach, limits)
}

// ClampTarget applies the projector's reach and height limits to p.
func ClampTarget(p Vec3, reach float64, limits ProjectorLimits) Vec3 {
	maxRadius := math.Max(0, reach-limits.ReachMargin)
	if r := p.LenXZ(); r > maxRadius && r > 0 {
		s := maxRadius / r
		p.X *= s
		p.Z *= s
	}
	p.Y = Clamp(p.Y, limits.MinY, limits.MaxY)
	return p
}
