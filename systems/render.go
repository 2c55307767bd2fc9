package systems

import (
	"image/color"
	"math"

	"github.com/ashreef/armlab/components"
	cfg "github.com/ashreef/armlab/config"
	"github.com/ashreef/armlab/gamemath"
	"github.com/ashreef/armlab/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// projector draws world-space primitives through the scene camera.
type projector struct {
	cam  gamemath.Camera
	w, h float64
}

func newProjector(camera *components.CameraData, screen *ebiten.Image) projector {
	b := screen.Bounds()
	return projector{cam: camera.Camera, w: float64(b.Dx()), h: float64(b.Dy())}
}

func (p projector) point(v gamemath.Vec3) (float32, float32, bool) {
	x, y, ok := p.cam.ProjectToScreen(v, p.w, p.h)
	return float32(x), float32(y), ok
}

func (p projector) line(dst *ebiten.Image, a, b gamemath.Vec3, width float32, clr color.Color) {
	a, b, ok := p.cam.ClipSegment(a, b)
	if !ok {
		return
	}
	x0, y0, ok0 := p.point(a)
	x1, y1, ok1 := p.point(b)
	if !ok0 || !ok1 {
		return
	}
	vector.StrokeLine(dst, x0, y0, x1, y1, width, clr, true)
}

// worldLine draws a line whose thickness is given in world units.
func (p projector) worldLine(dst *ebiten.Image, a, b gamemath.Vec3, thickness float64, clr color.Color) {
	ppu := p.cam.PixelsPerUnit(a.Lerp(b, 0.5), p.h)
	p.line(dst, a, b, float32(math.Max(1, thickness*ppu)), clr)
}

func (p projector) sphere(dst *ebiten.Image, c gamemath.Vec3, radius, minPixels float64, clr color.Color) {
	x, y, ok := p.point(c)
	if !ok {
		return
	}
	r := math.Max(minPixels, radius*p.cam.PixelsPerUnit(c, p.h))
	vector.DrawFilledCircle(dst, x, y, float32(r), clr, true)
}

// fade scales a premultiplied color by alpha a in [0, 1].
func fade(c color.RGBA, a float64) color.RGBA {
	a = gamemath.Clamp(a, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// DrawScene renders the floor grid, the arm, its target and grab particles.
func DrawScene(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Scene.BackgroundColor)

	camera := GetCamera(ecs)
	if camera == nil {
		return
	}
	p := newProjector(camera, screen)

	drawGrid(screen, p)

	armEntry, ok := tags.Arm.First(ecs.World)
	if ok {
		drawArm(screen, p, armEntry)
	}

	components.Particle.Each(ecs.World, func(e *donburi.Entry) {
		part := components.Particle.Get(e)
		p.sphere(screen, part.Position, part.Size, cfg.Particles.MinPixelSize,
			fade(cfg.Cyan, part.Life/part.MaxLife))
	})
}

func drawGrid(screen *ebiten.Image, p projector) {
	s := cfg.Scene
	half := s.GridSize / 2
	step := s.GridSize / float64(s.GridDivisions)

	for i := 0; i <= s.GridDivisions; i++ {
		k := -half + float64(i)*step
		clr := s.GridColor
		if i == s.GridDivisions/2 {
			clr = s.GridCenterColor
		}
		p.line(screen, gamemath.V3(k, 0, -half), gamemath.V3(k, 0, half), 1, clr)
		p.line(screen, gamemath.V3(-half, 0, k), gamemath.V3(half, 0, k), 1, clr)
	}
}

func drawArm(screen *ebiten.Image, p projector, armEntry *donburi.Entry) {
	s := cfg.Scene
	arm := components.Arm.Get(armEntry)
	grabbing := components.State.Get(armEntry).CurrentState == cfg.Grabbing
	pose := arm.Pose

	// Laser from the gripper to where the arm is heading
	laser := s.LaserColor
	if grabbing {
		laser = s.LaserGrabColor
	}
	p.line(screen, pose.EndEffector, arm.Target, 1, laser)

	drawTargetMarker(screen, p, arm.Target)

	drawTrail(screen, p, &arm.ShoulderTrail, s.ShoulderTrailWidth)
	drawTrail(screen, p, &arm.ElbowTrail, s.ElbowTrailWidth)

	chain := pose.Chain()
	for i := 0; i < len(chain)-2; i++ {
		p.worldLine(screen, chain[i], chain[i+1], s.LinkWidth, s.LinkColor)
	}
	for _, joint := range chain[1 : len(chain)-1] {
		p.sphere(screen, joint, s.JointRadius, 2, s.JointColor)
	}

	jaw := s.JawColor
	if grabbing {
		jaw = s.JawActiveColor
	}
	g := pose.Gripper
	reach := g.Z.Scale(arm.Geometry.GripperLength / 4)
	p.worldLine(screen, pose.JawLeft, pose.JawRight, s.LinkWidth/2, jaw)
	p.worldLine(screen, pose.WristRoll, pose.JawLeft.Lerp(pose.JawRight, 0.5), s.LinkWidth/2, jaw)
	for _, tip := range []gamemath.Vec3{pose.JawLeft, pose.JawRight} {
		p.worldLine(screen, tip.Sub(reach), tip.Add(reach), s.LinkWidth/2, jaw)
	}
}

// drawTargetMarker draws a wireframe octahedron around the target.
func drawTargetMarker(screen *ebiten.Image, p projector, c gamemath.Vec3) {
	r := cfg.Scene.TargetSize
	top, bottom := c.Add(gamemath.V3(0, r, 0)), c.Add(gamemath.V3(0, -r, 0))
	ring := []gamemath.Vec3{
		c.Add(gamemath.V3(r, 0, 0)),
		c.Add(gamemath.V3(0, 0, r)),
		c.Add(gamemath.V3(-r, 0, 0)),
		c.Add(gamemath.V3(0, 0, -r)),
	}
	for i, v := range ring {
		p.line(screen, v, ring[(i+1)%len(ring)], 1, cfg.Scene.TargetColor)
		p.line(screen, v, top, 1, cfg.Scene.TargetColor)
		p.line(screen, v, bottom, 1, cfg.Scene.TargetColor)
	}
}

// drawTrail draws a link's recent path, thinning and fading with age.
func drawTrail(screen *ebiten.Image, p projector, trail *components.TrailData, width float64) {
	n := trail.Len()
	for i := 1; i < n; i++ {
		att := 1 - float64(i)/float64(n)
		att *= att
		p.line(screen, trail.At(i-1), trail.At(i), float32(math.Max(1, width*att)),
			fade(cfg.Scene.TrailColor, att))
	}
}
