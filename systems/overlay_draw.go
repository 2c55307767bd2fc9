package systems

import (
	"image/color"
	"math"

	"github.com/ashreef/armlab/components"
	cfg "github.com/ashreef/armlab/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

var (
	whitePixel *ebiten.Image
	fadeOp     = &ebiten.DrawImageOptions{}
	canvasOp   = &ebiten.DrawImageOptions{}
)

// ensureCanvas returns img if it already matches the screen, otherwise a new
// transparent image of the screen's size.
func ensureCanvas(img *ebiten.Image, screen *ebiten.Image) *ebiten.Image {
	b := screen.Bounds()
	if img != nil && img.Bounds().Dx() == b.Dx() && img.Bounds().Dy() == b.Dy() {
		return img
	}
	if img != nil {
		img.Deallocate()
	}
	return ebiten.NewImage(b.Dx(), b.Dy())
}

// fadeCanvas removes alpha from every pixel of img so earlier frames linger
// as a trail without ever painting over what is underneath.
func fadeCanvas(img *ebiten.Image, alpha float64) {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	b := img.Bounds()
	fadeOp.GeoM.Reset()
	fadeOp.GeoM.Scale(float64(b.Dx()), float64(b.Dy()))
	fadeOp.ColorScale.Reset()
	fadeOp.ColorScale.ScaleAlpha(float32(alpha))
	fadeOp.Blend = ebiten.BlendDestinationOut
	img.DrawImage(whitePixel, fadeOp)
}

// DrawOverlay renders the energy beam, gripper glow and click ripples onto the
// trail canvas, then composites it over the scene.
func DrawOverlay(ecs *ecs.ECS, screen *ebiten.Image) {
	overlayEntry, ok := components.Overlay.First(ecs.World)
	if !ok {
		return
	}
	overlay := components.Overlay.Get(overlayEntry)
	input := getOrCreateInput(ecs)
	now := GetOrCreateClock(ecs).Millis()

	overlay.Canvas = ensureCanvas(overlay.Canvas, screen)
	canvas := overlay.Canvas
	fadeCanvas(canvas, cfg.Overlay.TrailFade)

	if overlay.ScreenValid && overlay.Glow > 0.01 {
		if input.PointerValid {
			drawBeam(canvas, overlay.Screen, input.Pointer, overlay.Glow, now)
		}
		drawGripperGlow(canvas, overlay.Screen, overlay.Glow, now)
	}

	components.Ripple.Each(ecs.World, func(e *donburi.Entry) {
		drawRipple(canvas, components.Ripple.Get(e))
	})

	canvasOp.GeoM.Reset()
	screen.DrawImage(canvas, canvasOp)
}

// drawBeam draws a wavy beam from the gripper to the pointer that thins out
// with distance.
func drawBeam(dst *ebiten.Image, from, to dmath.Vec2, intensity, now float64) {
	o := cfg.Overlay
	dx, dy := to.X-from.X, to.Y-from.Y
	dist := math.Hypot(dx, dy)
	if dist > o.BeamMaxDistance || dist == 0 {
		return
	}
	alpha := intensity * (1 - dist/o.BeamMaxDistance)
	if alpha <= 0 {
		return
	}

	// Unit normal for the wave offset
	nx, ny := -dy/dist, dx/dist

	points := make([]dmath.Vec2, 0, o.BeamSteps+1)
	for i := 0; i <= o.BeamSteps; i++ {
		t := float64(i) / float64(o.BeamSteps)
		wave := math.Sin(t*math.Pi*4+now*0.01) * o.BeamWaveAmp * intensity
		points = append(points, dmath.Vec2{
			X: from.X + dx*t + nx*wave,
			Y: from.Y + dy*t + ny*wave,
		})
	}

	strokePolyline(dst, points, o.BeamGlowWidth, fade(o.BeamGlowColor, alpha*0.3))
	strokePolyline(dst, points, o.BeamWidth, fade(o.BeamColor, alpha))

	for i := 0; i < o.BeamMotes; i++ {
		t := math.Mod(now*o.BeamMoteSpeed+float64(i)/float64(o.BeamMotes), 1)
		vector.DrawFilledCircle(dst,
			float32(from.X+dx*t), float32(from.Y+dy*t),
			o.BeamMoteRadius, fade(cfg.OffWhite, alpha*0.8), true)
	}
}

func strokePolyline(dst *ebiten.Image, points []dmath.Vec2, width float32, clr color.RGBA) {
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, clr, true)
	}
}

// drawGripperGlow draws a pulsing halo around the gripper with orbiting motes.
func drawGripperGlow(dst *ebiten.Image, c dmath.Vec2, intensity, now float64) {
	o := cfg.Overlay
	pulse := 0.8 + math.Sin(now*o.GlowPulseSpeed)*0.2
	radius := o.GlowRadius * pulse * intensity
	x, y := float32(c.X), float32(c.Y)

	// Stacked discs stand in for a radial gradient
	for _, ring := range []struct{ scale, alpha float64 }{
		{1.0, 0.1},
		{0.7, 0.15},
		{0.45, 0.2},
	} {
		vector.DrawFilledCircle(dst, x, y, float32(radius*ring.scale), fade(o.GlowColor, ring.alpha*intensity), true)
	}
	vector.DrawFilledCircle(dst, x, y, float32(radius*0.25), fade(o.GlowInnerColor, 0.6*intensity), true)

	for i := 0; i < o.GlowMotes; i++ {
		angle := now*o.GlowMoteSpeed + float64(i)*2*math.Pi/float64(o.GlowMotes)
		mx := c.X + math.Cos(angle)*radius*1.5
		my := c.Y + math.Sin(angle)*radius*1.5
		vector.DrawFilledCircle(dst, float32(mx), float32(my), 3, fade(o.GlowMoteColor, 0.8*intensity), true)
	}
}

func drawRipple(dst *ebiten.Image, r *components.RippleData) {
	o := cfg.Overlay
	for i := 0; i < o.RippleRings; i++ {
		alpha := r.Life * (1 - 0.3*float64(i))
		if alpha <= 0 {
			continue
		}
		radius := float32(r.Radius + float64(i)*o.RippleRingGap)
		vector.StrokeCircle(dst, float32(r.X), float32(r.Y), radius, 6, fade(r.Color, alpha*0.3), true)
		vector.StrokeCircle(dst, float32(r.X), float32(r.Y), radius, 2, fade(r.Color, alpha), true)
	}
}

// DrawSparks renders the click spark burst on its own slower-fading canvas.
func DrawSparks(ecs *ecs.ECS, screen *ebiten.Image) {
	overlayEntry, ok := components.Overlay.First(ecs.World)
	if !ok {
		return
	}
	overlay := components.Overlay.Get(overlayEntry)
	overlay.SparkCanvas = ensureCanvas(overlay.SparkCanvas, screen)
	canvas := overlay.SparkCanvas
	fadeCanvas(canvas, cfg.Sparks.TrailFade)

	components.Spark.Each(ecs.World, func(e *donburi.Entry) {
		drawSpark(canvas, components.Spark.Get(e))
	})

	canvasOp.GeoM.Reset()
	screen.DrawImage(canvas, canvasOp)
}

func drawSpark(dst *ebiten.Image, s *components.SparkData) {
	x, y := float32(s.Position.X), float32(s.Position.Y)
	clr := fade(s.Color, s.Life)

	switch s.Kind {
	case components.SparkLine:
		dx := float32(math.Cos(s.Rotation) * s.Size * 2)
		dy := float32(math.Sin(s.Rotation) * s.Size * 2)
		vector.StrokeLine(dst, x-dx, y-dy, x+dx, y+dy, 4, fade(s.Color, s.Life*0.3), true)
		vector.StrokeLine(dst, x-dx, y-dy, x+dx, y+dy, 1.5, clr, true)
	case components.SparkDot:
		vector.DrawFilledCircle(dst, x, y, float32(s.Size*1.5), fade(s.Color, s.Life*0.5), true)
		vector.DrawFilledCircle(dst, x, y, float32(s.Size*0.6), clr, true)
	case components.SparkTrail:
		tx := x - float32(s.Velocity.X*3)
		ty := y - float32(s.Velocity.Y*3)
		vector.StrokeLine(dst, tx, ty, x, y, float32(s.Size/2), clr, true)
	}
}
