package factory

import (
	"math"
	"math/rand"

	"github.com/ashreef/armlab/archetypes"
	"github.com/ashreef/armlab/components"
	cfg "github.com/ashreef/armlab/config"
	"github.com/ashreef/armlab/gamemath"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// SpawnParticleBurst throws an evenly spaced ring of particles out of origin
// and returns how many were spawned.
func SpawnParticleBurst(w donburi.World, origin gamemath.Vec3, rng *rand.Rand) int {
	p := cfg.Particles
	count := p.MinCount + rng.Intn(p.MaxCount-p.MinCount+1)

	for i := 0; i < count; i++ {
		angle := 2*math.Pi*float64(i)/float64(count) + (rng.Float64()-0.5)*p.AngleJitter
		speed := p.MinSpeed + rng.Float64()*p.SpeedRange

		entry := archetypes.Particle.SpawnInWorld(w)
		components.Particle.SetValue(entry, components.ParticleData{
			Position: origin,
			Velocity: gamemath.V3(
				math.Cos(angle)*speed,
				p.MinRise+rng.Float64()*p.RiseRange,
				math.Sin(angle)*speed,
			),
			Life:    p.MinLife + rng.Float64()*p.LifeRange,
			MaxLife: p.MaxLife,
			Size:    p.Size,
		})
	}
	return count
}

// SpawnRipple starts an expanding ring at a screen position.
func SpawnRipple(w donburi.World, x, y float64, rng *rand.Rand) *donburi.Entry {
	o := cfg.Overlay
	entry := archetypes.Ripple.SpawnInWorld(w)
	components.Ripple.SetValue(entry, components.RippleData{
		X:         x,
		Y:         y,
		MaxRadius: o.RippleMinRadius + rng.Float64()*o.RippleRadiusRange,
		Life:      1,
		Color:     o.RipplePalette[rng.Intn(len(o.RipplePalette))],
	})
	return entry
}

// SpawnSparkBurst scatters sparks from a screen position and returns how many
// were spawned.
func SpawnSparkBurst(w donburi.World, x, y float64, rng *rand.Rand) int {
	s := cfg.Sparks
	count := s.MinCount + rng.Intn(s.CountRange)

	for i := 0; i < count; i++ {
		angle := 2*math.Pi*float64(i)/float64(count) + (rng.Float64()-0.5)*s.AngleJitter
		speed := s.MinSpeed + rng.Float64()*s.SpeedRange

		entry := archetypes.Spark.SpawnInWorld(w)
		components.Spark.SetValue(entry, components.SparkData{
			Position: dmath.Vec2{X: x, Y: y},
			Velocity: dmath.Vec2{
				X: math.Cos(angle) * speed,
				Y: math.Sin(angle)*speed - s.UpwardBias,
			},
			Life:    1,
			MaxLife: s.MinLife + rng.Float64()*s.LifeRange,
			Size:    s.MinSize + rng.Float64()*s.SizeRange,
			Spin:    (rng.Float64() - 0.5) * s.SpinRange,
			Kind:    components.SparkKind(rng.Intn(3)),
			Color:   s.Palette[rng.Intn(len(s.Palette))],
		})
	}
	return count
}
