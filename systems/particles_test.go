package systems

import (
	"testing"

	"github.com/ashreef/armlab/components"
	"github.com/ashreef/armlab/gamemath"
	"github.com/ashreef/armlab/systems/factory"
	"github.com/ashreef/armlab/tags"
)

func TestParticlesFallAndExpire(t *testing.T) {
	e := newTestScene(t)
	factory.SpawnParticleBurst(e.World, gamemath.V3(0, 2, 0), GetOrCreateRandom(e.World))

	entry, _ := tags.Particle.First(e.World)
	p := components.Particle.Get(entry)
	rise := p.Velocity.Y

	AdvanceClock(e, 0.1)
	UpdateParticles(e)
	if p.Velocity.Y >= rise {
		t.Errorf("vertical velocity %v did not drop below %v", p.Velocity.Y, rise)
	}
	if p.Position.Y <= 2 {
		t.Errorf("particle did not rise: y = %v", p.Position.Y)
	}

	for i := 0; i < 15; i++ {
		AdvanceClock(e, 0.1)
		UpdateParticles(e)
	}
	if n := count(e.World, components.Particle); n != 0 {
		t.Errorf("particles = %d after 1.6s, want 0", n)
	}
}

func TestSparksStepAndExpire(t *testing.T) {
	e := newTestScene(t)
	factory.SpawnSparkBurst(e.World, 100, 100, GetOrCreateRandom(e.World))

	entry, _ := tags.Spark.First(e.World)
	s := components.Spark.Get(entry)
	v := s.Velocity
	UpdateSparks(e)

	wantX := v.X * 0.98
	wantY := (v.Y + 0.15) * 0.98
	if s.Velocity.X != wantX || s.Velocity.Y != wantY {
		t.Errorf("velocity = %v, want (%v, %v)", s.Velocity, wantX, wantY)
	}
	if s.Position.X != 100+wantX || s.Position.Y != 100+wantY {
		t.Errorf("position = %v, want (%v, %v)", s.Position, 100+wantX, 100+wantY)
	}
	if s.Life >= 1 {
		t.Errorf("life did not decay: %v", s.Life)
	}

	// Longest lived sparks last 1.0/0.016 ticks.
	for i := 0; i < 64; i++ {
		UpdateSparks(e)
	}
	if n := count(e.World, components.Spark); n != 0 {
		t.Errorf("sparks = %d, want 0", n)
	}
}
