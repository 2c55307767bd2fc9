package factory

import (
	"math/rand"
	"testing"

	"github.com/ashreef/armlab/components"
	cfg "github.com/ashreef/armlab/config"
	"github.com/ashreef/armlab/gamemath"
	"github.com/yohamta/donburi"
)

func TestSpawnParticleBurstRanges(t *testing.T) {
	p := cfg.Particles
	for seed := int64(1); seed <= 20; seed++ {
		w := donburi.NewWorld()
		origin := gamemath.V3(1, 2, 3)
		n := SpawnParticleBurst(w, origin, rand.New(rand.NewSource(seed)))
		if n < p.MinCount || n > p.MaxCount {
			t.Fatalf("seed %d: count %d outside [%d, %d]", seed, n, p.MinCount, p.MaxCount)
		}

		spawned := 0
		components.Particle.Each(w, func(e *donburi.Entry) {
			spawned++
			part := components.Particle.Get(e)
			if part.Position != origin {
				t.Errorf("seed %d: particle starts at %v", seed, part.Position)
			}
			if vy := part.Velocity.Y; vy < p.MinRise || vy >= p.MinRise+p.RiseRange {
				t.Errorf("seed %d: rise %v outside [%v, %v)", seed, vy, p.MinRise, p.MinRise+p.RiseRange)
			}
			if s := part.Velocity.LenXZ(); s < p.MinSpeed-1e-9 || s >= p.MinSpeed+p.SpeedRange {
				t.Errorf("seed %d: speed %v outside [%v, %v)", seed, s, p.MinSpeed, p.MinSpeed+p.SpeedRange)
			}
			if part.Life < p.MinLife || part.Life >= p.MinLife+p.LifeRange {
				t.Errorf("seed %d: life %v outside [%v, %v)", seed, part.Life, p.MinLife, p.MinLife+p.LifeRange)
			}
		})
		if spawned != n {
			t.Errorf("seed %d: reported %d, spawned %d", seed, n, spawned)
		}
	}
}

func TestSpawnParticleBurstDeterministic(t *testing.T) {
	a := SpawnParticleBurst(donburi.NewWorld(), gamemath.Vec3{}, rand.New(rand.NewSource(7)))
	b := SpawnParticleBurst(donburi.NewWorld(), gamemath.Vec3{}, rand.New(rand.NewSource(7)))
	if a != b {
		t.Errorf("same seed gave %d and %d particles", a, b)
	}
}

func TestSpawnSparkBurst(t *testing.T) {
	s := cfg.Sparks
	w := donburi.NewWorld()
	n := SpawnSparkBurst(w, 50, 60, rand.New(rand.NewSource(3)))
	if n < s.MinCount || n >= s.MinCount+s.CountRange {
		t.Fatalf("count %d outside [%d, %d)", n, s.MinCount, s.MinCount+s.CountRange)
	}
	components.Spark.Each(w, func(e *donburi.Entry) {
		spark := components.Spark.Get(e)
		if spark.Life != 1 {
			t.Errorf("life = %v, want 1", spark.Life)
		}
		if spark.MaxLife < s.MinLife || spark.MaxLife >= s.MinLife+s.LifeRange {
			t.Errorf("max life %v outside range", spark.MaxLife)
		}
		if spark.Kind < components.SparkLine || spark.Kind > components.SparkTrail {
			t.Errorf("unknown kind %d", spark.Kind)
		}
	})
}

func TestSpawnRipple(t *testing.T) {
	o := cfg.Overlay
	w := donburi.NewWorld()
	r := components.Ripple.Get(SpawnRipple(w, 10, 20, rand.New(rand.NewSource(1))))
	if r.X != 10 || r.Y != 20 || r.Life != 1 || r.Radius != 0 {
		t.Errorf("ripple = %+v", r)
	}
	if r.MaxRadius < o.RippleMinRadius || r.MaxRadius >= o.RippleMinRadius+o.RippleRadiusRange {
		t.Errorf("max radius %v outside range", r.MaxRadius)
	}
}
