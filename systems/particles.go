package systems

import (
	"github.com/ashreef/armlab/components"
	cfg "github.com/ashreef/armlab/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateParticles ages grab particles, drops the dead ones and integrates the
// rest under gravity.
func UpdateParticles(ecs *ecs.ECS) {
	dt := GetOrCreateClock(ecs).Delta
	var expired []*donburi.Entry

	components.Particle.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		p.Life -= dt
		if p.Life <= 0 {
			expired = append(expired, e)
			return
		}
		p.Position = p.Position.Add(p.Velocity.Scale(dt))
		p.Velocity.Y -= cfg.Particles.Gravity * dt
	})

	for _, e := range expired {
		ecs.World.Remove(e.Entity())
	}
}

// UpdateSparks steps the click spark burst once per tick.
func UpdateSparks(ecs *ecs.ECS) {
	s := cfg.Sparks
	var expired []*donburi.Entry

	components.Spark.Each(ecs.World, func(e *donburi.Entry) {
		spark := components.Spark.Get(e)
		spark.Velocity.Y += s.Gravity
		spark.Velocity.X *= s.Drag
		spark.Velocity.Y *= s.Drag
		spark.Position.X += spark.Velocity.X
		spark.Position.Y += spark.Velocity.Y
		spark.Rotation += spark.Spin
		spark.Life -= s.TickDecay / spark.MaxLife
		if spark.Life <= 0 {
			expired = append(expired, e)
		}
	})

	for _, e := range expired {
		ecs.World.Remove(e.Entity())
	}
}
