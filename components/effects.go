package components

import (
	"image/color"

	"github.com/ashreef/armlab/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ParticleData is a world-space grab particle.
type ParticleData struct {
	Position gamemath.Vec3
	Velocity gamemath.Vec3
	Life     float64 // seconds remaining
	MaxLife  float64
	Size     float64
}

var Particle = donburi.NewComponentType[ParticleData]()

// RippleData is an expanding screen-space ring left by a click.
type RippleData struct {
	X, Y      float64
	Radius    float64
	MaxRadius float64
	Life      float64 // 1 down to 0
	Color     color.RGBA
}

var Ripple = donburi.NewComponentType[RippleData]()

type SparkKind int

const (
	SparkLine SparkKind = iota
	SparkDot
	SparkTrail
)

// SparkData is a screen-space spark thrown by a click burst.
type SparkData struct {
	Position math.Vec2
	Velocity math.Vec2 // pixels per tick
	Life     float64   // 1 down to 0
	MaxLife  float64   // seconds
	Size     float64
	Rotation float64
	Spin     float64
	Kind     SparkKind
	Color    color.RGBA
}

var Spark = donburi.NewComponentType[SparkData]()
