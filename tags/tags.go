package tags

import "github.com/yohamta/donburi"

var (
	Arm       = donburi.NewTag().SetName("Arm")
	Particle  = donburi.NewTag().SetName("Particle")
	Ripple    = donburi.NewTag().SetName("Ripple")
	Spark     = donburi.NewTag().SetName("Spark")
	HoverZone = donburi.NewTag().SetName("HoverZone")
	Pointer   = donburi.NewTag().SetName("Pointer")
)

// Resolv tags for the overlay hover broadphase
const (
	ResolvHoverZone = "hoverzone"
	ResolvPointer   = "pointer"
)
