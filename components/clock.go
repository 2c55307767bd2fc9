package components

import "github.com/yohamta/donburi"

type ClockData struct {
	Delta   float64 // seconds since the previous tick
	Elapsed float64 // seconds since the scene started
	Tick    int
}

// Millis is the elapsed time in milliseconds, the unit the overlay animations
// are tuned in.
func (c *ClockData) Millis() float64 {
	return c.Elapsed * 1000
}

var Clock = donburi.NewComponentType[ClockData]()
