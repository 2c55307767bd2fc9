package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// RandomData is the world's random source. Tests seed it for repeatable bursts.
type RandomData struct {
	*rand.Rand
}

var Random = donburi.NewComponentType[RandomData]()
