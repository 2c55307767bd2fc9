package systems

import (
	"math/rand"
	"time"

	"github.com/ashreef/armlab/components"
	"github.com/yohamta/donburi"
)

// GetOrCreateRandom returns the world's random source, seeding one from the
// clock if the scene did not provide it.
func GetOrCreateRandom(w donburi.World) *rand.Rand {
	entry, ok := components.Random.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Random))
	}
	random := components.Random.Get(entry)
	if random.Rand == nil {
		random.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return random.Rand
}
