package components

import "github.com/ashreef/armlab/gamemath"

// TrailSamples is how many past positions a motion trail keeps.
const TrailSamples = 12

// TrailData is a ring buffer of recent world positions, newest first.
type TrailData struct {
	points [TrailSamples]gamemath.Vec3
	head   int
	size   int
}

// Push records p as the newest sample, dropping the oldest once full.
func (t *TrailData) Push(p gamemath.Vec3) {
	t.head = (t.head + 1) % TrailSamples
	t.points[t.head] = p
	if t.size < TrailSamples {
		t.size++
	}
}

// Len is the number of samples held.
func (t *TrailData) Len() int {
	return t.size
}

// At returns the i-th newest sample; At(0) is the latest.
func (t *TrailData) At(i int) gamemath.Vec3 {
	return t.points[(t.head-i+TrailSamples)%TrailSamples]
}
