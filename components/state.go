package components

import (
	"github.com/ashreef/armlab/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    int // ticks spent in CurrentState
}

var State = donburi.NewComponentType[StateData]()

// Set moves to next and resets the timer. Re-entering the same state only
// resets the timer.
func (s *StateData) Set(next config.StateID) {
	if s.CurrentState != next {
		s.PreviousState = s.CurrentState
		s.CurrentState = next
	}
	s.StateTimer = 0
}
