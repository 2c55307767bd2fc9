package config

// StateID identifies the arm's interaction state
type StateID int

const (
	StateNone StateID = iota
	Tracking
	Grabbing
)

// StateToName is used by the HUD.
var StateToName = map[StateID]string{
	StateNone: "none",
	Tracking:  "tracking",
	Grabbing:  "grabbing",
}
