package state

// GameState represents the current state of the match host
type GameState int

const (
	StateKickoff GameState = iota
	StatePlaying
	StatePaused
	StateGoalFreeze
	StateFullTime
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateKickoff:
		return "Kickoff"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGoalFreeze:
		return "GoalFreeze"
	case StateFullTime:
		return "FullTime"
	default:
		return "Unknown"
	}
}

// Simulating reports whether the match clock runs in this state
func (s GameState) Simulating() bool {
	return s == StatePlaying
}
