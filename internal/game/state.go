package game

// State is the session phase.
type State int

const (
	StateNotStarted State = iota // Title screen, nothing ticks
	StateRunning                 // Simulation and spawner active
	StateGameOver                // Terminal; entities frozen in place
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}
