package engine

// Phase is the top-level game state
type Phase uint8

const (
	// PhasePlaying runs the full simulation
	PhasePlaying Phase = iota
	// PhaseGameOver freezes player and enemies; particles keep fading until restart
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
