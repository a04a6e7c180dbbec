package input

// State is the logical input sampled once per frame
// Directions are level signals (held); Restart is edge-triggered, true only on the frame the key was first pressed
type State struct {
	Up, Down, Left, Right bool

	Restart bool

	// Quit asks the frame loop to stop
	Quit bool
}

// Axis returns the raw movement direction: ±1 per held axis, opposite keys cancel
func (s State) Axis() (dx, dy float64) {
	if s.Left {
		dx--
	}
	if s.Right {
		dx++
	}
	if s.Up {
		dy--
	}
	if s.Down {
		dy++
	}
	return dx, dy
}
