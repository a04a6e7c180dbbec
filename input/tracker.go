package input

import "time"

// Tracker turns discrete key events into a per-frame State
// Terminals deliver presses and auto-repeats but no releases, so a direction stays held
// for the hold window after its latest event. Edge actions latch until the next Sample.
type Tracker struct {
	holdWindow time.Duration
	lastPress  [actionCount]time.Time
	latched    [actionCount]bool
}

// NewTracker creates a tracker with the given hold window
func NewTracker(holdWindow time.Duration) *Tracker {
	return &Tracker{holdWindow: holdWindow}
}

// Press records an event for action at now
func (t *Tracker) Press(a Action, now time.Time) {
	if a == ActionNone || a >= actionCount {
		return
	}
	if a.held() {
		t.lastPress[a] = now
		return
	}
	t.latched[a] = true
}

// Release drops a held direction immediately, for backends that report key-up
func (t *Tracker) Release(a Action) {
	if a < actionCount {
		t.lastPress[a] = time.Time{}
	}
}

// Sample returns the state at now and consumes latched edge actions
func (t *Tracker) Sample(now time.Time) State {
	s := State{
		Up:      t.isHeld(ActionUp, now),
		Down:    t.isHeld(ActionDown, now),
		Left:    t.isHeld(ActionLeft, now),
		Right:   t.isHeld(ActionRight, now),
		Restart: t.latched[ActionRestart],
		Quit:    t.latched[ActionQuit],
	}
	t.latched[ActionRestart] = false
	// Quit stays latched: once requested the loop must stop
	return s
}

func (t *Tracker) isHeld(a Action, now time.Time) bool {
	last := t.lastPress[a]
	if last.IsZero() {
		return false
	}
	return now.Sub(last) < t.holdWindow
}
