// Package engine owns the world state and advances it one fixed step per frame.
//
// A frame runs the systems in order: player, enemies, particles, collision.
// While the game is over only particles advance, so death bursts fade out.
// Notable transitions are reported to an optional EventSink; the simulation
// never depends on the sink.
package engine

// EventType identifies a notable simulation transition
type EventType uint8

const (
	// EventEnemyRecycled fires once per frame with the bounty awarded by recycled enemies
	EventEnemyRecycled EventType = iota + 1
	// EventPlayerHit fires on every frame with contact damage applied
	EventPlayerHit
	// EventPlayerKilled fires once when health drops to zero
	EventPlayerKilled
	// EventRestart fires when a finished run is restarted
	EventRestart
)

func (t EventType) String() string {
	switch t {
	case EventEnemyRecycled:
		return "enemy_recycled"
	case EventPlayerHit:
		return "player_hit"
	case EventPlayerKilled:
		return "player_killed"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Event carries the state after the transition
type Event struct {
	Type   EventType
	Frame  uint64
	Score  int
	Health int

	// Bounty is set for EventEnemyRecycled
	Bounty int
}

// EventSink receives events synchronously on the frame loop
type EventSink interface {
	HandleEvent(ev Event)
}

// EventSinkFunc adapts a function to EventSink
type EventSinkFunc func(ev Event)

func (f EventSinkFunc) HandleEvent(ev Event) { f(ev) }
