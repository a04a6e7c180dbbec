package app

import (
	"log"

	"github.com/google/uuid"

	"github.com/Stan-breaks/Pixel-drifter/engine"
)

// EventLogger writes engine events tagged with a run ID
// Every restart begins a new run with a fresh ID
type EventLogger struct {
	logger *log.Logger
	runID  uuid.UUID
	runs   int
}

func NewEventLogger(logger *log.Logger) *EventLogger {
	l := &EventLogger{
		logger: logger,
		runID:  uuid.New(),
		runs:   1,
	}
	l.logger.Printf("run=%s started", l.runID)
	return l
}

// RunID returns the current run identifier
func (l *EventLogger) RunID() uuid.UUID {
	return l.runID
}

// Runs returns how many runs have started, including the current one
func (l *EventLogger) Runs() int {
	return l.runs
}

func (l *EventLogger) HandleEvent(ev engine.Event) {
	if ev.Type == engine.EventRestart {
		prev := l.runID
		l.runID = uuid.New()
		l.runs++
		l.logger.Printf("run=%s frame=%d event=%s previous=%s", l.runID, ev.Frame, ev.Type, prev)
		return
	}

	switch ev.Type {
	case engine.EventEnemyRecycled:
		l.logger.Printf("run=%s frame=%d event=%s bounty=%d score=%d", l.runID, ev.Frame, ev.Type, ev.Bounty, ev.Score)
	case engine.EventPlayerKilled:
		l.logger.Printf("run=%s frame=%d event=%s final_score=%d", l.runID, ev.Frame, ev.Type, ev.Score)
	default:
		l.logger.Printf("run=%s frame=%d event=%s health=%d", l.runID, ev.Frame, ev.Type, ev.Health)
	}
}
