package engine

import (
	"github.com/Stan-breaks/Pixel-drifter/input"
	"github.com/Stan-breaks/Pixel-drifter/system"
	"github.com/Stan-breaks/Pixel-drifter/vmath"
)

// Game advances a World from per-frame input
type Game struct {
	World *World
	sink  EventSink
}

// NewGame creates a game with a fresh world seeded from rng
// sink may be nil
func NewGame(rng *vmath.FastRand, sink EventSink) *Game {
	return &Game{
		World: NewWorld(rng),
		sink:  sink,
	}
}

// Step advances the simulation by exactly one frame
func (g *Game) Step(in input.State) {
	w := g.World
	w.Frame++

	if w.Phase == PhaseGameOver {
		if in.Restart {
			g.Restart()
			return
		}
		system.UpdateParticles(w.Particles[:])
		return
	}

	system.UpdatePlayer(&w.Player, in)

	if bounty := system.UpdateEnemies(w.Enemies[:], &w.Player, w.rng); bounty > 0 {
		w.Score += bounty
		g.emit(EventEnemyRecycled, bounty)
	}

	system.UpdateParticles(w.Particles[:])

	if !system.CheckCollision(&w.Player, w.Enemies[:]) {
		return
	}

	killed := system.ApplyHit(&w.Player, w.Particles[:])
	g.emit(EventPlayerHit, 0)
	if killed {
		w.Phase = PhaseGameOver
		g.emit(EventPlayerKilled, 0)
	}
}

// Restart begins a new run after game over; ignored while playing
// Stars and the frame counter survive the restart
func (g *Game) Restart() bool {
	if g.World.Phase != PhaseGameOver {
		return false
	}
	g.World.reset()
	g.emit(EventRestart, 0)
	return true
}

func (g *Game) emit(t EventType, bounty int) {
	if g.sink == nil {
		return
	}
	w := g.World
	g.sink.HandleEvent(Event{
		Type:   t,
		Frame:  w.Frame,
		Score:  w.Score,
		Health: w.Player.Health,
		Bounty: bounty,
	})
}
