package engine

import (
	"github.com/Stan-breaks/Pixel-drifter/component"
	"github.com/Stan-breaks/Pixel-drifter/parameter"
	"github.com/Stan-breaks/Pixel-drifter/system"
	"github.com/Stan-breaks/Pixel-drifter/vmath"
)

// World owns every entity and the run state
// Pools are fixed arrays: no allocation happens per frame
type World struct {
	Player    component.Player
	Enemies   [parameter.EnemyPoolSize]component.Enemy
	Particles [parameter.ParticlePoolSize]component.Particle
	Stars     [parameter.StarCount]component.Star

	Score int
	Phase Phase

	// Frame counts every Step since creation, across restarts
	Frame uint64

	// Single random source for spawns and the starfield
	rng *vmath.FastRand
}

// NewWorld builds a playing world: default player, spawned enemy pool, empty particles, generated stars
func NewWorld(rng *vmath.FastRand) *World {
	w := &World{rng: rng}
	system.GenerateStars(w.Stars[:], rng)
	w.reset()
	return w
}

// reset restores everything except the starfield and frame counter
func (w *World) reset() {
	w.Player = component.NewPlayer()
	w.Score = 0
	w.Phase = PhasePlaying
	system.RespawnAll(w.Enemies[:], w.rng)
	system.ClearParticles(w.Particles[:])
}

// GameOver reports whether the run has ended
func (w *World) GameOver() bool {
	return w.Phase == PhaseGameOver
}

// Snapshot is a by-value copy of the world for rendering
type Snapshot struct {
	Player    component.Player
	Enemies   [parameter.EnemyPoolSize]component.Enemy
	Particles [parameter.ParticlePoolSize]component.Particle
	Stars     [parameter.StarCount]component.Star
	Score     int
	Phase     Phase
	Frame     uint64
}

// Snapshot copies the world state; arrays copy by value
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Player:    w.Player,
		Enemies:   w.Enemies,
		Particles: w.Particles,
		Stars:     w.Stars,
		Score:     w.Score,
		Phase:     w.Phase,
		Frame:     w.Frame,
	}
}
