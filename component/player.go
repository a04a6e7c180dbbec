package component

import (
	"github.com/Stan-breaks/Pixel-drifter/core"
	"github.com/Stan-breaks/Pixel-drifter/parameter"
	"github.com/Stan-breaks/Pixel-drifter/parameter/visual"
	"github.com/Stan-breaks/Pixel-drifter/vmath"
)

// Player is the single user-controlled circle
type Player struct {
	Position vmath.Vec2

	// Pixels per frame along either axis, diagonal normalized to the same magnitude
	Speed  float64
	Radius float64

	// Health reaching 0 ends the run
	Health int

	Color core.RGBA
}

// NewPlayer returns the player at its restart defaults: centered, full health
func NewPlayer() Player {
	return Player{
		Position: vmath.V(parameter.PlayerStartX, parameter.PlayerStartY),
		Speed:    parameter.PlayerSpeed,
		Radius:   parameter.PlayerRadius,
		Health:   parameter.PlayerHealth,
		Color:    visual.RgbaPlayer,
	}
}

// Alive reports whether health is still positive
func (p *Player) Alive() bool {
	return p.Health > 0
}
