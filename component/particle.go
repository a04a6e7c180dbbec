package component

import (
	"github.com/Stan-breaks/Pixel-drifter/core"
	"github.com/Stan-breaks/Pixel-drifter/vmath"
)

// Particle is one slot of the fixed particle pool, inactive by default
type Particle struct {
	Position vmath.Vec2

	// Constant per-frame displacement, no drag or gravity
	Velocity vmath.Vec2

	Color core.RGBA

	// Lifetime counts down from 1.0; slot frees at or below zero
	Lifetime float64

	Active bool
}
