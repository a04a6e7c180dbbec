package component

import "github.com/Stan-breaks/Pixel-drifter/vmath"

// Star is a decorative background point, never mutated after generation
type Star struct {
	Position vmath.Vec2

	// Brightness in [0,1) drives both alpha and drawn radius
	Brightness float64
}
