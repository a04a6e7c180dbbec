package component

import (
	"github.com/Stan-breaks/Pixel-drifter/core"
	"github.com/Stan-breaks/Pixel-drifter/vmath"
)

// Enemy is one slot of the fixed enemy pool
// Slots are recycled in place when they drift off the extended playfield; Active stays true
type Enemy struct {
	Position vmath.Vec2
	Speed    float64
	Radius   float64
	Active   bool
	Color    core.RGBA
}
