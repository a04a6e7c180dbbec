package renderers

import (
	"math"

	"github.com/Stan-breaks/Pixel-drifter/engine"
	"github.com/Stan-breaks/Pixel-drifter/render"
	"github.com/Stan-breaks/Pixel-drifter/vmath"
)

// EnemiesRenderer draws every pool slot as a triangle inscribed in its radius, apex toward the player
// Slots are always active, so no Active filter is applied
type EnemiesRenderer struct{}

func NewEnemiesRenderer() *EnemiesRenderer {
	return &EnemiesRenderer{}
}

func (r *EnemiesRenderer) Render(snap *engine.Snapshot, c render.Canvas) {
	for i := range snap.Enemies {
		e := &snap.Enemies[i]
		a, b, d := enemyTriangle(e.Position, e.Radius, snap.Player.Position.Sub(e.Position).Angle())
		c.DrawTriangle(
			int(math.Round(a.X)), int(math.Round(a.Y)),
			int(math.Round(b.X)), int(math.Round(b.Y)),
			int(math.Round(d.X)), int(math.Round(d.Y)),
			e.Color,
		)
	}
}

// enemyTriangle returns the equilateral triangle vertices for heading angle
func enemyTriangle(center vmath.Vec2, radius, heading float64) (apex, left, right vmath.Vec2) {
	const third = 2 * math.Pi / 3
	apex = center.Add(vmath.FromAngle(heading, radius))
	left = center.Add(vmath.FromAngle(heading+third, radius))
	right = center.Add(vmath.FromAngle(heading-third, radius))
	return apex, left, right
}
