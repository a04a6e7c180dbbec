package system

import (
	"github.com/Stan-breaks/Pixel-drifter/component"
	"github.com/Stan-breaks/Pixel-drifter/parameter"
	"github.com/Stan-breaks/Pixel-drifter/parameter/visual"
	"github.com/Stan-breaks/Pixel-drifter/vmath"
)

// Edge identifies the playfield side an enemy enters from
type Edge uint8

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft

	edgeCount
)

// SpawnEnemy returns an active enemy placed just outside a uniformly chosen edge
func SpawnEnemy(rng *vmath.FastRand) component.Enemy {
	return SpawnEnemyAt(Edge(rng.Intn(int(edgeCount))), rng)
}

// SpawnEnemyAt places an enemy one radius beyond the given edge at a uniform coordinate along it
func SpawnEnemyAt(edge Edge, rng *vmath.FastRand) component.Enemy {
	const (
		w = parameter.PlayfieldWidth
		h = parameter.PlayfieldHeight
		r = parameter.EnemyRadius
	)

	var pos vmath.Vec2
	switch edge {
	case EdgeTop:
		pos = vmath.V(rng.Range(0, w), -r)
	case EdgeRight:
		pos = vmath.V(w+r, rng.Range(0, h))
	case EdgeBottom:
		pos = vmath.V(rng.Range(0, w), h+r)
	default:
		pos = vmath.V(-r, rng.Range(0, h))
	}

	return component.Enemy{
		Position: pos,
		Speed:    rng.Range(parameter.EnemyMinSpeed, parameter.EnemyMaxSpeed),
		Radius:   r,
		Active:   true,
		Color:    visual.RgbaEnemy,
	}
}

// GenerateStars fills the starfield with uniformly placed stars of random brightness
func GenerateStars(stars []component.Star, rng *vmath.FastRand) {
	for i := range stars {
		stars[i] = component.Star{
			Position:   vmath.V(rng.Range(0, parameter.PlayfieldWidth), rng.Range(0, parameter.PlayfieldHeight)),
			Brightness: rng.Float64(),
		}
	}
}
