package physics

import "github.com/Stan-breaks/Pixel-drifter/vmath"

// StepToward moves pos by exactly speed units along the direction to target
// Returns pos unchanged when already at the target, so no zero-length normalization occurs
// Overshoot is allowed: homing entities pass through a target closer than speed
func StepToward(pos, target vmath.Vec2, speed float64) vmath.Vec2 {
	delta := target.Sub(pos)
	dist := delta.Length()
	if dist == 0 {
		return pos
	}
	return pos.Add(delta.Scale(speed / dist))
}

// OutsideBounds reports whether p lies beyond the rectangle [0,w]×[0,h] grown by margin on every side
func OutsideBounds(p vmath.Vec2, w, h, margin float64) bool {
	return p.X < -margin || p.X > w+margin || p.Y < -margin || p.Y > h+margin
}
