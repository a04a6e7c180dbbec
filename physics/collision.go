package physics

import "github.com/Stan-breaks/Pixel-drifter/vmath"

// CirclesOverlap reports strict overlap of two circles
// Touching circles (distance == ra + rb) do not overlap
func CirclesOverlap(a vmath.Vec2, ra float64, b vmath.Vec2, rb float64) bool {
	return vmath.Distance(a, b) < ra+rb
}
