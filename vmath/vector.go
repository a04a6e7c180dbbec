package vmath

import "math"

// Vec2 is an immutable 2D position or displacement in playfield pixels
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale multiplies both components by factor
func (v Vec2) Scale(factor float64) Vec2 {
	return Vec2{v.X * factor, v.Y * factor}
}

// Length returns the Euclidean magnitude sqrt(x² + y²)
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns unit vector, zero-safe
// Zero vector yields zero vector rather than NaN components
func (v Vec2) Normalize() Vec2 {
	mag := v.Length()
	if mag == 0 {
		return Vec2{}
	}
	return Vec2{v.X / mag, v.Y / mag}
}

// Distance returns the Euclidean distance between two points
func Distance(a, b Vec2) float64 {
	return b.Sub(a).Length()
}

// FromAngle returns the vector of given magnitude pointing at angle radians
func FromAngle(angle, magnitude float64) Vec2 {
	return Vec2{math.Cos(angle) * magnitude, math.Sin(angle) * magnitude}
}

// Angle returns the direction of v in radians, range (-π, π]
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Clamp limits value to [lo, hi]
// lo wins when the range is inverted
func Clamp(value, lo, hi float64) float64 {
	if value > hi {
		value = hi
	}
	if value < lo {
		value = lo
	}
	return value
}

// ClampToRect clamps both components so a circle of given radius stays inside [0,w]×[0,h]
func ClampToRect(p Vec2, radius, w, h float64) Vec2 {
	return Vec2{
		X: Clamp(p.X, radius, w-radius),
		Y: Clamp(p.Y, radius, h-radius),
	}
}
