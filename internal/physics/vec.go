// Package physics implements the shared simulation primitives used by all
// games on the platform: per-tick motion integration, circle-vs-segment,
// box-vs-box and circle-vs-circle collision tests, and swept collision
// sampling for fast-moving bodies.
package physics

import "math"

// Vec2 is a 2D vector in play-field coordinates.
type Vec2 struct {
	X, Y float64
}

// V is a shorthand constructor.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Len returns the vector's magnitude.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns a unit vector in v's direction, or the zero vector if v
// has no magnitude.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Perp returns the left-hand perpendicular of v.
func (v Vec2) Perp() Vec2 {
	return Vec2{-v.Y, v.X}
}

// Dist returns the distance between two points.
func Dist(a, b Vec2) float64 {
	return a.Sub(b).Len()
}
