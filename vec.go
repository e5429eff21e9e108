package badge

import "math"

// Vec2 is a displacement, as opposed to a [Point] position. Corner inward
// directions and the circle-fit ring are expressed as Vec2.
type Vec2 struct {
	X, Y float64
}

// V2 returns the vector (x, y).
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Mul returns v scaled by s.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Length returns |v|.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Approx reports whether v and w agree within eps on both axes.
func (v Vec2) Approx(w Vec2, eps float64) bool {
	return math.Abs(v.X-w.X) < eps && math.Abs(v.Y-w.Y) < eps
}
