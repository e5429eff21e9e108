package badge

import "math"

// Point is a position in shape coordinates: x grows right, y grows down.
type Point struct {
	X, Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p + q, component-wise.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q, component-wise.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Cross returns the z component of p × q, treating both as vectors.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the distance of p from the origin.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns |p - q|.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Offset returns p moved t units of v.
func (p Point) Offset(v Vec2, t float64) Point {
	return Point{X: p.X + v.X*t, Y: p.Y + v.Y*t}
}

// Lerp interpolates from p (t=0) to q (t=1).
func (p Point) Lerp(q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// IsFinite reports whether neither coordinate is NaN or infinite.
func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}
