package badge

import (
	"math"
	"slices"
)

// QuadBez is a quadratic Bézier segment from P0 to P2 with control P1.
type QuadBez struct {
	P0, P1, P2 Point
}

// NewQuadBez returns the segment p0 → p2 controlled by p1.
func NewQuadBez(p0, p1, p2 Point) QuadBez {
	return QuadBez{P0: p0, P1: p1, P2: p2}
}

// Eval returns the point at parameter t in [0, 1].
func (q QuadBez) Eval(t float64) Point {
	a := q.P0.Lerp(q.P1, t)
	b := q.P1.Lerp(q.P2, t)
	return a.Lerp(b, t)
}

// Subdivide splits q at t = 0.5.
func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	l := q.P0.Lerp(q.P1, 0.5)
	r := q.P1.Lerp(q.P2, 0.5)
	mid := l.Lerp(r, 0.5)
	return QuadBez{q.P0, l, mid}, QuadBez{mid, r, q.P2}
}

// Extrema returns the interior parameters, sorted, where x or y is
// stationary. The derivative is linear, so there is at most one per axis.
func (q QuadBez) Extrema() []float64 {
	a := q.P1.Sub(q.P0)
	b := q.P2.Sub(q.P1).Sub(a)

	var ts []float64
	for _, axis := range [][2]float64{{a.X, b.X}, {a.Y, b.Y}} {
		if axis[1] == 0 {
			continue
		}
		if t := -axis[0] / axis[1]; t > 0 && t < 1 {
			ts = append(ts, t)
		}
	}
	slices.Sort(ts)
	return ts
}

// BoundingBox returns the tight bounds of q.
func (q QuadBez) BoundingBox() Rect {
	box := NewRect(q.P0, q.P2)
	for _, t := range q.Extrema() {
		box = box.include(q.Eval(t))
	}
	return box
}

// CubicBez is a cubic Bézier segment from P0 to P3 with controls P1, P2.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// NewCubicBez returns the segment p0 → p3 controlled by p1 and p2.
func NewCubicBez(p0, p1, p2, p3 Point) CubicBez {
	return CubicBez{P0: p0, P1: p1, P2: p2, P3: p3}
}

// Eval returns the point at parameter t in [0, 1].
func (c CubicBez) Eval(t float64) Point {
	s := 1 - t
	w0, w1, w2, w3 := s*s*s, 3*s*s*t, 3*s*t*t, t*t*t
	return Pt(
		w0*c.P0.X+w1*c.P1.X+w2*c.P2.X+w3*c.P3.X,
		w0*c.P0.Y+w1*c.P1.Y+w2*c.P2.Y+w3*c.P3.Y,
	)
}

// Subdivide splits c at t = 0.5 by de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	a := c.P0.Lerp(c.P1, 0.5)
	b := c.P1.Lerp(c.P2, 0.5)
	d := c.P2.Lerp(c.P3, 0.5)
	ab := a.Lerp(b, 0.5)
	bd := b.Lerp(d, 0.5)
	mid := ab.Lerp(bd, 0.5)
	return CubicBez{c.P0, a, ab, mid}, CubicBez{mid, bd, d, c.P3}
}

// Extrema returns the interior parameters, sorted, where x or y is
// stationary; up to two per axis.
func (c CubicBez) Extrema() []float64 {
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)

	ts := solveQuadraticInUnitInterval(d0.X-2*d1.X+d2.X, 2*(d1.X-d0.X), d0.X)
	ts = append(ts, solveQuadraticInUnitInterval(d0.Y-2*d1.Y+d2.Y, 2*(d1.Y-d0.Y), d0.Y)...)
	slices.Sort(ts)
	return ts
}

// BoundingBox returns the tight bounds of c.
func (c CubicBez) BoundingBox() Rect {
	box := NewRect(c.P0, c.P3)
	for _, t := range c.Extrema() {
		box = box.include(c.Eval(t))
	}
	return box
}

// flatness bounds 16× the squared distance between c and its chord.
func (c CubicBez) flatness() float64 {
	u := Pt(3*c.P1.X-2*c.P0.X-c.P3.X, 3*c.P1.Y-2*c.P0.Y-c.P3.Y)
	v := Pt(3*c.P2.X-c.P0.X-2*c.P3.X, 3*c.P2.Y-c.P0.Y-2*c.P3.Y)
	return math.Max(u.X*u.X+u.Y*u.Y, v.X*v.X+v.Y*v.Y)
}
