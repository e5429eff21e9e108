package badge

import "math"

// FillRule decides which regions of a self-overlapping outline count as
// inside.
type FillRule int

const (
	// FillRuleNonZero counts a point inside when the outline winds around
	// it a non-zero number of times.
	FillRuleNonZero FillRule = iota

	// FillRuleEvenOdd counts a point inside when a ray from it crosses the
	// outline an odd number of times.
	FillRuleEvenOdd
)

// String returns the SVG name of the rule.
func (r FillRule) String() string {
	switch r {
	case FillRuleNonZero:
		return "nonzero"
	case FillRuleEvenOdd:
		return "evenodd"
	default:
		return "unknown"
	}
}

const (
	// windingTolerance is how far a flattened curve may stray from the
	// true curve during containment tests.
	windingTolerance = 0.1

	// maxSubdivisionDepth stops curve splitting on degenerate input.
	maxSubdivisionDepth = 16
)

// walk visits every edge of p in order. Open subpaths are closed with a
// straight edge, the way a fill closes them.
func (p *Path) walk(line func(a, b Point), quad func(QuadBez), cubic func(CubicBez)) {
	var at, start Point
	open := false
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			if open {
				line(at, start)
			}
			at, start, open = e.Point, e.Point, true
		case LineTo:
			line(at, e.Point)
			at = e.Point
		case QuadTo:
			quad(NewQuadBez(at, e.Control, e.Point))
			at = e.Point
		case CubicTo:
			cubic(NewCubicBez(at, e.Control1, e.Control2, e.Point))
			at = e.Point
		case Close:
			line(at, start)
			at, open = start, false
		}
	}
	if open {
		line(at, start)
	}
}

// rayCast follows a horizontal ray from pt toward +x, recording the signed
// winding number and the number of edges it crosses.
type rayCast struct {
	pt      Point
	winding int
	hits    int
}

// edge scores one straight edge. An edge counts when it spans the ray's y
// (half-open, so shared vertices are counted once) and pt lies on the
// side that makes the crossing land to the right.
func (r *rayCast) edge(a, b Point) {
	side := b.Sub(a).Cross(r.pt.Sub(a))
	switch {
	case a.Y <= r.pt.Y && b.Y > r.pt.Y && side > 0:
		r.winding++
		r.hits++
	case a.Y > r.pt.Y && b.Y <= r.pt.Y && side < 0:
		r.winding--
		r.hits++
	}
}

// misses reports whether an edge whose control hull spans [y0, y1] and
// reaches no further right than x1 can be skipped.
func (r *rayCast) misses(y0, y1, x1 float64) bool {
	return r.pt.Y < y0 || r.pt.Y > y1 || r.pt.X > x1
}

func (r *rayCast) quad(q QuadBez, depth int) {
	if depth == 0 && r.misses(min(q.P0.Y, q.P1.Y, q.P2.Y), max(q.P0.Y, q.P1.Y, q.P2.Y), max(q.P0.X, q.P1.X, q.P2.X)) {
		return
	}
	if depth >= maxSubdivisionDepth || q.P1.Distance(q.P0.Lerp(q.P2, 0.5)) <= windingTolerance {
		r.edge(q.P0, q.P2)
		return
	}
	a, b := q.Subdivide()
	r.quad(a, depth+1)
	r.quad(b, depth+1)
}

func (r *rayCast) cubic(c CubicBez, depth int) {
	if depth == 0 && r.misses(min(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y), max(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y), max(c.P0.X, c.P1.X, c.P2.X, c.P3.X)) {
		return
	}
	// flatness is 16x the squared distance.
	if depth >= maxSubdivisionDepth || c.flatness() <= 16*windingTolerance*windingTolerance {
		r.edge(c.P0, c.P3)
		return
	}
	a, b := c.Subdivide()
	r.cubic(a, depth+1)
	r.cubic(b, depth+1)
}

func (p *Path) cast(pt Point) rayCast {
	r := rayCast{pt: pt}
	p.walk(r.edge,
		func(q QuadBez) { r.quad(q, 0) },
		func(c CubicBez) { r.cubic(c, 0) },
	)
	return r
}

// Winding returns the winding number of the outline around pt; zero means
// outside under the non-zero rule.
func (p *Path) Winding(pt Point) int {
	return p.cast(pt).winding
}

// Contains reports whether pt is inside under the non-zero rule.
func (p *Path) Contains(pt Point) bool {
	return p.Winding(pt) != 0
}

// ContainsPoint reports whether pt is inside under rule.
func (p *Path) ContainsPoint(pt Point, rule FillRule) bool {
	r := p.cast(pt)
	if rule == FillRuleEvenOdd {
		return r.hits%2 == 1
	}
	return r.winding != 0
}

// BoundingBox returns the tight bounds of the outline, curve extrema
// included. A path without points has a zero Rect.
func (p *Path) BoundingBox() Rect {
	var box Rect
	seen := false
	grow := func(r Rect) {
		if !seen {
			box, seen = r, true
			return
		}
		box = box.Union(r)
	}
	p.walk(
		func(a, b Point) { grow(NewRect(a, b)) },
		func(q QuadBez) { grow(q.BoundingBox()) },
		func(c CubicBez) { grow(c.BoundingBox()) },
	)
	if !seen || math.IsNaN(box.Min.X) {
		return Rect{}
	}
	return box
}
