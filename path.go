package badge

import "math"

// PathElement is one command of a [Path] outline: [MoveTo], [LineTo],
// [QuadTo], [CubicTo] or [Close].
type PathElement interface {
	isPathElement()
}

// MoveTo begins a subpath.
type MoveTo struct {
	Point Point
}

// LineTo is a straight edge ending at Point.
type LineTo struct {
	Point Point
}

// QuadTo is a quadratic Bézier edge.
type QuadTo struct {
	Control Point
	Point   Point
}

// CubicTo is a cubic Bézier edge.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

// Close returns to the start of the subpath.
type Close struct{}

func (MoveTo) isPathElement()  {}
func (LineTo) isPathElement()  {}
func (QuadTo) isPathElement()  {}
func (CubicTo) isPathElement() {}
func (Close) isPathElement()   {}

// Path is the vector outline of an element. Subpaths left open are closed
// implicitly by every containment query.
//
// Build a Path, then treat it as read-only: placement never mutates it and
// may read it from several goroutines. Path implements [Boundary].
type Path struct {
	elements []PathElement
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{elements: make([]PathElement, 0, 16)}
}

func (p *Path) add(e PathElement) {
	p.elements = append(p.elements, e)
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) { p.add(MoveTo{Point: Pt(x, y)}) }

// LineTo adds a straight edge to (x, y).
func (p *Path) LineTo(x, y float64) { p.add(LineTo{Point: Pt(x, y)}) }

// QuadraticTo adds a quadratic edge to (x, y) with control point (cx, cy).
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	p.add(QuadTo{Control: Pt(cx, cy), Point: Pt(x, y)})
}

// CubicTo adds a cubic edge to (x, y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.add(CubicTo{Control1: Pt(c1x, c1y), Control2: Pt(c2x, c2y), Point: Pt(x, y)})
}

// Close ends the current subpath.
func (p *Path) Close() { p.add(Close{}) }

// Elements returns the outline. Callers must not modify the slice.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// Clone returns an independent copy of p.
func (p *Path) Clone() *Path {
	return &Path{elements: append([]PathElement(nil), p.elements...)}
}

// Transform returns a new path with every point mapped through m.
func (p *Path) Transform(m Matrix) *Path {
	out := &Path{elements: make([]PathElement, len(p.elements))}
	for i, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			e.Point = m.TransformPoint(e.Point)
			out.elements[i] = e
		case LineTo:
			e.Point = m.TransformPoint(e.Point)
			out.elements[i] = e
		case QuadTo:
			e.Control = m.TransformPoint(e.Control)
			e.Point = m.TransformPoint(e.Point)
			out.elements[i] = e
		case CubicTo:
			e.Control1 = m.TransformPoint(e.Control1)
			e.Control2 = m.TransformPoint(e.Control2)
			e.Point = m.TransformPoint(e.Point)
			out.elements[i] = e
		default:
			out.elements[i] = elem
		}
	}
	return out
}

// Rectangle adds the closed rectangle with top-left (x, y).
func (p *Path) Rectangle(x, y, w, h float64) {
	p.Polygon(Pt(x, y), Pt(x+w, y), Pt(x+w, y+h), Pt(x, y+h))
}

// Polygon adds a closed polygon through pts. Fewer than three points add
// nothing.
func (p *Path) Polygon(pts ...Point) {
	if len(pts) < 3 {
		return
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	p.Close()
}

// circleKappa places cubic control points for a quarter circle:
// 4/3 * (sqrt(2) - 1).
const circleKappa = 0.5522847498307936

// Circle adds a closed circle as four cubic quarters.
func (p *Path) Circle(cx, cy, r float64) {
	p.Ellipse(cx, cy, r, r)
}

// Ellipse adds a closed axis-aligned ellipse, starting at its rightmost
// point and running clockwise on screen.
func (p *Path) Ellipse(cx, cy, rx, ry float64) {
	kx, ky := rx*circleKappa, ry*circleKappa
	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	p.CubicTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	p.CubicTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	p.CubicTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	p.Close()
}

// Arc adds a circular arc around (cx, cy) from angle a0 to a1, in radians,
// increasing angle. Each cubic spans at most a quarter turn. An empty path
// gets a MoveTo at the arc start.
func (p *Path) Arc(cx, cy, r, a0, a1 float64) {
	for a1 < a0 {
		a1 += 2 * math.Pi
	}
	n := int(math.Ceil((a1 - a0) / (math.Pi / 2)))
	if n == 0 {
		return
	}
	step := (a1 - a0) / float64(n)
	for i := range n {
		from := a0 + float64(i)*step
		p.arcQuarter(cx, cy, r, from, from+step)
	}
}

// arcQuarter adds one cubic approximating the arc from a to b, |b-a| <= π/2.
func (p *Path) arcQuarter(cx, cy, r, a, b float64) {
	t := math.Tan((b - a) / 2)
	k := math.Sin(b-a) * (math.Sqrt(4+3*t*t) - 1) / 3

	sa, ca := math.Sincos(a)
	sb, cb := math.Sincos(b)
	start := Pt(cx+r*ca, cy+r*sa)
	end := Pt(cx+r*cb, cy+r*sb)

	if p.IsEmpty() {
		p.MoveTo(start.X, start.Y)
	}
	p.CubicTo(
		start.X-k*r*sa, start.Y+k*r*ca,
		end.X+k*r*sb, end.Y-k*r*cb,
		end.X, end.Y,
	)
}

// RoundedRectangle adds a rectangle whose corners are quarter circles of
// radius r, clamped to half the shorter side. A non-positive radius gives
// a plain rectangle.
func (p *Path) RoundedRectangle(x, y, w, h, r float64) {
	r = min(r, w/2, h/2)
	if r <= 0 {
		p.Rectangle(x, y, w, h)
		return
	}
	right, bottom := x+w, y+h

	p.MoveTo(x+r, y)
	p.LineTo(right-r, y)
	p.Arc(right-r, y+r, r, -math.Pi/2, 0)
	p.LineTo(right, bottom-r)
	p.Arc(right-r, bottom-r, r, 0, math.Pi/2)
	p.LineTo(x+r, bottom)
	p.Arc(x+r, bottom-r, r, math.Pi/2, math.Pi)
	p.LineTo(x, y+r)
	p.Arc(x+r, y+r, r, math.Pi, 3*math.Pi/2)
	p.Close()
}
