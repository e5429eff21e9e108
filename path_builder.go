package badge

import "math"

// PathBuilder chains outline construction calls, which keeps test fixtures
// and scene snippets on one line:
//
//	star := badge.BuildPath().Star(50, 50, 50, 20, 5).Build()
type PathBuilder struct {
	path *Path
}

// BuildPath returns a builder over an empty path.
func BuildPath() *PathBuilder {
	return &PathBuilder{path: NewPath()}
}

func (b *PathBuilder) MoveTo(x, y float64) *PathBuilder {
	b.path.MoveTo(x, y)
	return b
}

func (b *PathBuilder) LineTo(x, y float64) *PathBuilder {
	b.path.LineTo(x, y)
	return b
}

func (b *PathBuilder) QuadTo(cx, cy, x, y float64) *PathBuilder {
	b.path.QuadraticTo(cx, cy, x, y)
	return b
}

func (b *PathBuilder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *PathBuilder {
	b.path.CubicTo(c1x, c1y, c2x, c2y, x, y)
	return b
}

func (b *PathBuilder) Close() *PathBuilder {
	b.path.Close()
	return b
}

func (b *PathBuilder) Rect(x, y, w, h float64) *PathBuilder {
	b.path.Rectangle(x, y, w, h)
	return b
}

// RoundRect appends a rectangle whose corner radius is clamped to half
// the shorter side.
func (b *PathBuilder) RoundRect(x, y, w, h, r float64) *PathBuilder {
	b.path.RoundedRectangle(x, y, w, h, r)
	return b
}

func (b *PathBuilder) Circle(cx, cy, r float64) *PathBuilder {
	b.path.Circle(cx, cy, r)
	return b
}

func (b *PathBuilder) Ellipse(cx, cy, rx, ry float64) *PathBuilder {
	b.path.Ellipse(cx, cy, rx, ry)
	return b
}

func (b *PathBuilder) Polygon(pts ...Point) *PathBuilder {
	b.path.Polygon(pts...)
	return b
}

// RegularPolygon appends an n-gon with its first vertex straight above the
// center. Fewer than three sides adds nothing.
func (b *PathBuilder) RegularPolygon(cx, cy, radius float64, sides int) *PathBuilder {
	if sides >= 3 {
		b.path.Polygon(ring(Pt(cx, cy), sides, func(int) float64 { return radius })...)
	}
	return b
}

// Star appends a star whose vertices alternate between outer and inner
// radius, starting at the top.
func (b *PathBuilder) Star(cx, cy, outer, inner float64, points int) *PathBuilder {
	if points >= 3 {
		b.path.Polygon(ring(Pt(cx, cy), 2*points, func(i int) float64 {
			if i%2 == 1 {
				return inner
			}
			return outer
		})...)
	}
	return b
}

// ring spaces n vertices evenly around c, clockwise from 12 o'clock.
func ring(c Point, n int, radius func(i int) float64) []Point {
	pts := make([]Point, n)
	step := 2 * math.Pi / float64(n)
	for i := range pts {
		sin, cos := math.Sincos(float64(i)*step - math.Pi/2)
		r := radius(i)
		pts[i] = Pt(c.X+r*cos, c.Y+r*sin)
	}
	return pts
}

func (b *PathBuilder) Build() *Path {
	return b.path
}
