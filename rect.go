package badge

import "math"

// Rect is an axis-aligned box with Min at the top-left and Max at the
// bottom-right.
type Rect struct {
	Min, Max Point
}

// NewRect returns the box spanned by two opposite corners in any order.
func NewRect(a, b Point) Rect {
	return Rect{
		Min: Pt(min(a.X, b.X), min(a.Y, b.Y)),
		Max: Pt(max(a.X, b.X), max(a.Y, b.Y)),
	}
}

// XYWH returns the box with top-left (x, y) and size w × h.
func XYWH(x, y, w, h float64) Rect {
	return NewRect(Pt(x, y), Pt(x+w, y+h))
}

// Width returns Max.X - Min.X.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns Max.Y - Min.Y.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Diagonal returns the corner-to-corner length. Candidate scores are
// normalized by it.
func (r Rect) Diagonal() float64 { return math.Hypot(r.Width(), r.Height()) }

// IsEmpty reports whether r has no area.
func (r Rect) IsEmpty() bool {
	return !(r.Width() > 0 && r.Height() > 0)
}

// Union returns the smallest box covering r and s.
func (r Rect) Union(s Rect) Rect {
	return Rect{
		Min: Pt(min(r.Min.X, s.Min.X), min(r.Min.Y, s.Min.Y)),
		Max: Pt(max(r.Max.X, s.Max.X), max(r.Max.Y, s.Max.Y)),
	}
}

// include grows r to cover p.
func (r Rect) include(p Point) Rect {
	return r.Union(Rect{Min: p, Max: p})
}

// Contains reports whether p lies in r, edges included.
func (r Rect) Contains(p Point) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X && r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

// Transform returns the bounds of r's four corners mapped through m.
func (r Rect) Transform(m Matrix) Rect {
	out := NewRect(m.TransformPoint(r.Min), m.TransformPoint(r.Max))
	out = out.include(m.TransformPoint(Pt(r.Min.X, r.Max.Y)))
	return out.include(m.TransformPoint(Pt(r.Max.X, r.Min.Y)))
}
