package badge

// Corner is a logical corner of a shape's bounding box.
// Leading and trailing follow the layout direction.
type Corner int

const (
	// TopLeading is the top-left corner in left-to-right layouts.
	TopLeading Corner = iota
	// TopTrailing is the top-right corner in left-to-right layouts.
	TopTrailing
	// BottomLeading is the bottom-left corner in left-to-right layouts.
	BottomLeading
	// BottomTrailing is the bottom-right corner in left-to-right layouts.
	BottomTrailing
)

// Corners lists the logical corners in priority order.
var Corners = [4]Corner{TopLeading, TopTrailing, BottomLeading, BottomTrailing}

// String returns the kebab-case corner name.
func (c Corner) String() string {
	switch c {
	case TopLeading:
		return "top-leading"
	case TopTrailing:
		return "top-trailing"
	case BottomLeading:
		return "bottom-leading"
	case BottomTrailing:
		return "bottom-trailing"
	default:
		return "unknown"
	}
}

// LayoutDirection is the reading direction that decides which physical
// side "leading" refers to.
type LayoutDirection int

const (
	// LeftToRight is used by Latin, Cyrillic, CJK and most other scripts.
	LeftToRight LayoutDirection = iota
	// RightToLeft is used by Arabic, Hebrew and related scripts.
	RightToLeft
)

// String returns "ltr" or "rtl".
func (d LayoutDirection) String() string {
	if d == RightToLeft {
		return "rtl"
	}
	return "ltr"
}

// Resolve maps a logical corner to the physical corner for dir. The result
// is expressed with leading meaning left and trailing meaning right, so
// right-to-left swaps leading and trailing while top and bottom stay.
func (c Corner) Resolve(dir LayoutDirection) Corner {
	if dir != RightToLeft {
		return c
	}
	switch c {
	case TopLeading:
		return TopTrailing
	case TopTrailing:
		return TopLeading
	case BottomLeading:
		return BottomTrailing
	case BottomTrailing:
		return BottomLeading
	default:
		return c
	}
}

// Point returns the physical corner of r.
func (c Corner) Point(r Rect) Point {
	switch c {
	case TopTrailing:
		return Pt(r.Max.X, r.Min.Y)
	case BottomLeading:
		return Pt(r.Min.X, r.Max.Y)
	case BottomTrailing:
		return r.Max
	default:
		return r.Min
	}
}

// Inward returns the per-axis unit direction from the physical corner
// toward the interior of the box.
func (c Corner) Inward() Vec2 {
	switch c {
	case TopTrailing:
		return V2(-1, 1)
	case BottomLeading:
		return V2(1, -1)
	case BottomTrailing:
		return V2(-1, -1)
	default:
		return V2(1, 1)
	}
}

// inset returns the point t units inside the physical corner on both axes.
func (c Corner) inset(r Rect, t float64) Point {
	return c.Point(r).Offset(c.Inward(), t)
}
