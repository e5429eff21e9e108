package badge

// Boundary is a closed region the engine can query.
//
// The engine treats containment as a black box: any implementation that
// reports a bounding box, answers point-in-region queries and exposes its
// outline elements can be placed into. [*Path] and [*RasterBoundary]
// implement it; tests can supply synthetic regions.
type Boundary interface {
	// BoundingBox returns the axis-aligned bounds of the region.
	BoundingBox() Rect

	// ContainsPoint reports whether pt lies inside the region under rule.
	ContainsPoint(pt Point, rule FillRule) bool

	// Elements returns the outline used for shape classification.
	// Implementations without an outline may return nil.
	Elements() []PathElement
}

// ShapeKind identifies which variant a [Shape] holds.
type ShapeKind int

const (
	// ShapeKindRect is a plain axis-aligned rectangle.
	ShapeKindRect ShapeKind = iota

	// ShapeKindPath is an arbitrary closed boundary.
	ShapeKindPath
)

// Shape is the region a badge is placed into: either a rectangle or an
// arbitrary boundary. The zero value is an empty rectangle.
type Shape struct {
	kind     ShapeKind
	rect     Rect
	boundary Boundary
}

// RectShape returns a shape for an axis-aligned rectangle.
func RectShape(r Rect) Shape {
	return Shape{kind: ShapeKindRect, rect: r}
}

// PathShape returns a shape backed by an arbitrary boundary.
// A nil boundary yields an empty rectangle shape.
func PathShape(b Boundary) Shape {
	if b == nil {
		return Shape{}
	}
	return Shape{kind: ShapeKindPath, rect: b.BoundingBox(), boundary: b}
}

// Kind returns the variant held by the shape.
func (s Shape) Kind() ShapeKind { return s.kind }

// IsRect reports whether the shape is a plain rectangle.
func (s Shape) IsRect() bool { return s.kind == ShapeKindRect }

// Bounds returns the shape's bounding box.
func (s Shape) Bounds() Rect { return s.rect }

// Boundary returns the region backing the shape. A rectangle shape returns
// an equivalent rectangular boundary.
func (s Shape) Boundary() Boundary {
	if s.kind == ShapeKindPath {
		return s.boundary
	}
	return rectBoundary{r: s.rect}
}

// rectBoundary exposes a Rect through the Boundary interface.
type rectBoundary struct {
	r Rect
}

func (b rectBoundary) BoundingBox() Rect { return b.r }

// ContainsPoint treats edges as inside; fill rules agree on a rectangle.
func (b rectBoundary) ContainsPoint(pt Point, _ FillRule) bool {
	return b.r.Contains(pt)
}

func (b rectBoundary) Elements() []PathElement {
	return []PathElement{
		MoveTo{Point: b.r.Min},
		LineTo{Point: Pt(b.r.Max.X, b.r.Min.Y)},
		LineTo{Point: b.r.Max},
		LineTo{Point: Pt(b.r.Min.X, b.r.Max.Y)},
		Close{},
	}
}
