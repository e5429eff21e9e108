package badge

import (
	"math"
	"slices"
)

// Classification identifies rectangle-like outlines so placement can skip
// containment sampling entirely.
type Classification int

const (
	// ClassUnknown indicates the outline needs the general search.
	ClassUnknown Classification = iota

	// ClassRect indicates an axis-aligned rectangle.
	ClassRect

	// ClassRoundedRect indicates a rectangle whose corners are rounded by
	// no more than the corner-radius threshold.
	ClassRoundedRect
)

// String returns a short name for the classification.
func (c Classification) String() string {
	switch c {
	case ClassRect:
		return "rect"
	case ClassRoundedRect:
		return "rounded-rect"
	default:
		return "unknown"
	}
}

// DetectedShape holds the outcome of classifying an outline.
type DetectedShape struct {
	Class        Classification
	Vertices     int     // MoveTo and LineTo endpoints seen.
	Curves       int     // Quadratic and cubic segments seen.
	MaxDeviation float64 // Largest control-to-endpoint delta over all curves.
}

// IsRectangleLike reports whether the outline can use corner placement.
func (d DetectedShape) IsRectangleLike() bool {
	return d.Class != ClassUnknown
}

// DefaultCornerRadiusThreshold is the largest curve deviation still treated
// as a rounded rectangle corner.
const DefaultCornerRadiusThreshold = 8.0

// DetectShape classifies the outline of b.
//
// A curve's deviation, the largest axis delta between any of its control
// points and its endpoint, stands in for the corner radius. Only single
// closed subpaths qualify. Without curves the outline is a rectangle when
// its four edges are axis-aligned after rounding to integers and its
// vertices land on four distinct bounding box corners. With curves whose
// deviation stays within threshold it is a rounded rectangle when every
// straight edge runs along a bounding box edge and every curve starts and
// ends within threshold of one bounding box corner, bowing out toward it.
// Anything else is unknown.
func DetectShape(b Boundary, threshold float64) DetectedShape {
	if b == nil {
		return DetectedShape{}
	}

	var shape DetectedShape
	for _, elem := range b.Elements() {
		switch e := elem.(type) {
		case MoveTo, LineTo:
			shape.Vertices++
		case QuadTo:
			shape.Curves++
			shape.MaxDeviation = max(shape.MaxDeviation, deviation(e.Control, e.Point))
		case CubicTo:
			shape.Curves++
			shape.MaxDeviation = max(shape.MaxDeviation, deviation(e.Control1, e.Point), deviation(e.Control2, e.Point))
		}
	}

	edges, ok := outlineEdges(b.Elements())
	if !ok {
		return shape
	}
	bounds := b.BoundingBox()
	switch {
	case shape.Curves == 0:
		if isRectOutline(edges, bounds) {
			shape.Class = ClassRect
		}
	case shape.MaxDeviation <= threshold:
		if isRoundedRectOutline(edges, bounds, threshold) {
			shape.Class = ClassRoundedRect
		}
	}
	return shape
}

// IsRectangleLike reports whether b is a rectangle or a rounded rectangle
// with corner radius at most threshold.
func IsRectangleLike(b Boundary, threshold float64) bool {
	return DetectShape(b, threshold).IsRectangleLike()
}

// deviation is the larger axis delta between a control point and its endpoint.
func deviation(control, end Point) float64 {
	return max(math.Abs(control.X-end.X), math.Abs(control.Y-end.Y))
}

// edgeTolerance is how far a straight edge of a rounded rectangle may sit
// from its bounding box edge.
const edgeTolerance = 0.5

// edge is one segment of an outline. Curved edges keep their ends and
// the point halfway along.
type edge struct {
	from, to, mid Point
	curved        bool
}

// outlineEdges lists the edges of a single closed subpath, adding the
// closing edge of an unclosed one. Zero-length edges are dropped. It
// reports false when the outline has more than one subpath.
func outlineEdges(elems []PathElement) ([]edge, bool) {
	var (
		edges     []edge
		at, start Point
		moves     int
	)
	add := func(to, mid Point, curved bool) {
		if to != at {
			edges = append(edges, edge{from: at, to: to, mid: mid, curved: curved})
		}
		at = to
	}
	line := func(to Point) { add(to, at.Lerp(to, 0.5), false) }
	for _, elem := range elems {
		switch e := elem.(type) {
		case MoveTo:
			if moves++; moves > 1 {
				return nil, false
			}
			at, start = e.Point, e.Point
		case LineTo:
			line(e.Point)
		case QuadTo:
			add(e.Point, NewQuadBez(at, e.Control, e.Point).Eval(0.5), true)
		case CubicTo:
			add(e.Point, NewCubicBez(at, e.Control1, e.Control2, e.Point).Eval(0.5), true)
		case Close:
			line(start)
		}
	}
	line(start)
	return edges, moves == 1
}

// roundPt snaps p to the integer grid.
func roundPt(p Point) Point {
	return Pt(math.Round(p.X), math.Round(p.Y))
}

// boxCorners lists the corners of r clockwise from the minimum.
func boxCorners(r Rect) [4]Point {
	return [4]Point{r.Min, Pt(r.Max.X, r.Min.Y), r.Max, Pt(r.Min.X, r.Max.Y)}
}

// isRectOutline checks that four axis-aligned edges visit four distinct
// corners of bounds, comparing on the integer grid.
func isRectOutline(edges []edge, bounds Rect) bool {
	if len(edges) != 4 {
		return false
	}
	corners := boxCorners(bounds)
	var seen [4]bool
	for _, e := range edges {
		from, to := roundPt(e.from), roundPt(e.to)
		if from.X != to.X && from.Y != to.Y {
			return false
		}
		i := slices.IndexFunc(corners[:], func(c Point) bool { return roundPt(c) == from })
		if i < 0 || seen[i] {
			return false
		}
		seen[i] = true
	}
	return true
}

// isRoundedRectOutline checks that straight edges lie along the sides of
// bounds and curves only cut its corners, bowing out toward them.
func isRoundedRectOutline(edges []edge, bounds Rect, threshold float64) bool {
	corners := boxCorners(bounds)
	for _, e := range edges {
		if e.curved {
			if !slices.ContainsFunc(corners[:], func(c Point) bool {
				return near(e.from, c, threshold) && near(e.to, c, threshold) &&
					e.mid.Distance(c) <= e.from.Lerp(e.to, 0.5).Distance(c)+edgeTolerance
			}) {
				return false
			}
			continue
		}
		if !onSide(e, bounds) {
			return false
		}
	}
	return true
}

// near reports whether a and b are within tol on both axes.
func near(a, b Point, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

// onSide reports whether both ends of e sit on the same side of bounds.
func onSide(e edge, bounds Rect) bool {
	for _, x := range []float64{bounds.Min.X, bounds.Max.X} {
		if math.Abs(e.from.X-x) <= edgeTolerance && math.Abs(e.to.X-x) <= edgeTolerance {
			return true
		}
	}
	for _, y := range []float64{bounds.Min.Y, bounds.Max.Y} {
		if math.Abs(e.from.Y-y) <= edgeTolerance && math.Abs(e.to.Y-y) <= edgeTolerance {
			return true
		}
	}
	return false
}
