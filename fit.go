package badge

import "math"

// ringOffsets are the unit offsets of the circumference samples, one every
// 60 degrees starting at 0.
var ringOffsets = func() [ringSamples]Vec2 {
	var offsets [ringSamples]Vec2
	for i := range offsets {
		sin, cos := math.Sincos(float64(i) * 2 * math.Pi / ringSamples)
		offsets[i] = V2(cos, sin)
	}
	return offsets
}()

// CircleFits reports whether a circle of radius r centered at center lies
// inside b under rule.
//
// The test is an approximation: the circle's enclosing square must stay in
// the bounding box, and the center plus six points on the circumference
// must be inside. Sharp concavities narrower than the gaps between samples
// can slip through.
func CircleFits(b Boundary, center Point, r float64, rule FillRule) bool {
	if b == nil || !center.IsFinite() {
		return false
	}
	return circleFits(b, b.BoundingBox(), center, r, rule)
}

// circleFits is CircleFits with the bounding box supplied by the caller so
// searches do not recompute it per evaluation.
func circleFits(b Boundary, bounds Rect, center Point, r float64, rule FillRule) bool {
	if center.X-r < bounds.Min.X || center.X+r > bounds.Max.X ||
		center.Y-r < bounds.Min.Y || center.Y+r > bounds.Max.Y {
		return false
	}

	if !b.ContainsPoint(center, rule) {
		return false
	}

	for _, off := range ringOffsets {
		if !b.ContainsPoint(center.Offset(off, r), rule) {
			return false
		}
	}
	return true
}
