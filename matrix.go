package badge

// Matrix is a 2D affine transform mapping (x, y) to
// (A*x + B*y + C, D*x + E*y + F).
//
// Placement only needs a handful of transforms: moving a shape into raster
// space and mirroring it for right-to-left checks.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the transform that leaves points unchanged.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate returns a shift by (x, y).
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Scale returns an axis-aligned scale.
func Scale(sx, sy float64) Matrix {
	return Matrix{A: sx, E: sy}
}

// MirrorX returns the reflection across the vertical line x = axis.
// Leading and trailing corners swap under it; top and bottom do not.
func MirrorX(axis float64) Matrix {
	return Matrix{A: -1, C: 2 * axis, E: 1}
}

// Multiply returns the composition m ∘ n: n is applied first.
func (m Matrix) Multiply(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.B*n.D,
		B: m.A*n.B + m.B*n.E,
		C: m.A*n.C + m.B*n.F + m.C,
		D: m.D*n.A + m.E*n.D,
		E: m.D*n.B + m.E*n.E,
		F: m.D*n.C + m.E*n.F + m.F,
	}
}

// TransformPoint maps p through m.
func (m Matrix) TransformPoint(p Point) Point {
	return Pt(m.A*p.X+m.B*p.Y+m.C, m.D*p.X+m.E*p.Y+m.F)
}

// IsIdentity reports whether m is exactly the identity.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}
