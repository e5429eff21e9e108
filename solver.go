package badge

import "math"

// solveQuadratic returns the real roots of a·t² + b·t + c = 0 in ascending
// order. When a is too small for the normalized form it falls back to the
// linear equation.
func solveQuadratic(a, b, c float64) []float64 {
	p, q := b/a, c/a
	if !isFinite(p) || !isFinite(q) {
		return solveLinear(b, c)
	}

	disc := p*p - 4*q
	switch {
	case disc < 0:
		return nil
	case disc == 0:
		return []float64{-p / 2}
	}

	// Take the root that adds magnitudes, then recover the other from the
	// product q, so neither suffers cancellation.
	r1 := -p
	if isFinite(disc) {
		r1 = -(p + math.Copysign(math.Sqrt(disc), p)) / 2
	}
	r2 := q / r1
	if !isFinite(r2) {
		return []float64{r1}
	}
	return []float64{min(r1, r2), max(r1, r2)}
}

// solveLinear returns the root of b·t + c = 0. The identity 0 = 0 reports
// t = 0.
func solveLinear(b, c float64) []float64 {
	if r := -c / b; isFinite(r) {
		return []float64{r}
	}
	if b == 0 && c == 0 {
		return []float64{0}
	}
	return nil
}

// solveQuadraticInUnitInterval keeps the roots that land in [0, 1],
// snapping ones that miss by rounding error onto the interval.
func solveQuadraticInUnitInterval(a, b, c float64) []float64 {
	const slack = 1e-12
	var ts []float64
	for _, t := range solveQuadratic(a, b, c) {
		if t >= -slack && t <= 1+slack {
			ts = append(ts, min(max(t, 0), 1))
		}
	}
	return ts
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
