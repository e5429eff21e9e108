package badge

import "math"

// candidate is a feasible anchor found during one placement.
type candidate struct {
	point    Point
	corner   Corner // physical corner the search started from
	logical  Corner
	strategy Strategy
	score    float64
}

// score rates a candidate: closeness to its own corner, normalized by the
// box diagonal so shapes of any size compare, plus ClearanceWeight when a
// circle of ClearanceScale*R also fits.
func (s *searcher) score(c *candidate) {
	diag := math.Max(1, s.bounds.Diagonal())
	proximity := -c.point.Distance(c.corner.Point(s.bounds)) / diag

	clearance := 0.0
	if s.fits(c.point, s.r*s.cfg.ClearanceScale) {
		clearance = 1
	}
	c.score = proximity + s.cfg.ClearanceWeight*clearance
}

// best returns the highest scoring candidate. Candidates arrive in corner
// priority order and only a strictly higher score replaces the current
// best, so ties keep the higher priority corner.
func best(cands []candidate) (candidate, bool) {
	if len(cands) == 0 {
		return candidate{}, false
	}
	top := cands[0]
	for _, c := range cands[1:] {
		if c.score > top.score {
			top = c
		}
	}
	return top, true
}
