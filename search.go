package badge

// searcher runs the constrained corner search over one boundary. It is
// created per placement and never shared.
type searcher struct {
	b      Boundary
	bounds Rect
	r      float64
	cfg    *Config
	evals  int
}

func newSearcher(b Boundary, bounds Rect, r float64, cfg *Config) *searcher {
	return &searcher{b: b, bounds: bounds, r: r, cfg: cfg}
}

// fits runs the circle-fit test for a radius.
func (s *searcher) fits(center Point, r float64) bool {
	s.evals++
	return circleFits(s.b, s.bounds, center, r, s.cfg.FillRule)
}

// ray walks from the physical corner toward the interior along the
// diagonal. Distances are per-axis insets, so t = R+Nudge is the first
// position where the circle can clear both edges of the box.
//
// The first candidate returns immediately on success. Otherwise the distance
// doubles up to RayExpansions times, bounded by the box diagonal, until a
// fitting point is bracketed; BinarySearchSteps bisections then pull it
// back toward the corner while keeping the fitting end.
func (s *searcher) ray(c Corner) (Point, bool) {
	start := s.r + s.cfg.Nudge
	if p := c.inset(s.bounds, start); s.fits(p, s.r) {
		return p, true
	}

	maxT := s.bounds.Diagonal()
	lo, hi := start, 2*start
	found := false
	for range s.cfg.RayExpansions {
		if hi > maxT {
			return Point{}, false
		}
		if s.fits(c.inset(s.bounds, hi), s.r) {
			found = true
			break
		}
		lo = hi
		hi *= 2
	}
	if !found {
		return Point{}, false
	}

	for range s.cfg.BinarySearchSteps {
		mid := (lo + hi) * 0.5
		if s.fits(c.inset(s.bounds, mid), s.r) {
			hi = mid
		} else {
			lo = mid
		}
	}
	return c.inset(s.bounds, hi), true
}

// wedge samples a WedgeGrid x WedgeGrid grid over the sub-rectangle that
// covers WedgeFraction of the box on each axis, anchored at the physical
// corner. Rows and columns are visited outward from the corner and the
// first fitting sample wins.
func (s *searcher) wedge(c Corner) (Point, bool) {
	w := s.bounds.Width() * s.cfg.WedgeFraction
	h := s.bounds.Height() * s.cfg.WedgeFraction
	origin := c.Point(s.bounds)
	dir := c.Inward()
	steps := float64(s.cfg.WedgeGrid - 1)

	for iy := range s.cfg.WedgeGrid {
		y := origin.Y + dir.Y*h*float64(iy)/steps
		for ix := range s.cfg.WedgeGrid {
			p := Pt(origin.X+dir.X*w*float64(ix)/steps, y)
			if s.fits(p, s.r) {
				return p, true
			}
		}
	}
	return Point{}, false
}
