package badge

import (
	"context"
	"log/slog"
	"math"
)

// Strategy names the technique that produced a placement.
type Strategy int

const (
	// StrategyNone means no placement fits.
	StrategyNone Strategy = iota

	// StrategyCorner is the O(1) inset from a rectangle-like bounding box.
	StrategyCorner

	// StrategyRay is the diagonal ray with binary search.
	StrategyRay

	// StrategyWedge is the grid fallback near a corner.
	StrategyWedge
)

// String returns a short name for the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyCorner:
		return "corner"
	case StrategyRay:
		return "ray"
	case StrategyWedge:
		return "wedge"
	default:
		return "none"
	}
}

// Placement is the outcome of placing one badge.
type Placement struct {
	// Point is the badge center. Meaningful only when OK is true.
	Point Point

	// OK is false when no placement fits the shape.
	OK bool

	// Corner is the logical corner the badge was placed at.
	Corner Corner

	// Strategy is the technique that produced Point.
	Strategy Strategy

	// Score is the candidate score when corners were compared, otherwise 0.
	Score float64

	// Class is the outline classification of path shapes.
	Class Classification

	// Evals counts circle-fit evaluations spent on this placement.
	Evals int
}

// Placer places badges of one spec under one configuration.
// A Placer is immutable and safe for concurrent use.
type Placer struct {
	spec BadgeSpec
	cfg  Config
}

// NewPlacer validates the configuration and returns a Placer.
// Invalid values are reported before any search runs.
func NewPlacer(spec BadgeSpec, opts ...Option) (*Placer, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if _, err := NewBadgeSpec(spec.Size(), spec.Padding()); err != nil {
		return nil, err
	}
	return &Placer{spec: spec.orDefault(), cfg: cfg}, nil
}

// Spec returns the badge spec used by the placer.
func (p *Placer) Spec() BadgeSpec { return p.spec }

// Config returns a copy of the placer's configuration.
func (p *Placer) Config() Config { return p.cfg }

// PlaceBadge returns the center for a badge of spec inside shape using the
// default configuration, or false when nothing fits. An invalid spec
// yields false; construct specs with [NewBadgeSpec] to surface the error.
func PlaceBadge(shape Shape, spec BadgeSpec, dir LayoutDirection) (Point, bool) {
	p, err := NewPlacer(spec)
	if err != nil {
		return Point{}, false
	}
	pl := p.Place(shape, dir)
	return pl.Point, pl.OK
}

// Place finds the badge center for shape.
//
// Shapes whose bounding box is narrower or shorter than 2R are rejected at
// once. Rectangles and rectangle-like outlines get the corner inset
// directly. Everything else tries the fast ray on the preferred corner,
// then compares ray or wedge candidates from all four corners.
func (p *Placer) Place(shape Shape, dir LayoutDirection) Placement {
	pl := p.place(shape, dir)

	log := Logger()
	if log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("badge: placed",
			"ok", pl.OK,
			"strategy", pl.Strategy.String(),
			"corner", pl.Corner.String(),
			"x", pl.Point.X,
			"y", pl.Point.Y,
			"score", pl.Score,
			"class", pl.Class.String(),
			"evals", pl.Evals,
		)
	}
	return pl
}

func (p *Placer) place(shape Shape, dir LayoutDirection) Placement {
	cfg := &p.cfg
	r := p.spec.Radius()
	bounds := shape.Bounds()

	if !(bounds.Width() >= 2*r && bounds.Height() >= 2*r) {
		return Placement{}
	}

	primary := TopLeading.Resolve(dir)
	b := shape.Boundary()

	var class Classification
	if shape.IsRect() {
		class = ClassRect
	} else {
		det := DetectShape(b, cfg.CornerRadiusThreshold)
		class = det.Class
		// The inset circle touches only straight edges when it is at least
		// as large as the corner rounding.
		if class == ClassRoundedRect && det.MaxDeviation > r {
			class = ClassUnknown
		}
	}
	if class != ClassUnknown && !cfg.ForceSearch {
		return Placement{
			Point:    cornerAnchor(bounds, primary, r, cfg.Nudge),
			OK:       true,
			Corner:   TopLeading,
			Strategy: StrategyCorner,
			Class:    class,
		}
	}

	s := newSearcher(b, bounds, r, cfg)
	if !cfg.FullScan {
		if pt, ok := s.ray(primary); ok {
			return Placement{
				Point:    pt,
				OK:       true,
				Corner:   TopLeading,
				Strategy: StrategyRay,
				Class:    class,
				Evals:    s.evals,
			}
		}
	}

	cands := make([]candidate, 0, len(Corners))
	for _, logical := range Corners {
		c := logical.Resolve(dir)
		cand := candidate{corner: c, logical: logical, strategy: StrategyRay}
		pt, ok := s.ray(c)
		if !ok {
			cand.strategy = StrategyWedge
			pt, ok = s.wedge(c)
		}
		if !ok {
			continue
		}
		cand.point = pt
		s.score(&cand)
		cands = append(cands, cand)
	}

	top, ok := best(cands)
	if !ok {
		return Placement{Class: class, Evals: s.evals}
	}
	return Placement{
		Point:    top.point,
		OK:       true,
		Corner:   top.logical,
		Strategy: top.strategy,
		Score:    top.score,
		Class:    class,
		Evals:    s.evals,
	}
}

// cornerAnchor insets the physical corner by R plus the nudge on each
// axis, clamped so the circle of radius r never crosses the opposite edge.
func cornerAnchor(bounds Rect, c Corner, r, nudge float64) Point {
	tx := math.Min(r+nudge, bounds.Width()-r)
	ty := math.Min(r+nudge, bounds.Height()-r)
	origin := c.Point(bounds)
	in := c.Inward()
	return Pt(origin.X+in.X*tx, origin.Y+in.Y*ty)
}
