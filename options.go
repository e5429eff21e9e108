package badge

// ringSamples is the number of circumference points checked by the
// circle-fit test, spaced every 60 degrees starting at 0. Fixed so results
// reproduce across platforms.
const ringSamples = 6

// Config holds the placement tuning values. Every call receives its own
// copy; nothing is read from package state.
type Config struct {
	// CornerRadiusThreshold is the largest curve deviation still classified
	// as a rounded rectangle corner.
	CornerRadiusThreshold float64

	// RayExpansions is how many times the corner ray may double its
	// distance before giving up.
	RayExpansions int

	// BinarySearchSteps is the number of bisections that pull a ray hit
	// back toward its corner.
	BinarySearchSteps int

	// WedgeFraction is the share of the bounding box width and height
	// covered by the fallback grid near each corner.
	WedgeFraction float64

	// WedgeGrid is the number of grid samples per axis in the fallback.
	WedgeGrid int

	// ClearanceScale multiplies R for the clearance bonus check.
	ClearanceScale float64

	// ClearanceWeight is the score bonus for candidates with extra clearance.
	ClearanceWeight float64

	// Nudge moves anchors this far toward the interior so that circle
	// samples do not land exactly on the boundary.
	Nudge float64

	// FillRule is the containment convention of the shapes being placed into.
	FillRule FillRule

	// FullScan evaluates all four corners even when the preferred corner
	// succeeds on the fast ray.
	FullScan bool

	// ForceSearch disables the rectangle fast path.
	ForceSearch bool
}

// DefaultConfig returns the standard placement tuning.
func DefaultConfig() Config {
	return Config{
		CornerRadiusThreshold: DefaultCornerRadiusThreshold,
		RayExpansions:         3,
		BinarySearchSteps:     6,
		WedgeFraction:         0.45,
		WedgeGrid:             4,
		ClearanceScale:        1.25,
		ClearanceWeight:       0.15,
		Nudge:                 0.5,
		FillRule:              FillRuleNonZero,
	}
}

// Validate reports the first unusable value in c.
func (c Config) Validate() error {
	switch {
	case !isFinite(c.CornerRadiusThreshold) || c.CornerRadiusThreshold < 0:
		return configError("CornerRadiusThreshold", c.CornerRadiusThreshold, "must be finite and >= 0")
	case c.RayExpansions < 0:
		return configError("RayExpansions", float64(c.RayExpansions), "must be >= 0")
	case c.BinarySearchSteps < 0:
		return configError("BinarySearchSteps", float64(c.BinarySearchSteps), "must be >= 0")
	case !isFinite(c.WedgeFraction) || c.WedgeFraction <= 0 || c.WedgeFraction > 1:
		return configError("WedgeFraction", c.WedgeFraction, "must be in (0, 1]")
	case c.WedgeGrid < 2:
		return configError("WedgeGrid", float64(c.WedgeGrid), "must be >= 2")
	case !isFinite(c.ClearanceScale) || c.ClearanceScale < 1:
		return configError("ClearanceScale", c.ClearanceScale, "must be finite and >= 1")
	case !isFinite(c.ClearanceWeight) || c.ClearanceWeight < 0:
		return configError("ClearanceWeight", c.ClearanceWeight, "must be finite and >= 0")
	case !isFinite(c.Nudge) || c.Nudge < 0 || c.Nudge >= 1:
		return configError("Nudge", c.Nudge, "must be in [0, 1)")
	case c.FillRule != FillRuleNonZero && c.FillRule != FillRuleEvenOdd:
		return configError("FillRule", float64(c.FillRule), "is not a known rule")
	}
	return nil
}

// Option configures a [Placer] during creation.
//
// Example:
//
//	p, err := badge.NewPlacer(badge.DefaultBadgeSpec(),
//	    badge.WithFillRule(badge.FillRuleEvenOdd),
//	    badge.WithFullScan(),
//	)
type Option func(*Config)

// WithConfig replaces the whole configuration. Later options still apply.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		*c = cfg
	}
}

// WithFillRule sets the containment convention used for path shapes.
func WithFillRule(rule FillRule) Option {
	return func(c *Config) {
		c.FillRule = rule
	}
}

// WithFullScan makes placement score all four corners instead of stopping
// at the first fast ray hit on the preferred corner.
func WithFullScan() Option {
	return func(c *Config) {
		c.FullScan = true
	}
}

// WithForceSearch disables the rectangle fast path so every shape goes
// through the constrained search.
func WithForceSearch() Option {
	return func(c *Config) {
		c.ForceSearch = true
	}
}

// WithCornerRadiusThreshold sets the largest corner radius treated as a
// rounded rectangle.
func WithCornerRadiusThreshold(r float64) Option {
	return func(c *Config) {
		c.CornerRadiusThreshold = r
	}
}

// WithWedge sets the fallback grid coverage and resolution.
func WithWedge(fraction float64, grid int) Option {
	return func(c *Config) {
		c.WedgeFraction = fraction
		c.WedgeGrid = grid
	}
}
