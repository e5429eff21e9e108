package badge

import "math"

// Default badge dimensions.
const (
	DefaultBadgeSize    = 16.0
	DefaultBadgePadding = 2.0
)

// BadgeSpec describes the badge being placed: the side length of its
// square footprint and the minimum padding kept from the shape boundary.
//
// The zero value stands for [DefaultBadgeSpec].
type BadgeSpec struct {
	size    float64
	padding float64
}

// NewBadgeSpec validates and returns a badge spec.
// The size must be positive and the padding non-negative; both must be finite.
func NewBadgeSpec(size, padding float64) (BadgeSpec, error) {
	switch {
	case !isFinite(size):
		return BadgeSpec{}, specError("size", size, "must be finite")
	case size <= 0:
		return BadgeSpec{}, specError("size", size, "must be > 0")
	case !isFinite(padding):
		return BadgeSpec{}, specError("padding", padding, "must be finite")
	case padding < 0:
		return BadgeSpec{}, specError("padding", padding, "must be >= 0")
	}
	return BadgeSpec{size: size, padding: padding}, nil
}

// DefaultBadgeSpec returns a 16 unit badge with 2 units of padding.
func DefaultBadgeSpec() BadgeSpec {
	return BadgeSpec{size: DefaultBadgeSize, padding: DefaultBadgePadding}
}

// IsZero reports whether s is the zero value.
func (s BadgeSpec) IsZero() bool {
	return s.size == 0 && s.padding == 0
}

func (s BadgeSpec) orDefault() BadgeSpec {
	if s.IsZero() {
		return DefaultBadgeSpec()
	}
	return s
}

// Size returns the badge side length.
func (s BadgeSpec) Size() float64 { return s.orDefault().size }

// Padding returns the minimum distance kept from the boundary.
func (s BadgeSpec) Padding() float64 { return s.orDefault().padding }

// HalfDiagonal returns the radius of the circle circumscribing the badge.
func (s BadgeSpec) HalfDiagonal() float64 {
	return s.Size() * math.Sqrt2 / 2
}

// Radius returns the effective clearance radius R: the circumscribed
// circle grown by the padding. A badge centered at an anchor fits when a
// circle of this radius fits.
func (s BadgeSpec) Radius() float64 {
	return s.HalfDiagonal() + s.Padding()
}
