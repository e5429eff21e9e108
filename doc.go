// Package badge places small fixed-size indicator badges inside the visual
// shape of an accessibility element.
//
// # Overview
//
// Accessibility overlays mark every element of a UI snapshot with a numbered
// badge. The badge must sit fully inside the element's shape, which is either
// a plain rectangle or an arbitrary closed path (rounded rectangle, circle,
// irregular outline). Placement favors a predictable corner so overlays look
// consistent, and returns "no placement" rather than a wrong one when the
// shape is too small or oddly shaped.
//
// # Quick Start
//
//	import "github.com/gogpu/badge"
//
//	p := badge.NewPath()
//	p.RoundedRectangle(0, 0, 200, 44, 6)
//
//	pt, ok := badge.PlaceBadge(badge.PathShape(p), badge.DefaultBadgeSpec(), badge.LeftToRight)
//	if ok {
//	    // draw the badge centered at pt
//	}
//
// # Strategies
//
// Placement is tiered:
//   - Rectangles and lightly rounded rectangles are detected by the shape
//     classifier and placed in O(1) from the bounding box.
//   - Other paths are searched per corner: a diagonal ray with binary search
//     first, then a small grid over a wedge near the corner.
//   - When the preferred corner fails, every corner is evaluated and the
//     candidates are scored by proximity to their corner and clearance.
//
// Feasibility is judged by a circle-fit test: a circle of radius
// half-diagonal(badge)+padding centered on the candidate, sampled at its
// center and six points on its circumference.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Concurrency
//
// The engine keeps no shared mutable state. A [Placer] is immutable after
// construction and may be used from many goroutines at once.
package badge

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
