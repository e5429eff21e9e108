package overlay

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/gogpu/badge"
)

// PathData formats an outline as SVG path data.
func PathData(elems []badge.PathElement) string {
	var b strings.Builder
	num := func(v float64) string {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	pt := func(p badge.Point) {
		b.WriteString(num(p.X))
		b.WriteByte(' ')
		b.WriteString(num(p.Y))
	}
	for i, elem := range elems {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch e := elem.(type) {
		case badge.MoveTo:
			b.WriteString("M")
			pt(e.Point)
		case badge.LineTo:
			b.WriteString("L")
			pt(e.Point)
		case badge.QuadTo:
			b.WriteString("Q")
			pt(e.Control)
			b.WriteByte(' ')
			pt(e.Point)
		case badge.CubicTo:
			b.WriteString("C")
			pt(e.Control1)
			b.WriteByte(' ')
			pt(e.Control2)
			b.WriteByte(' ')
			pt(e.Point)
		case badge.Close:
			b.WriteString("Z")
		}
	}
	return b.String()
}

// WriteSVG renders elements and their badges as an SVG document of the
// given size. Each element is a group holding its outline and, when
// placed, the badge square and the clearance circle of radius R.
func WriteSVG(w io.Writer, width, height int, spec badge.BadgeSpec, elems []Element, results []Result) error {
	if len(elems) != len(results) {
		return fmt.Errorf("overlay: %d elements but %d results", len(elems), len(results))
	}

	palette := Palette(len(elems))
	half := spec.Size() / 2
	size := iround(spec.Size())
	r := iround(spec.Radius())

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:white")
	for i, e := range elems {
		col := palette[i].Hex()
		canvas.Gid(e.ID)
		canvas.Path(PathData(e.Shape.Boundary().Elements()),
			fmt.Sprintf("fill:%s;fill-opacity:0.15;stroke:%s;stroke-width:1", col, col))

		pl := results[i].Placement
		if pl.OK {
			cx, cy := pl.Point.X, pl.Point.Y
			canvas.Circle(iround(cx), iround(cy), r,
				fmt.Sprintf("fill:none;stroke:%s;stroke-dasharray:2,2", col))
			canvas.Rect(iround(cx-half), iround(cy-half), size, size,
				fmt.Sprintf("fill:%s", col))
			canvas.Text(iround(cx), iround(cy+half/2), strconv.Itoa(i+1),
				fmt.Sprintf("fill:white;font-size:%dpx;text-anchor:middle", max(size-2, 1)))
		}
		canvas.Gend()
	}
	canvas.End()
	return nil
}

func iround(v float64) int {
	return int(math.Round(v))
}
