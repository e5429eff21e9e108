// Package svgimport converts SVG outlines into badge paths.
//
// Snapshot exporters commonly describe non-rectangular elements as SVG:
// either a complete document or just the "d" attribute of a path. Both are
// parsed with oksvg; the compiled rasterx commands are replayed into a
// [badge.Path] with each path's transform applied, so the result lives in
// the document's user space.
package svgimport

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"strings"

	"github.com/gogpu/badge"
	"github.com/gogpu/badge/internal/cache"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// ErrNoPaths is returned when a document contains no drawable outline.
var ErrNoPaths = errors.New("svgimport: no paths")

// Outline is one drawable path of an SVG document.
type Outline struct {
	// Index is the position of the path in document order.
	Index int

	// Path is the outline in user space.
	Path *badge.Path

	// FillRule is the path's fill-rule attribute.
	FillRule badge.FillRule
}

// Shape wraps the outline as a placement shape. Containment always uses
// the outline's own fill rule, whatever rule the placer is configured with.
func (o Outline) Shape() badge.Shape {
	return badge.PathShape(ruledPath{Path: o.Path, rule: o.FillRule})
}

// ruledPath pins the fill rule of a path.
type ruledPath struct {
	*badge.Path
	rule badge.FillRule
}

func (r ruledPath) ContainsPoint(pt badge.Point, _ badge.FillRule) bool {
	return r.Path.ContainsPoint(pt, r.rule)
}

// compiled holds parsed path data; scenes repeat the same outlines often.
var compiled = cache.New[string, *badge.Path](512)

// ParsePathData compiles SVG path data such as "M0 0 H100 V40 Z".
// The returned path is owned by the caller.
func ParsePathData(d string) (*badge.Path, error) {
	p, err := compiled.GetOrCreate(d, func() (*badge.Path, error) {
		return compilePathData(d)
	})
	if err != nil {
		return nil, err
	}
	return p.Clone(), nil
}

func compilePathData(d string) (*badge.Path, error) {
	var c oksvg.PathCursor
	if err := c.CompilePath(d); err != nil {
		return nil, fmt.Errorf("svgimport: path data: %w", err)
	}
	p := convert(c.Path, rasterx.Identity)
	if p.IsEmpty() {
		return nil, ErrNoPaths
	}
	return p, nil
}

// Read parses an SVG document and returns every non-empty path.
// Unsupported elements are skipped rather than rejected.
func Read(r io.Reader) ([]Outline, error) {
	icon, err := oksvg.ReadIconStream(r, oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("svgimport: parse: %w", err)
	}

	var outlines []Outline
	for i, sp := range icon.SVGPaths {
		p := convert(sp.Path, transformOf(sp))
		if p.IsEmpty() {
			badge.Logger().Warn("svgimport: skipping empty path", "index", i)
			continue
		}
		rule := badge.FillRuleEvenOdd
		if sp.UseNonZeroWinding {
			rule = badge.FillRuleNonZero
		}
		outlines = append(outlines, Outline{Index: i, Path: p, FillRule: rule})
	}
	if len(outlines) == 0 {
		return nil, ErrNoPaths
	}
	return outlines, nil
}

// ReadString is Read over an in-memory document.
func ReadString(doc string) ([]Outline, error) {
	return Read(strings.NewReader(doc))
}

// transformOf recovers the user-space transform of sp. oksvg keeps it
// private and applies it only while drawing, so a right angle of side
// span is drawn through the path's own style and its transformed
// corners are read back from a recording scanner. The readback has the
// same 1/64 resolution as the compiled path.
func transformOf(sp oksvg.SvgPath) rasterx.Matrix2D {
	const span = 1024

	var corner rasterx.Path
	corner.Start(fixed.Point26_6{})
	corner.Line(fixed.Point26_6{X: span * 64})
	corner.Line(fixed.Point26_6{Y: span * 64})
	corner.Stop(false)

	sp.Path = corner
	sp.SetFillColor(color.Black)
	sp.SetLineColor(nil)
	var rec recorder
	sp.DrawTransformed(rasterx.NewDasher(1, 1, &rec), 1, rasterx.Identity)

	o, x, y := rec.pts[0], rec.pts[1], rec.pts[2]
	return rasterx.Matrix2D{
		A: (x.X - o.X) / span, B: (x.Y - o.Y) / span,
		C: (y.X - o.X) / span, D: (y.Y - o.Y) / span,
		E: o.X, F: o.Y,
	}
}

// recorder is a rasterx.Scanner that keeps the points it is fed.
type recorder struct {
	pts []badge.Point
}

var _ rasterx.Scanner = (*recorder)(nil)

func (r *recorder) Start(a fixed.Point26_6) { r.Line(a) }
func (r *recorder) Line(b fixed.Point26_6) {
	r.pts = append(r.pts, badge.Pt(float64(b.X)/64, float64(b.Y)/64))
}
func (r *recorder) Clear()                             { r.pts = r.pts[:0] }
func (r *recorder) Draw()                              {}
func (r *recorder) GetPathExtent() fixed.Rectangle26_6 { return fixed.Rectangle26_6{} }
func (r *recorder) SetBounds(int, int)                 {}
func (r *recorder) SetColor(interface{})               {}
func (r *recorder) SetWinding(bool)                    {}
func (r *recorder) SetClip(image.Rectangle)            {}

// convert replays compiled rasterx commands into a badge path.
func convert(rp rasterx.Path, m rasterx.Matrix2D) *badge.Path {
	a := &pathAdder{path: badge.NewPath(), m: m}
	rp.AddTo(a)
	return a.path
}

// pathAdder implements rasterx.Adder on top of a badge.Path.
type pathAdder struct {
	path *badge.Path
	m    rasterx.Matrix2D
	open bool
}

var _ rasterx.Adder = (*pathAdder)(nil)

func (a *pathAdder) point(p fixed.Point26_6) (float64, float64) {
	return a.m.Transform(float64(p.X)/64, float64(p.Y)/64)
}

func (a *pathAdder) Start(p fixed.Point26_6) {
	if a.open {
		a.path.Close()
	}
	a.path.MoveTo(a.point(p))
	a.open = true
}

func (a *pathAdder) Line(b fixed.Point26_6) {
	a.path.LineTo(a.point(b))
}

func (a *pathAdder) QuadBezier(b, c fixed.Point26_6) {
	bx, by := a.point(b)
	cx, cy := a.point(c)
	a.path.QuadraticTo(bx, by, cx, cy)
}

func (a *pathAdder) CubeBezier(b, c, d fixed.Point26_6) {
	bx, by := a.point(b)
	cx, cy := a.point(c)
	dx, dy := a.point(d)
	a.path.CubicTo(bx, by, cx, cy, dx, dy)
}

// Stop ends the current subpath. Open subpaths are left open; containment
// closes them implicitly.
func (a *pathAdder) Stop(closeLoop bool) {
	if closeLoop && a.open {
		a.path.Close()
	}
	a.open = false
}
