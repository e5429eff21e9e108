package badge

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"
)

// Mask is an 8-bit coverage grid anchored at the origin; 255 is fully
// covered.
type Mask struct {
	img *image.Alpha
}

// NewMask returns a zeroed width by height mask.
func NewMask(width, height int) *Mask {
	return &Mask{img: image.NewAlpha(image.Rect(0, 0, width, height))}
}

// NewMaskFromAlpha copies img into a mask, shifting its bounds to the
// origin.
func NewMaskFromAlpha(img *image.Alpha) *Mask {
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for y := range b.Dy() {
		copy(m.img.Pix[y*m.img.Stride:], img.Pix[y*img.Stride:y*img.Stride+b.Dx()])
	}
	return m
}

// Bounds returns the pixel rectangle covered by the mask.
func (m *Mask) Bounds() image.Rectangle { return m.img.Rect }

// Width returns the mask width in pixels.
func (m *Mask) Width() int { return m.img.Rect.Dx() }

// Height returns the mask height in pixels.
func (m *Mask) Height() int { return m.img.Rect.Dy() }

// At is zero outside the mask.
func (m *Mask) At(x, y int) uint8 {
	return m.img.AlphaAt(x, y).A
}

// Set ignores writes outside the mask.
func (m *Mask) Set(x, y int, v uint8) {
	m.img.SetAlpha(x, y, color.Alpha{A: v})
}

// Data exposes the row-major coverage bytes.
func (m *Mask) Data() []uint8 { return m.img.Pix }

// maxRasterPixels bounds the mask size of a RasterBoundary.
const maxRasterPixels = 4096 * 4096

// RasterBoundary answers containment from a rasterized coverage mask, the
// way the snapshot renderer paints the element, instead of from exact
// geometry. A point is inside when its pixel is at least half covered.
//
// The rasterizer accumulates non-zero winding; even-odd queries are
// answered from the source path.
type RasterBoundary struct {
	path   *Path
	bounds Rect
	origin Point
	scale  float64
	mask   *Mask
}

// NewRasterBoundary rasterizes p at scale pixels per unit.
func NewRasterBoundary(p *Path, scale float64) (*RasterBoundary, error) {
	if p == nil || p.IsEmpty() {
		return nil, ErrEmptyBoundary
	}
	if !isFinite(scale) || scale <= 0 {
		return nil, configError("scale", scale, "must be finite and > 0")
	}

	bounds := p.BoundingBox()
	origin := Pt(math.Floor(bounds.Min.X), math.Floor(bounds.Min.Y))
	w := int(math.Ceil((bounds.Max.X-origin.X)*scale)) + 1
	h := int(math.Ceil((bounds.Max.Y-origin.Y)*scale)) + 1
	if w <= 0 || h <= 0 || w*h > maxRasterPixels {
		return nil, fmt.Errorf("%w: %dx%d pixels", ErrRasterTooLarge, w, h)
	}

	rb := &RasterBoundary{path: p, bounds: bounds, origin: origin, scale: scale}
	rb.mask = rb.rasterize(w, h)
	return rb, nil
}

// rasterize fills the path into a fresh coverage mask.
func (rb *RasterBoundary) rasterize(w, h int) *Mask {
	z := vector.NewRasterizer(w, h)
	FillPath(z, rb.path.Elements(), Scale(rb.scale, rb.scale).Multiply(Translate(-rb.origin.X, -rb.origin.Y)))

	m := NewMask(w, h)
	z.Draw(m.img, m.Bounds(), image.Opaque, image.Point{})
	return m
}

// FillPath adds an outline, transformed by m, to z. Open subpaths are
// closed the way a fill closes them. The rasterizer accumulates non-zero
// winding.
func FillPath(z *vector.Rasterizer, elems []PathElement, m Matrix) {
	tf := func(pt Point) (float32, float32) {
		pt = m.TransformPoint(pt)
		return float32(pt.X), float32(pt.Y)
	}

	open := false
	for _, elem := range elems {
		switch e := elem.(type) {
		case MoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(tf(e.Point))
			open = true
		case LineTo:
			z.LineTo(tf(e.Point))
		case QuadTo:
			cx, cy := tf(e.Control)
			x, y := tf(e.Point)
			z.QuadTo(cx, cy, x, y)
		case CubicTo:
			c1x, c1y := tf(e.Control1)
			c2x, c2y := tf(e.Control2)
			x, y := tf(e.Point)
			z.CubeTo(c1x, c1y, c2x, c2y, x, y)
		case Close:
			z.ClosePath()
			open = false
		}
	}
	if open {
		z.ClosePath()
	}
}

// Mask returns the coverage mask.
func (rb *RasterBoundary) Mask() *Mask { return rb.mask }

// BoundingBox returns the bounds of the source path.
func (rb *RasterBoundary) BoundingBox() Rect { return rb.bounds }

// Elements returns the source path's outline.
func (rb *RasterBoundary) Elements() []PathElement { return rb.path.Elements() }

// ContainsPoint reports whether the pixel under pt is at least half covered.
func (rb *RasterBoundary) ContainsPoint(pt Point, rule FillRule) bool {
	if rule == FillRuleEvenOdd {
		return rb.path.ContainsPoint(pt, rule)
	}
	if !rb.bounds.Contains(pt) {
		return false
	}
	x := int(math.Floor((pt.X - rb.origin.X) * rb.scale))
	y := int(math.Floor((pt.Y - rb.origin.Y) * rb.scale))
	return rb.mask.At(x, y) >= 128
}
