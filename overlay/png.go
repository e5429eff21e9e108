package overlay

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/disintegration/imaging"
	"github.com/gogpu/badge"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/vector"
)

// Palette returns n visually distinct colors, evenly spaced in hue.
func Palette(n int) []colorful.Color {
	cols := make([]colorful.Color, n)
	for i := range n {
		cols[i] = colorful.Hsv(float64(i)*360/float64(max(n, 1)), 0.65, 0.85)
	}
	return cols
}

// Render draws elements and badges into a new image of the given size.
// Outlines are filled translucent under the non-zero rule; badges are
// opaque squares.
func Render(width, height int, spec badge.BadgeSpec, elems []Element, results []Result) (*image.NRGBA, error) {
	if len(elems) != len(results) {
		return nil, fmt.Errorf("overlay: %d elements but %d results", len(elems), len(results))
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("overlay: invalid canvas %dx%d", width, height)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)

	palette := Palette(len(elems))
	half := spec.Size() / 2
	for i, e := range elems {
		r, g, b := palette[i].RGB255()

		fill := color.NRGBA{R: r, G: g, B: b, A: 0x40}
		z := vector.NewRasterizer(width, height)
		badge.FillPath(z, e.Shape.Boundary().Elements(), badge.Identity())
		z.Draw(dst, dst.Bounds(), image.NewUniform(fill), image.Point{})

		pl := results[i].Placement
		if !pl.OK {
			continue
		}
		sq := badge.NewPath()
		sq.Rectangle(pl.Point.X-half, pl.Point.Y-half, spec.Size(), spec.Size())
		z = vector.NewRasterizer(width, height)
		badge.FillPath(z, sq.Elements(), badge.Identity())
		z.Draw(dst, dst.Bounds(), image.NewUniform(color.NRGBA{R: r, G: g, B: b, A: 0xff}), image.Point{})
	}
	return dst, nil
}

// WritePNG encodes a rendered overlay as PNG. A positive maxWidth
// downscales wider images, keeping the aspect ratio.
func WritePNG(w io.Writer, img image.Image, maxWidth int) error {
	if maxWidth > 0 && img.Bounds().Dx() > maxWidth {
		img = imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	}
	if err := imaging.Encode(w, img, imaging.PNG); err != nil {
		return fmt.Errorf("overlay: encode png: %w", err)
	}
	return nil
}
