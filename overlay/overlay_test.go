package overlay

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"image/png"
	"strings"
	"testing"

	"github.com/gogpu/badge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOverlay(t *testing.T, opts ...badge.Option) *Overlay {
	t.Helper()
	placer, err := badge.NewPlacer(badge.DefaultBadgeSpec(), opts...)
	require.NoError(t, err)
	o, err := New(placer, WithWorkers(3))
	require.NoError(t, err)
	t.Cleanup(o.Close)
	return o
}

func snapshot() []Element {
	circle := badge.NewPath()
	circle.Circle(250, 50, 40)

	tiny := badge.NewPath()
	tiny.Circle(400, 20, 5)

	return []Element{
		{ID: "button", Shape: badge.RectShape(badge.XYWH(0, 0, 200, 40)), Direction: badge.LeftToRight},
		{ID: "avatar", Shape: badge.PathShape(circle), Direction: badge.LeftToRight},
		{ID: "dot", Shape: badge.PathShape(tiny), Direction: badge.LeftToRight},
		{ID: "label", Shape: badge.RectShape(badge.XYWH(0, 60, 200, 40)), Direction: badge.RightToLeft},
	}
}

func TestNewRejectsNilPlacer(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)
}

func TestPlaceKeepsOrder(t *testing.T) {
	o := newOverlay(t)
	elems := snapshot()

	results, err := o.Place(context.Background(), elems)
	require.NoError(t, err)
	require.Len(t, results, len(elems))

	placer, err := badge.NewPlacer(badge.DefaultBadgeSpec())
	require.NoError(t, err)
	for i, e := range elems {
		assert.Equal(t, e.ID, results[i].ID)
		assert.Equal(t, placer.Place(e.Shape, e.Direction), results[i].Placement, e.ID)
	}

	r := badge.DefaultBadgeSpec().Radius()
	assert.InDelta(t, 200-r-0.5, results[3].Placement.Point.X, 1e-9)
	assert.False(t, results[2].Placement.OK)
}

func TestPlaceManyElements(t *testing.T) {
	o := newOverlay(t)

	elems := make([]Element, 200)
	for i := range elems {
		elems[i] = Element{
			ID:    fmt.Sprintf("e%d", i),
			Shape: badge.RectShape(badge.XYWH(float64(i), 0, 100, 50)),
		}
	}
	results, err := o.Place(context.Background(), elems)
	require.NoError(t, err)
	for i, res := range results {
		require.True(t, res.Placement.OK)
		assert.Greater(t, res.Placement.Point.X, float64(i))
	}
}

func TestPlaceCanceled(t *testing.T) {
	o := newOverlay(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := o.Place(ctx, snapshot())
	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, results, 4)
	assert.Equal(t, "button", results[0].ID)
}

func TestSummarize(t *testing.T) {
	results := []Result{
		{ID: "a", Placement: badge.Placement{OK: true, Strategy: badge.StrategyCorner}},
		{ID: "b", Placement: badge.Placement{OK: true, Strategy: badge.StrategyRay, Evals: 12}},
		{ID: "c", Placement: badge.Placement{Evals: 30}},
		{ID: "d", Placement: badge.Placement{OK: true, Strategy: badge.StrategyCorner}},
	}

	s := Summarize(results)
	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 3, s.Placed)
	assert.Equal(t, []string{"c"}, s.Unplaced)
	assert.Equal(t, map[string]int{"corner": 2, "ray": 1, "none": 1}, s.ByStrategy)
	assert.Equal(t, 42, s.Evals)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.Total)
	assert.Empty(t, s.Unplaced)
}

func TestPathData(t *testing.T) {
	p := badge.NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10.5, 0)
	p.QuadraticTo(20, 0, 20, 10)
	p.CubicTo(20, 20, 10, 20, 0, 20)
	p.Close()

	assert.Equal(t, "M0 0 L10.5 0 Q20 0 20 10 C20 20 10 20 0 20 Z", PathData(p.Elements()))
	assert.Empty(t, PathData(nil))
}

func TestWriteSVG(t *testing.T) {
	o := newOverlay(t)
	elems := snapshot()
	results, err := o.Place(context.Background(), elems)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, 500, 120, o.Spec(), elems, results))

	out := buf.String()
	require.NoError(t, xml.Unmarshal(buf.Bytes(), new(any)), "document must be well-formed")
	for _, e := range elems {
		assert.Contains(t, out, `id="`+e.ID+`"`)
	}
	// Three placed badges, each with a clearance circle.
	assert.Equal(t, 3, strings.Count(out, "<circle"))
	assert.Equal(t, 4, strings.Count(out, "<path"))
}

func TestWriteSVGMismatch(t *testing.T) {
	var buf bytes.Buffer
	err := WriteSVG(&buf, 10, 10, badge.DefaultBadgeSpec(), snapshot(), nil)
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestRender(t *testing.T) {
	o := newOverlay(t)
	elems := snapshot()[:1]
	results, err := o.Place(context.Background(), elems)
	require.NoError(t, err)

	img, err := Render(220, 60, o.Spec(), elems, results)
	require.NoError(t, err)

	// Badge centers are opaque, untouched background stays white.
	pt := results[0].Placement.Point
	c := img.NRGBAAt(int(pt.X), int(pt.Y))
	assert.Equal(t, uint8(0xff), c.A)
	assert.NotEqual(t, [3]uint8{0xff, 0xff, 0xff}, [3]uint8{c.R, c.G, c.B})

	bg := img.NRGBAAt(215, 55)
	assert.Equal(t, [4]uint8{0xff, 0xff, 0xff, 0xff}, [4]uint8{bg.R, bg.G, bg.B, bg.A})
}

func TestRenderInvalidCanvas(t *testing.T) {
	_, err := Render(0, 10, badge.DefaultBadgeSpec(), nil, nil)
	assert.Error(t, err)
}

func TestWritePNG(t *testing.T) {
	img, err := Render(400, 100, badge.DefaultBadgeSpec(), nil, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, img, 200))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 200, decoded.Bounds().Dx())
	assert.Equal(t, 50, decoded.Bounds().Dy())
}

func TestPalette(t *testing.T) {
	cols := Palette(6)
	require.Len(t, cols, 6)
	seen := map[string]bool{}
	for _, c := range cols {
		seen[c.Hex()] = true
	}
	assert.Len(t, seen, 6)
	assert.Empty(t, Palette(0))
}
