package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/badge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const sceneYAML = `width: 400
height: 200
badge: {size: 16, padding: 2}
locale: en
elements:
  - id: ok-button
    rect: [10, 10, 120, 40]
  - id: avatar
    path: "M200 10 h60 v60 h-60 z"
    direction: rtl
  - id: greeting
    rect: [10, 100, 200, 40]
    text: "שלום"
  - id: dot
    rect: [300, 10, 8, 8]
`

func writeScene(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func defaultFlags() placeFlags {
	return placeFlags{padding: -1}
}

func decodeReport(t *testing.T, out []byte) report {
	t.Helper()
	var rep report
	require.NoError(t, yaml.Unmarshal(out, &rep))
	return rep
}

func TestDecodeScene(t *testing.T) {
	s, err := DecodeScene(strings.NewReader(sceneYAML))
	require.NoError(t, err)

	assert.Equal(t, 400, s.Width)
	require.NotNil(t, s.Badge)
	assert.Equal(t, 16.0, s.Badge.Size)
	require.Len(t, s.Elements, 4)
	assert.Equal(t, []float64{10, 10, 120, 40}, s.Elements[0].Rect)

	_, err = DecodeScene(strings.NewReader("width: 10\nbogus: 1\n"))
	assert.Error(t, err, "unknown keys are rejected")
}

func TestSceneBuildElements(t *testing.T) {
	s, err := DecodeScene(strings.NewReader(sceneYAML))
	require.NoError(t, err)

	elems, err := s.BuildElements()
	require.NoError(t, err)
	require.Len(t, elems, 4)

	assert.True(t, elems[0].Shape.IsRect())
	assert.Equal(t, badge.LeftToRight, elems[0].Direction)
	assert.False(t, elems[1].Shape.IsRect())
	assert.Equal(t, badge.RightToLeft, elems[1].Direction)
	assert.Equal(t, badge.RightToLeft, elems[2].Direction, "direction follows Hebrew text")
}

func TestSceneDirectionFromLocale(t *testing.T) {
	s := &Scene{Locale: "ar-EG", Elements: []ElementConf{{Rect: []float64{0, 0, 50, 50}}}}
	elems, err := s.BuildElements()
	require.NoError(t, err)
	assert.Equal(t, badge.RightToLeft, elems[0].Direction)
	assert.Equal(t, "element-1", elems[0].ID)
}

func TestSceneBuildElementsErrors(t *testing.T) {
	tests := []struct {
		name  string
		scene Scene
		want  string
	}{
		{"rect and path", Scene{Elements: []ElementConf{{ID: "x", Rect: []float64{0, 0, 1, 1}, Path: "M0 0"}}}, "exclusive"},
		{"short rect", Scene{Elements: []ElementConf{{ID: "x", Rect: []float64{0, 0, 1}}}}, "[x, y, w, h]"},
		{"no geometry", Scene{Elements: []ElementConf{{ID: "x"}}}, "needs rect or path"},
		{"bad element direction", Scene{Elements: []ElementConf{{ID: "x", Rect: []float64{0, 0, 1, 1}, Direction: "up"}}}, "unknown direction"},
		{"bad scene direction", Scene{Direction: "sideways"}, "unknown direction"},
		{"bad path", Scene{Elements: []ElementConf{{ID: "x", Path: "   "}}}, `"x"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.scene.BuildElements()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSceneSpecAndOptions(t *testing.T) {
	s := &Scene{
		Badge: &BadgeConfig{Size: 20, Padding: 1},
		Placement: PlacementConf{
			CornerRadiusThreshold: 12,
			WedgeGrid:             6,
			FillRule:              "even-odd",
			FullScan:              true,
		},
	}
	spec, err := s.Spec()
	require.NoError(t, err)
	assert.Equal(t, 20.0, spec.Size())

	opts, err := s.Options()
	require.NoError(t, err)
	placer, err := badge.NewPlacer(spec, opts...)
	require.NoError(t, err)

	cfg := placer.Config()
	assert.Equal(t, 12.0, cfg.CornerRadiusThreshold)
	assert.Equal(t, 6, cfg.WedgeGrid)
	assert.Equal(t, badge.DefaultConfig().WedgeFraction, cfg.WedgeFraction)
	assert.Equal(t, badge.FillRuleEvenOdd, cfg.FillRule)
	assert.True(t, cfg.FullScan)

	s.Badge.Size = -1
	_, err = s.Spec()
	assert.ErrorIs(t, err, badge.ErrInvalidBadgeSpec)

	s.Placement.FillRule = "winding"
	_, err = s.Options()
	assert.Error(t, err)
}

func TestFillRuleValue(t *testing.T) {
	var v fillRuleValue
	assert.Equal(t, "nonzero", v.String())
	assert.Equal(t, "rule", v.Type())

	require.NoError(t, v.Set("EvenOdd"))
	assert.Equal(t, badge.FillRuleEvenOdd, badge.FillRule(v))
	assert.Equal(t, "evenodd", v.String())

	require.NoError(t, v.Set("non-zero"))
	assert.Equal(t, badge.FillRuleNonZero, badge.FillRule(v))

	assert.Error(t, v.Set("odd"))
}

func TestRunPlace(t *testing.T) {
	s, err := DecodeScene(strings.NewReader(sceneYAML))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, runPlace(context.Background(), s, defaultFlags(), false, &out))

	rep := decodeReport(t, out.Bytes())
	require.Len(t, rep.Results, 4)

	r := badge.DefaultBadgeSpec().Radius()
	button := rep.Results[0]
	assert.Equal(t, "ok-button", button.ID)
	assert.True(t, button.OK)
	assert.Equal(t, "corner", button.Strategy)
	assert.Equal(t, "top-leading", button.Corner)
	assert.InDelta(t, 10+r+0.5, button.X, 1e-9)
	assert.InDelta(t, 10+r+0.5, button.Y, 1e-9)

	greeting := rep.Results[2]
	assert.InDelta(t, 210-r-0.5, greeting.X, 1e-9)

	assert.False(t, rep.Results[3].OK)
	assert.Equal(t, 4, rep.Summary.Total)
	assert.Equal(t, 3, rep.Summary.Placed)
	assert.Equal(t, []string{"dot"}, rep.Summary.Unplaced)
}

func TestRunPlaceOverrides(t *testing.T) {
	s := &Scene{Elements: []ElementConf{{ID: "a", Rect: []float64{0, 0, 100, 100}}}}
	f := defaultFlags()
	f.rtl = true
	f.size = 10
	f.padding = 0

	var out bytes.Buffer
	require.NoError(t, runPlace(context.Background(), s, f, false, &out))

	rep := decodeReport(t, out.Bytes())
	spec, err := badge.NewBadgeSpec(10, 0)
	require.NoError(t, err)
	inset := spec.Radius() + 0.5
	assert.InDelta(t, 100-inset, rep.Results[0].X, 1e-9)
	assert.InDelta(t, inset, rep.Results[0].Y, 1e-9)
}

func TestRunPlaceReportsOriginAnchor(t *testing.T) {
	spec, err := badge.NewBadgeSpec(10, 0)
	require.NoError(t, err)
	inset := spec.Radius() + 0.5
	s := &Scene{Elements: []ElementConf{{ID: "a", Rect: []float64{-inset, -inset, 100, 100}}}}
	f := defaultFlags()
	f.size = 10
	f.padding = 0

	var out bytes.Buffer
	require.NoError(t, runPlace(context.Background(), s, f, false, &out))

	assert.Contains(t, out.String(), "x: 0\n")
	assert.Contains(t, out.String(), "y: 0\n")
	rep := decodeReport(t, out.Bytes())
	require.True(t, rep.Results[0].OK)
	assert.Zero(t, rep.Results[0].X)
	assert.Zero(t, rep.Results[0].Y)
}

func TestPlaceCommand(t *testing.T) {
	dir := t.TempDir()
	scene := writeScene(t, sceneYAML)
	svgOut := filepath.Join(dir, "overlay.svg")
	pngOut := filepath.Join(dir, "preview.png")

	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"place", scene, "--svg-out", svgOut, "--png-out", pngOut, "--png-width", "200", "--workers", "2", "--no-color"})
	require.NoError(t, cmd.Execute())

	rep := decodeReport(t, out.Bytes())
	assert.Len(t, rep.Results, 4)

	svgBody, err := os.ReadFile(svgOut)
	require.NoError(t, err)
	assert.Contains(t, string(svgBody), `id="avatar"`)

	pngBody, err := os.ReadFile(pngOut)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pngBody, []byte("\x89PNG")))
}

func TestPlaceCommandSVGImport(t *testing.T) {
	svgPath := filepath.Join(t.TempDir(), "screen.svg")
	doc := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 300 100">
  <rect x="0" y="0" width="120" height="60"/>
  <circle cx="200" cy="50" r="45"/>
</svg>`
	require.NoError(t, os.WriteFile(svgPath, []byte(doc), 0o600))

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"place", "--svg", svgPath, "--fill-rule", "evenodd"})
	require.NoError(t, cmd.Execute())

	rep := decodeReport(t, out.Bytes())
	require.Len(t, rep.Results, 2)
	assert.Equal(t, "svg-0", rep.Results[0].ID)
	for _, r := range rep.Results {
		assert.True(t, r.OK, r.ID)
	}
}

func TestPlaceCommandRequiresInput(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"place"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scene file or --svg")
}

func TestPlaceCommandMissingScene(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"place", filepath.Join(t.TempDir(), "nope.yaml")})
	assert.Error(t, cmd.Execute())
}

func TestVersionCommand(t *testing.T) {
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "badgeplace dev\n", out.String())
}

func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, 0, true)
	log.Info("hidden")
	log.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	newLogger(&buf, 2, true).Debug("debug line")
	assert.Contains(t, buf.String(), "debug line")
}
