package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gogpu/badge"
	"github.com/gogpu/badge/overlay"
	"github.com/gogpu/badge/svgimport"
	"gopkg.in/yaml.v3"
)

// Scene is a snapshot description read from YAML.
//
//	width: 400
//	height: 120
//	badge: {size: 16, padding: 2}
//	locale: en
//	elements:
//	  - id: ok-button
//	    rect: [10, 10, 120, 40]
//	  - id: avatar
//	    path: "M200 10 h60 v60 h-60 z"
//	    direction: rtl
type Scene struct {
	Width     int           `yaml:"width"`
	Height    int           `yaml:"height"`
	Badge     *BadgeConfig  `yaml:"badge,omitempty"`
	Locale    string        `yaml:"locale,omitempty"`
	Direction string        `yaml:"direction,omitempty"`
	Placement PlacementConf `yaml:"placement,omitempty"`
	Elements  []ElementConf `yaml:"elements"`
}

// BadgeConfig sets the badge footprint.
type BadgeConfig struct {
	Size    float64 `yaml:"size"`
	Padding float64 `yaml:"padding"`
}

// PlacementConf tunes the placer. Zero fields keep the defaults.
type PlacementConf struct {
	CornerRadiusThreshold float64 `yaml:"corner_radius_threshold,omitempty"`
	WedgeFraction         float64 `yaml:"wedge_fraction,omitempty"`
	WedgeGrid             int     `yaml:"wedge_grid,omitempty"`
	FillRule              string  `yaml:"fill_rule,omitempty"`
	FullScan              bool    `yaml:"full_scan,omitempty"`
	ForceSearch           bool    `yaml:"force_search,omitempty"`
}

// ElementConf is one element of the scene. Exactly one of Rect and Path
// must be set.
type ElementConf struct {
	ID        string    `yaml:"id"`
	Rect      []float64 `yaml:"rect,omitempty"`
	Path      string    `yaml:"path,omitempty"`
	Direction string    `yaml:"direction,omitempty"`
	Text      string    `yaml:"text,omitempty"`
}

// LoadScene reads a scene file.
func LoadScene(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeScene(f)
}

// DecodeScene parses a YAML scene, rejecting unknown keys.
func DecodeScene(r io.Reader) (*Scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scene
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	return &s, nil
}

// Spec returns the scene's badge spec, or the default when unset.
func (s *Scene) Spec() (badge.BadgeSpec, error) {
	if s.Badge == nil {
		return badge.DefaultBadgeSpec(), nil
	}
	return badge.NewBadgeSpec(s.Badge.Size, s.Badge.Padding)
}

// Options translates the placement section into placer options.
func (s *Scene) Options() ([]badge.Option, error) {
	var opts []badge.Option
	p := s.Placement
	if p.CornerRadiusThreshold != 0 {
		opts = append(opts, badge.WithCornerRadiusThreshold(p.CornerRadiusThreshold))
	}
	if p.WedgeFraction != 0 || p.WedgeGrid != 0 {
		cfg := badge.DefaultConfig()
		fraction, grid := cfg.WedgeFraction, cfg.WedgeGrid
		if p.WedgeFraction != 0 {
			fraction = p.WedgeFraction
		}
		if p.WedgeGrid != 0 {
			grid = p.WedgeGrid
		}
		opts = append(opts, badge.WithWedge(fraction, grid))
	}
	if p.FillRule != "" {
		var rule fillRuleValue
		if err := rule.Set(p.FillRule); err != nil {
			return nil, fmt.Errorf("scene: placement.fill_rule: %w", err)
		}
		opts = append(opts, badge.WithFillRule(badge.FillRule(rule)))
	}
	if p.FullScan {
		opts = append(opts, badge.WithFullScan())
	}
	if p.ForceSearch {
		opts = append(opts, badge.WithForceSearch())
	}
	return opts, nil
}

// BuildElements builds overlay elements. Directions resolve per element from
// its own direction, then its text, then the scene default.
func (s *Scene) BuildElements() ([]overlay.Element, error) {
	def, err := s.defaultDirection()
	if err != nil {
		return nil, err
	}

	elems := make([]overlay.Element, 0, len(s.Elements))
	for i, ec := range s.Elements {
		id := ec.ID
		if id == "" {
			id = fmt.Sprintf("element-%d", i+1)
		}

		var shape badge.Shape
		switch {
		case len(ec.Rect) > 0 && ec.Path != "":
			return nil, fmt.Errorf("scene: element %q: rect and path are exclusive", id)
		case len(ec.Rect) > 0:
			if len(ec.Rect) != 4 {
				return nil, fmt.Errorf("scene: element %q: rect wants [x, y, w, h], got %d values", id, len(ec.Rect))
			}
			shape = badge.RectShape(badge.XYWH(ec.Rect[0], ec.Rect[1], ec.Rect[2], ec.Rect[3]))
		case ec.Path != "":
			p, err := svgimport.ParsePathData(ec.Path)
			if err != nil {
				return nil, fmt.Errorf("scene: element %q: %w", id, err)
			}
			shape = badge.PathShape(p)
		default:
			return nil, fmt.Errorf("scene: element %q: needs rect or path", id)
		}

		dir := def
		switch {
		case ec.Direction != "":
			if dir, err = parseDirection(ec.Direction); err != nil {
				return nil, fmt.Errorf("scene: element %q: %w", id, err)
			}
		case ec.Text != "":
			dir = badge.DirectionForText(ec.Text)
		}
		elems = append(elems, overlay.Element{ID: id, Shape: shape, Direction: dir})
	}
	return elems, nil
}

func (s *Scene) defaultDirection() (badge.LayoutDirection, error) {
	if s.Direction != "" {
		return parseDirection(s.Direction)
	}
	if s.Locale != "" {
		return badge.DirectionForLocale(s.Locale), nil
	}
	return badge.LeftToRight, nil
}

func parseDirection(s string) (badge.LayoutDirection, error) {
	switch s {
	case "ltr":
		return badge.LeftToRight, nil
	case "rtl":
		return badge.RightToLeft, nil
	default:
		return badge.LeftToRight, fmt.Errorf("unknown direction %q (want ltr or rtl)", s)
	}
}

// canvasSize returns the scene size, or the union of element bounds when
// the scene leaves it unset.
func canvasSize(s *Scene, elems []overlay.Element) (int, int) {
	if s.Width > 0 && s.Height > 0 {
		return s.Width, s.Height
	}
	var w, h float64
	for _, e := range elems {
		b := e.Shape.Bounds()
		w = max(w, b.Max.X)
		h = max(h, b.Max.Y)
	}
	return max(int(w)+1, 1), max(int(h)+1, 1)
}
