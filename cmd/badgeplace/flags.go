package main

import (
	"fmt"
	"strings"

	"github.com/gogpu/badge"
	"github.com/spf13/pflag"
)

// fillRuleValue is a pflag.Value accepting "nonzero" or "evenodd".
type fillRuleValue badge.FillRule

var _ pflag.Value = (*fillRuleValue)(nil)

func (v *fillRuleValue) String() string {
	switch badge.FillRule(*v) {
	case badge.FillRuleEvenOdd:
		return "evenodd"
	default:
		return "nonzero"
	}
}

func (v *fillRuleValue) Set(s string) error {
	switch strings.ToLower(strings.ReplaceAll(s, "-", "")) {
	case "nonzero":
		*v = fillRuleValue(badge.FillRuleNonZero)
	case "evenodd":
		*v = fillRuleValue(badge.FillRuleEvenOdd)
	default:
		return fmt.Errorf("unknown fill rule %q (want nonzero or evenodd)", s)
	}
	return nil
}

func (v *fillRuleValue) Type() string { return "rule" }

// placeFlags holds the flags of the place command.
type placeFlags struct {
	svgIn    string
	size     float64
	padding  float64
	rtl      bool
	lang     string
	fillRule fillRuleValue
	fullScan bool
	workers  int
	svgOut   string
	pngOut   string
	pngWidth int
}

func (f *placeFlags) bind(flags *pflag.FlagSet) {
	flags.StringVar(&f.svgIn, "svg", "", "Import element outlines from an SVG document")
	flags.Float64Var(&f.size, "size", 0, "Badge side length (overrides the scene)")
	flags.Float64Var(&f.padding, "padding", -1, "Badge padding (overrides the scene)")
	flags.BoolVar(&f.rtl, "rtl", false, "Lay out every element right to left")
	flags.StringVar(&f.lang, "lang", "", "BCP 47 locale deciding the default direction")
	flags.Var(&f.fillRule, "fill-rule", "Containment rule for path elements: nonzero or evenodd")
	flags.BoolVar(&f.fullScan, "full-scan", false, "Score all four corners instead of stopping at the first fit")
	flags.IntVar(&f.workers, "workers", 0, "Placement goroutines (0 = GOMAXPROCS)")
	flags.StringVar(&f.svgOut, "svg-out", "", "Write an SVG overlay to this file")
	flags.StringVar(&f.pngOut, "png-out", "", "Write a PNG preview to this file")
	flags.IntVar(&f.pngWidth, "png-width", 0, "Downscale the PNG preview to at most this width")
}
