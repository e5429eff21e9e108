// Command badgeplace places accessibility badges on the elements of a UI
// snapshot and reports where they went.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/badge"
	"github.com/gogpu/badge/overlay"
	"github.com/gogpu/badge/svgimport"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Build information (set at link time).
var version = "dev"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		verbosity int
		noColor   bool
	)

	rootCmd := &cobra.Command{
		Use:   "badgeplace",
		Short: "Place numbered badges inside UI element shapes",
		Long: `badgeplace computes where a small square badge goes inside each element of
a UI snapshot: near the element's leading top corner, fully inside its
visual shape, for rectangles, rounded rectangles, circles and arbitrary
outlines alike.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			badge.SetLogger(newLogger(cmd.ErrOrStderr(), verbosity, noColor))
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase logging (-v info, -vv debug)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored log output")

	rootCmd.AddCommand(newPlaceCommand())
	rootCmd.AddCommand(newVersionCommand())
	return rootCmd
}

func newLogger(w io.Writer, verbosity int, noColor bool) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case verbosity >= 2:
		level = slog.LevelDebug
	case verbosity == 1:
		level = slog.LevelInfo
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    noColor,
	}))
}

func newPlaceCommand() *cobra.Command {
	var f placeFlags

	cmd := &cobra.Command{
		Use:   "place [scene.yaml]",
		Short: "Place badges for a scene file or SVG document",
		Example: `  badgeplace place scene.yaml
  badgeplace place --svg screen.svg --rtl --svg-out overlay.svg
  badgeplace place scene.yaml --full-scan --png-out preview.png --png-width 800`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && f.svgIn == "" {
				return fmt.Errorf("requires a scene file or --svg")
			}

			scene := &Scene{}
			if len(args) == 1 {
				var err error
				if scene, err = LoadScene(args[0]); err != nil {
					return err
				}
			}
			return runPlace(cmd.Context(), scene, f, cmd.Flags().Changed("fill-rule"), cmd.OutOrStdout())
		},
	}
	f.bind(cmd.Flags())
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "badgeplace", version)
		},
	}
}

// resultOut is one line of the YAML report.
type resultOut struct {
	ID       string  `yaml:"id"`
	OK       bool    `yaml:"ok"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Corner   string  `yaml:"corner,omitempty"`
	Strategy string  `yaml:"strategy"`
	Score    float64 `yaml:"score,omitempty"`
	Class    string  `yaml:"class"`
	Evals    int     `yaml:"evals"`
}

type report struct {
	Results []resultOut     `yaml:"results"`
	Summary overlay.Summary `yaml:"summary"`
}

func runPlace(ctx context.Context, scene *Scene, f placeFlags, fillRuleSet bool, out io.Writer) error {
	switch {
	case f.rtl:
		scene.Direction = "rtl"
	case f.lang != "":
		scene.Direction = ""
		scene.Locale = f.lang
	}

	elems, err := scene.BuildElements()
	if err != nil {
		return err
	}
	if f.svgIn != "" {
		imported, err := importSVG(f.svgIn, scene)
		if err != nil {
			return err
		}
		elems = append(elems, imported...)
	}

	spec, err := scene.Spec()
	if err != nil {
		return err
	}
	if f.size > 0 || f.padding >= 0 {
		size, padding := spec.Size(), spec.Padding()
		if f.size > 0 {
			size = f.size
		}
		if f.padding >= 0 {
			padding = f.padding
		}
		if spec, err = badge.NewBadgeSpec(size, padding); err != nil {
			return err
		}
	}

	opts, err := scene.Options()
	if err != nil {
		return err
	}
	if fillRuleSet {
		opts = append(opts, badge.WithFillRule(badge.FillRule(f.fillRule)))
	}
	if f.fullScan {
		opts = append(opts, badge.WithFullScan())
	}

	placer, err := badge.NewPlacer(spec, opts...)
	if err != nil {
		return err
	}
	ov, err := overlay.New(placer, overlay.WithWorkers(f.workers))
	if err != nil {
		return err
	}
	defer ov.Close()

	results, err := ov.Place(ctx, elems)
	if err != nil {
		return err
	}

	width, height := canvasSize(scene, elems)
	if f.svgOut != "" {
		if err := writeFile(f.svgOut, func(w io.Writer) error {
			return overlay.WriteSVG(w, width, height, spec, elems, results)
		}); err != nil {
			return err
		}
	}
	if f.pngOut != "" {
		img, err := overlay.Render(width, height, spec, elems, results)
		if err != nil {
			return err
		}
		if err := writeFile(f.pngOut, func(w io.Writer) error {
			return overlay.WritePNG(w, img, f.pngWidth)
		}); err != nil {
			return err
		}
	}

	return writeReport(out, results)
}

func importSVG(path string, scene *Scene) ([]overlay.Element, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	outlines, err := svgimport.Read(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	dir, err := scene.defaultDirection()
	if err != nil {
		return nil, err
	}

	elems := make([]overlay.Element, len(outlines))
	for i, o := range outlines {
		elems[i] = overlay.Element{
			ID:        fmt.Sprintf("svg-%d", o.Index),
			Shape:     o.Shape(),
			Direction: dir,
		}
	}
	return elems, nil
}

func writeReport(w io.Writer, results []overlay.Result) error {
	rep := report{Summary: overlay.Summarize(results)}
	for _, r := range results {
		pl := r.Placement
		line := resultOut{
			ID:       r.ID,
			OK:       pl.OK,
			Strategy: pl.Strategy.String(),
			Class:    pl.Class.String(),
			Evals:    pl.Evals,
		}
		if pl.OK {
			line.X, line.Y = pl.Point.X, pl.Point.Y
			line.Corner = pl.Corner.String()
			line.Score = pl.Score
		}
		rep.Results = append(rep.Results, line)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return enc.Close()
}

func writeFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
