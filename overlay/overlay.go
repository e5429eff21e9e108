// Package overlay places badges for every element of a UI snapshot and
// renders the result for review.
//
// Placement of each element is independent, so a batch is fanned out over
// a worker pool; results keep the input order. The rendered outputs are an
// SVG document (element outlines, badges and their clearance circles) and a
// PNG preview.
package overlay

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gogpu/badge"
	"github.com/gogpu/badge/internal/parallel"
	"github.com/samber/lo"
)

// Element is one accessibility element of a snapshot.
type Element struct {
	// ID identifies the element in results and rendered output.
	ID string

	// Shape is the element's visual region in snapshot coordinates.
	Shape badge.Shape

	// Direction is the layout direction of the element's content.
	Direction badge.LayoutDirection
}

// Result is the placement computed for one element.
type Result struct {
	ID        string
	Placement badge.Placement
}

// Overlay places badges with one placer over a reusable worker pool.
type Overlay struct {
	placer *badge.Placer
	pool   *parallel.Pool
}

// Option configures an [Overlay].
type Option func(*options)

type options struct {
	workers int
}

// WithWorkers sets the number of placement goroutines.
// Zero or negative uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// New returns an overlay that places badges with placer.
// Call Close to stop its workers.
func New(placer *badge.Placer, opts ...Option) (*Overlay, error) {
	if placer == nil {
		return nil, fmt.Errorf("overlay: nil placer")
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Overlay{placer: placer, pool: parallel.NewPool(o.workers)}, nil
}

// Close stops the worker pool.
func (o *Overlay) Close() {
	o.pool.Close()
}

// Spec returns the badge spec of the underlying placer.
func (o *Overlay) Spec() badge.BadgeSpec {
	return o.placer.Spec()
}

// Place computes a placement for every element. Results are in input
// order. When ctx is canceled the remaining elements are left unplaced
// and the context error is returned along with the partial results.
func (o *Overlay) Place(ctx context.Context, elems []Element) ([]Result, error) {
	results := make([]Result, len(elems))
	err := o.pool.Run(ctx, len(elems), func(i int) {
		e := elems[i]
		results[i] = Result{ID: e.ID, Placement: o.placer.Place(e.Shape, e.Direction)}
	})
	for i := range results {
		results[i].ID = elems[i].ID
	}
	if err != nil {
		return results, fmt.Errorf("overlay: place: %w", err)
	}

	log := badge.Logger()
	if log.Enabled(ctx, slog.LevelInfo) {
		s := Summarize(results)
		log.Info("overlay: placed batch",
			"elements", s.Total,
			"placed", s.Placed,
			"unplaced", len(s.Unplaced),
			"evals", s.Evals,
		)
	}
	return results, nil
}

// Summary aggregates a batch of results.
type Summary struct {
	Total      int            `yaml:"total" json:"total"`
	Placed     int            `yaml:"placed" json:"placed"`
	Unplaced   []string       `yaml:"unplaced,omitempty" json:"unplaced,omitempty"`
	ByStrategy map[string]int `yaml:"by_strategy" json:"by_strategy"`
	Evals      int            `yaml:"evals" json:"evals"`
}

// Summarize counts placements per strategy and lists unplaced elements.
func Summarize(results []Result) Summary {
	return Summary{
		Total:  len(results),
		Placed: lo.CountBy(results, func(r Result) bool { return r.Placement.OK }),
		Unplaced: lo.FilterMap(results, func(r Result, _ int) (string, bool) {
			return r.ID, !r.Placement.OK
		}),
		ByStrategy: lo.CountValuesBy(results, func(r Result) string {
			return r.Placement.Strategy.String()
		}),
		Evals: lo.SumBy(results, func(r Result) int { return r.Placement.Evals }),
	}
}
