package crossover

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/crossclust/label"
	"github.com/hupe1980/crossclust/overlap"
)

// ErrNoLayers is returned when Build is called without labelings.
var ErrNoLayers = errors.New("at least one labeling is required")

// TreeBuilder assembles a layered crossover graph from an ordered sequence
// of labelings. The builder does not enforce any ordering semantics on the
// sequence (e.g. monotone resolutions); layer order is the caller's order.
type TreeBuilder struct {
	workers int
}

// TreeBuilderOption configures a TreeBuilder.
type TreeBuilderOption func(*TreeBuilder)

// WithWorkers sets the number of goroutines used for adjacent-pair tables.
// Values < 1 mean runtime.NumCPU().
func WithWorkers(n int) TreeBuilderOption {
	return func(tb *TreeBuilder) {
		tb.workers = n
	}
}

// NewTreeBuilder creates a TreeBuilder.
func NewTreeBuilder(opts ...TreeBuilderOption) *TreeBuilder {
	tb := &TreeBuilder{}
	for _, opt := range opts {
		opt(tb)
	}
	if tb.workers < 1 {
		tb.workers = runtime.NumCPU()
	}
	return tb
}

// Build computes the crossover graph over the given labelings, one layer per
// labeling in the given order, and scores node stability.
//
// Any failing adjacent pair fails the whole build: a layered graph with a
// missing layer is not a valid input to stability scoring, so no partial
// graph is ever returned.
func (tb *TreeBuilder) Build(ctx context.Context, labelings []*label.Labeling) (*Graph, error) {
	if len(labelings) == 0 {
		return nil, ErrNoLayers
	}

	tables := make([]*overlap.Table, len(labelings)-1)
	eg, _ := errgroup.WithContext(ctx)
	eg.SetLimit(tb.workers)
	for i := 0; i < len(labelings)-1; i++ {
		eg.Go(func() error {
			t, err := overlap.Build(labelings[i], labelings[i+1])
			if err != nil {
				return err
			}
			tables[i] = t
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g := assemble(labelings, tables)
	Score(g)
	return g, nil
}

// assemble merges per-pair tables into a graph. Nodes and edges are emitted
// in (layer, label) order, so the result does not depend on the order in
// which the tables were computed.
func assemble(labelings []*label.Labeling, tables []*overlap.Table) *Graph {
	g := &Graph{
		Layers: make([]string, len(labelings)),
	}

	for i, l := range labelings {
		g.Layers[i] = l.Source()
		for _, lbl := range l.Labels() {
			g.Nodes = append(g.Nodes, Node{
				Layer:  i,
				Source: l.Source(),
				Label:  lbl,
				Size:   l.ClusterSize(lbl),
			})
		}
	}

	for i, t := range tables {
		for _, row := range t.Rows {
			g.Edges = append(g.Edges, Edge{
				FromLayer: i,
				FromLabel: row.LabelA,
				ToLayer:   i + 1,
				ToLabel:   row.LabelB,
				Count:     row.Count,
				PropFrom:  row.PropA,
				PropTo:    row.PropB,
				Jaccard:   row.Jaccard,
			})
		}
	}

	return g
}
