package crossclust

import (
	"context"
	"runtime"

	"github.com/hupe1980/crossclust/crossover"
	"github.com/hupe1980/crossclust/label"
	"github.com/hupe1980/crossclust/overlap"
)

// Crossclust is the facade over a labeling store and the derived overlap
// tables and crossover graphs. All derived structures are recomputed from
// the stored labelings on every call; nothing is cached or mutated in place.
type Crossclust struct {
	store   *label.Store
	logger  *Logger
	workers int
}

// New creates a Crossclust over the given universe. Passing a nil universe
// lets the first added labeling establish it.
func New(universe *label.Universe, opts ...Option) *Crossclust {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = NewLogger(nil)
	}
	if o.workers < 1 {
		o.workers = runtime.NumCPU()
	}
	return &Crossclust{
		store:   label.NewStore(universe),
		logger:  o.logger,
		workers: o.workers,
	}
}

// Add registers a labeling under its source tag. Misaligned labelings are
// rejected with *ErrAlignment.
func (c *Crossclust) Add(l *label.Labeling) error {
	if err := c.store.Add(l); err != nil {
		return translateError(err)
	}
	c.logger.Debug("labeling added",
		"source", l.Source(),
		"clusters", len(l.Labels()),
		"assigned", l.AssignedCount(),
	)
	return nil
}

// Labeling returns the labeling registered under source.
func (c *Crossclust) Labeling(source string) (*label.Labeling, error) {
	l, err := c.store.Get(source)
	if err != nil {
		return nil, translateError(err)
	}
	return l, nil
}

// Sources returns the registered source tags in registration order.
func (c *Crossclust) Sources() []string {
	return c.store.Sources()
}

// Summarize returns the completed overlap table between two stored
// labelings. The sources need not be resolution-adjacent; this is the
// stable query for comparing arbitrary clusterings of the same entities
// (e.g. two different feature spaces).
func (c *Crossclust) Summarize(sourceA, sourceB string) (*overlap.Table, error) {
	a, err := c.store.Get(sourceA)
	if err != nil {
		return nil, translateError(err)
	}
	b, err := c.store.Get(sourceB)
	if err != nil {
		return nil, translateError(err)
	}
	return Summarize(a, b)
}

// Summarize returns the completed overlap table between two labelings.
// It is a stateless pass-through to the overlap builder.
func Summarize(a, b *label.Labeling) (*overlap.Table, error) {
	t, err := overlap.Build(a, b)
	if err != nil {
		return nil, translateError(err)
	}
	return t, nil
}

// BuildTree assembles the layered crossover graph over the given sources in
// the given order and scores node stability. With no sources it uses every
// stored labeling in registration order.
//
// A single failing adjacent pair fails the whole build; no partial graph is
// returned.
func (c *Crossclust) BuildTree(ctx context.Context, sources ...string) (*crossover.Graph, error) {
	if len(sources) == 0 {
		sources = c.store.Sources()
	}

	labelings := make([]*label.Labeling, len(sources))
	for i, src := range sources {
		l, err := c.store.Get(src)
		if err != nil {
			return nil, translateError(err)
		}
		labelings[i] = l
	}

	tb := crossover.NewTreeBuilder(crossover.WithWorkers(c.workers))
	g, err := tb.Build(ctx, labelings)
	if err != nil {
		return nil, translateError(err)
	}
	c.logger.Debug("crossover graph built",
		"layers", len(g.Layers),
		"nodes", len(g.Nodes),
		"edges", len(g.Edges),
	)
	return g, nil
}
