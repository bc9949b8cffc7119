package crossclust

import (
	"context"
	"errors"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/crossclust/crossover"
	"github.com/hupe1980/crossclust/label"
)

// ErrEmptySweep is returned when Sweep is called without resolutions.
var ErrEmptySweep = errors.New("at least one resolution is required")

// ClusterFunc is the external clustering capability: given a resolution
// parameter it returns one labeling of the entity universe. Crossclust never
// constructs similarity graphs or runs the clustering itself; the function
// is expected to close over whatever graph or feature space it needs.
type ClusterFunc func(ctx context.Context, resolution float64) (*label.Labeling, error)

// SourceForResolution is the source tag Sweep assigns to a labeling whose
// clusterer did not tag it itself.
func SourceForResolution(resolution float64) string {
	return "res-" + strconv.FormatFloat(resolution, 'g', -1, 64)
}

// Sweep drives fn over a caller-supplied resolution sequence, registers the
// resulting labelings in order and returns the layered crossover graph over
// them. Spacing and count of the sequence are up to the caller.
//
// Clusterer calls run concurrently on the configured worker pool; layer
// order always follows the resolution sequence, so results are independent
// of scheduling. A failing clusterer call fails the sweep before anything is
// registered.
func (c *Crossclust) Sweep(ctx context.Context, fn ClusterFunc, resolutions []float64) (*crossover.Graph, error) {
	if len(resolutions) == 0 {
		return nil, ErrEmptySweep
	}

	labelings := make([]*label.Labeling, len(resolutions))
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(c.workers)
	for i, r := range resolutions {
		eg.Go(func() error {
			l, err := fn(gctx, r)
			if err != nil {
				return err
			}
			labelings[i] = l
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	sources := make([]string, len(labelings))
	for i, l := range labelings {
		src := l.Source()
		if src == "" {
			src = SourceForResolution(resolutions[i])
		}
		sources[i] = src
	}

	for i, l := range labelings {
		if l.Source() == "" {
			// Re-tag under the generated source so the store can hold it.
			l = retag(l, sources[i])
			labelings[i] = l
		}
		if err := c.Add(l); err != nil {
			return nil, err
		}
	}

	return c.BuildTree(ctx, sources...)
}

// retag rebuilds a labeling under a new source tag. Labelings are immutable,
// so this reconstructs the assignments, unassigned entities included, over
// the same universe.
func retag(l *label.Labeling, source string) *label.Labeling {
	b := label.NewBuilder(l.Universe(), source)
	u := l.Universe()
	it := l.Entities().Iterator()
	for it.HasNext() {
		b.Assign(u.Name(it.Next()), label.Unassigned)
	}
	for _, lbl := range l.Labels() {
		members := l.Members(lbl).Iterator()
		for members.HasNext() {
			b.Assign(u.Name(members.Next()), lbl)
		}
	}
	return b.Build()
}
