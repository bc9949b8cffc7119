package crossclust

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/crossclust/label"
	"github.com/hupe1980/crossclust/testutil"
)

func TestCrossclust(t *testing.T) {
	t.Run("AddAndSummarize", func(t *testing.T) {
		u, a, b := testutil.FourEntities()
		cc := New(u, WithLogger(NoopLogger()))
		require.NoError(t, cc.Add(a))
		require.NoError(t, cc.Add(b))

		assert.Equal(t, []string{"A", "B"}, cc.Sources())

		table, err := cc.Summarize("A", "B")
		require.NoError(t, err)

		row, ok := table.Lookup("2", "2")
		require.True(t, ok)
		assert.Equal(t, 2, row.Count)
		assert.InDelta(t, 2.0/3.0, row.Jaccard, 1e-15)
	})

	t.Run("LabelingNotFound", func(t *testing.T) {
		cc := New(nil, WithLogger(NoopLogger()))
		_, err := cc.Labeling("missing")
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = cc.Summarize("missing", "also-missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("AddMisaligned", func(t *testing.T) {
		u1 := label.NewUniverse("a")
		u2 := label.NewUniverse("a")
		cc := New(u1, WithLogger(NoopLogger()))

		err := cc.Add(label.FromMap(u2, "x", map[string]label.Label{"a": "1"}))
		var ea *ErrAlignment
		require.True(t, errors.As(err, &ea))
		assert.Equal(t, "x", ea.SourceA)
		// The leaf-package error stays reachable through Unwrap.
		var cause *label.ErrAlignment
		assert.True(t, errors.As(err, &cause))
	})

	t.Run("SummarizeEmptyLabeling", func(t *testing.T) {
		u := label.NewUniverse("a")
		cc := New(u, WithLogger(NoopLogger()))
		require.NoError(t, cc.Add(label.FromMap(u, "A", map[string]label.Label{"a": "1"})))
		require.NoError(t, cc.Add(label.FromMap(u, "B", map[string]label.Label{"a": label.Unassigned})))

		_, err := cc.Summarize("A", "B")
		var ee *ErrEmptyLabeling
		require.True(t, errors.As(err, &ee))
		assert.Equal(t, "B", ee.Source)
	})
}

func TestCrossclustBuildTree(t *testing.T) {
	u, chain := testutil.NestedChain()
	cc := New(u, WithLogger(NoopLogger()), WithWorkers(2))
	for _, l := range chain {
		require.NoError(t, cc.Add(l))
	}

	t.Run("DefaultOrderIsRegistrationOrder", func(t *testing.T) {
		g, err := cc.BuildTree(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"res-0.0", "res-0.5", "res-1.0"}, g.Layers)
	})

	t.Run("ExplicitSources", func(t *testing.T) {
		g, err := cc.BuildTree(context.Background(), "res-0.5", "res-1.0")
		require.NoError(t, err)
		assert.Equal(t, []string{"res-0.5", "res-1.0"}, g.Layers)
	})

	t.Run("UnknownSource", func(t *testing.T) {
		_, err := cc.BuildTree(context.Background(), "res-0.0", "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCrossclustSweep(t *testing.T) {
	t.Run("RegistersAndBuilds", func(t *testing.T) {
		u, chain := testutil.NestedChain()
		byResolution := map[float64]*label.Labeling{
			0.0: chain[0],
			0.5: chain[1],
			1.0: chain[2],
		}

		cc := New(u, WithLogger(NoopLogger()))
		g, err := cc.Sweep(context.Background(), func(_ context.Context, r float64) (*label.Labeling, error) {
			return byResolution[r], nil
		}, []float64{0.0, 0.5, 1.0})
		require.NoError(t, err)

		assert.Equal(t, []string{"res-0.0", "res-0.5", "res-1.0"}, g.Layers)
		assert.Equal(t, []string{"res-0.0", "res-0.5", "res-1.0"}, cc.Sources())
	})

	t.Run("ClustererFailureFailsSweep", func(t *testing.T) {
		u, chain := testutil.NestedChain()
		boom := errors.New("boom")

		cc := New(u, WithLogger(NoopLogger()))
		_, err := cc.Sweep(context.Background(), func(_ context.Context, r float64) (*label.Labeling, error) {
			if r > 0.4 {
				return nil, boom
			}
			return chain[0], nil
		}, []float64{0.0, 0.5})
		assert.ErrorIs(t, err, boom)
		assert.Empty(t, cc.Sources())
	})

	t.Run("EmptySweep", func(t *testing.T) {
		cc := New(nil, WithLogger(NoopLogger()))
		_, err := cc.Sweep(context.Background(), nil, nil)
		assert.ErrorIs(t, err, ErrEmptySweep)
	})
}

func TestSourceForResolution(t *testing.T) {
	assert.Equal(t, "res-0.25", SourceForResolution(0.25))
	assert.Equal(t, "res-1", SourceForResolution(1.0))
}
