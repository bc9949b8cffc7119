package overlap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/crossclust/label"
	"github.com/hupe1980/crossclust/testutil"
)

func TestBuild(t *testing.T) {
	_, a, b := testutil.FourEntities()

	table, err := Build(a, b)
	require.NoError(t, err)

	t.Run("CompletedGrid", func(t *testing.T) {
		assert.Equal(t, []label.Label{"1", "2"}, table.LabelsA)
		assert.Equal(t, []label.Label{"1", "2"}, table.LabelsB)
		assert.Len(t, table.Rows, 4)
	})

	t.Run("CellValues", func(t *testing.T) {
		row, ok := table.Lookup("1", "1")
		require.True(t, ok)
		assert.Equal(t, 1, row.Count)
		assert.Equal(t, 2, row.SizeA)
		assert.Equal(t, 1, row.SizeB)
		assert.Equal(t, 0.5, row.PropA)
		assert.Equal(t, 1.0, row.PropB)
		assert.Equal(t, 0.5, row.Jaccard) // 1/(2+1-1)

		row, ok = table.Lookup("1", "2")
		require.True(t, ok)
		assert.Equal(t, 1, row.Count)
		assert.Equal(t, 0.5, row.PropA)
		assert.InDelta(t, 1.0/3.0, row.PropB, 1e-15)
		assert.Equal(t, 0.25, row.Jaccard) // 1/(2+3-1)

		row, ok = table.Lookup("2", "1")
		require.True(t, ok)
		assert.Equal(t, 0, row.Count)
		assert.Equal(t, 0.0, row.Jaccard)

		row, ok = table.Lookup("2", "2")
		require.True(t, ok)
		assert.Equal(t, 2, row.Count)
		assert.Equal(t, 1.0, row.PropA)
		assert.InDelta(t, 2.0/3.0, row.PropB, 1e-15)
		assert.InDelta(t, 2.0/3.0, row.Jaccard, 1e-15) // 2/(2+3-2)
	})

	t.Run("RowsInLexicographicOrder", func(t *testing.T) {
		var pairs [][2]label.Label
		for _, row := range table.Rows {
			pairs = append(pairs, [2]label.Label{row.LabelA, row.LabelB})
		}
		assert.Equal(t, [][2]label.Label{
			{"1", "1"}, {"1", "2"}, {"2", "1"}, {"2", "2"},
		}, pairs)
	})
}

func TestBuildInvariants(t *testing.T) {
	u := label.NewUniverse("a", "b", "c", "d", "e", "f")
	a := label.FromMap(u, "A", map[string]label.Label{
		"a": "x", "b": "x", "c": "y", "d": "y", "e": "z", "f": label.Unassigned,
	})
	b := label.FromMap(u, "B", map[string]label.Label{
		"a": "p", "b": "q", "c": "q", "d": "p", "e": label.Unassigned, "f": "p",
	})

	table, err := Build(a, b)
	require.NoError(t, err)

	t.Run("CountConservation", func(t *testing.T) {
		// a,b,c,d are assigned in both; e and f are not.
		total := 0
		for _, row := range table.Rows {
			total += row.Count
		}
		assert.Equal(t, 4, total)
	})

	t.Run("RowTotals", func(t *testing.T) {
		for _, la := range table.LabelsA {
			sum := 0
			var sizeA int
			for _, lb := range table.LabelsB {
				row, ok := table.Lookup(la, lb)
				require.True(t, ok)
				sum += row.Count
				sizeA = row.SizeA
			}
			assert.Equal(t, sizeA, sum, "row total for %q", la)
		}
	})

	t.Run("ColumnTotals", func(t *testing.T) {
		for _, lb := range table.LabelsB {
			sum := 0
			var sizeB int
			for _, la := range table.LabelsA {
				row, ok := table.Lookup(la, lb)
				require.True(t, ok)
				sum += row.Count
				sizeB = row.SizeB
			}
			assert.Equal(t, sizeB, sum, "column total for %q", lb)
		}
	})

	t.Run("DegenerateClusterRow", func(t *testing.T) {
		// Cluster z only contains e, which is unassigned in B: its row has
		// size 0 and all ratios resolve to 0 rather than failing.
		for _, lb := range table.LabelsB {
			row, ok := table.Lookup("z", lb)
			require.True(t, ok)
			assert.Equal(t, 0, row.Count)
			assert.Equal(t, 0, row.SizeA)
			assert.Equal(t, 0.0, row.PropA)
			assert.Equal(t, 0.0, row.Jaccard)
		}
	})

	t.Run("Symmetry", func(t *testing.T) {
		transposed, err := Build(b, a)
		require.NoError(t, err)

		for _, row := range table.Rows {
			tr, ok := transposed.Lookup(row.LabelB, row.LabelA)
			require.True(t, ok)
			assert.Equal(t, row.Count, tr.Count)
			assert.Equal(t, row.Jaccard, tr.Jaccard)
			assert.Equal(t, row.PropA, tr.PropB)
			assert.Equal(t, row.PropB, tr.PropA)
		}
	})
}

func TestBuildSelfComparison(t *testing.T) {
	u := label.NewUniverse("a", "b", "c")
	l := label.FromMap(u, "A", map[string]label.Label{"a": "1", "b": "1", "c": "2"})

	table, err := Build(l, l)
	require.NoError(t, err)

	for _, la := range table.LabelsA {
		for _, lb := range table.LabelsB {
			row, ok := table.Lookup(la, lb)
			require.True(t, ok)
			if la == lb {
				assert.Equal(t, 1.0, row.Jaccard)
			} else {
				assert.Equal(t, 0.0, row.Jaccard)
			}
		}
	}
}

func TestBuildErrors(t *testing.T) {
	t.Run("DifferentUniverses", func(t *testing.T) {
		a := label.FromMap(label.NewUniverse("a"), "A", map[string]label.Label{"a": "1"})
		b := label.FromMap(label.NewUniverse("a"), "B", map[string]label.Label{"a": "1"})

		_, err := Build(a, b)
		var ea *label.ErrAlignment
		require.True(t, errors.As(err, &ea))
		assert.Equal(t, "A", ea.SourceA)
		assert.Equal(t, "B", ea.SourceB)
	})

	t.Run("EmptyLabeling", func(t *testing.T) {
		u := label.NewUniverse("a")
		a := label.FromMap(u, "A", map[string]label.Label{"a": "1"})
		b := label.FromMap(u, "B", map[string]label.Label{"a": label.Unassigned})

		_, err := Build(a, b)
		var ee *label.ErrEmptyLabeling
		require.True(t, errors.As(err, &ee))
		assert.Equal(t, "B", ee.Source)
	})
}

func TestTableLookupMiss(t *testing.T) {
	_, a, b := testutil.FourEntities()
	table, err := Build(a, b)
	require.NoError(t, err)

	_, ok := table.Lookup("1", "nope")
	assert.False(t, ok)
	_, ok = table.Lookup("nope", "1")
	assert.False(t, ok)
}
