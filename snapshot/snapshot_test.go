package snapshot

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/crossclust/blobstore"
	"github.com/hupe1980/crossclust/codec"
	"github.com/hupe1980/crossclust/crossover"
	"github.com/hupe1980/crossclust/overlap"
	"github.com/hupe1980/crossclust/testutil"
)

func buildFixtures(t *testing.T) (*overlap.Table, *crossover.Graph) {
	t.Helper()

	_, a, b := testutil.FourEntities()
	table, err := overlap.Build(a, b)
	require.NoError(t, err)

	_, chain := testutil.NestedChain()
	graph, err := crossover.NewTreeBuilder().Build(context.Background(), chain)
	require.NoError(t, err)

	return table, graph
}

func TestSnapshotRoundTrip(t *testing.T) {
	table, graph := buildFixtures(t)
	ctx := context.Background()

	codecs := []codec.Codec{codec.JSON{}, codec.GoJSON{}}
	compressions := []Compression{None{}, Zstd{}, LZ4{}}

	for _, c := range codecs {
		for _, comp := range compressions {
			t.Run(c.Name()+"/"+comp.Name(), func(t *testing.T) {
				store := blobstore.NewMemoryStore()

				require.NoError(t, WriteTable(ctx, store, "table", table,
					WithCodec(c), WithCompression(comp)))
				gotTable, err := ReadTable(ctx, store, "table")
				require.NoError(t, err)
				assert.Equal(t, table, gotTable)

				require.NoError(t, WriteGraph(ctx, store, "graph", graph,
					WithCodec(c), WithCompression(comp)))
				gotGraph, err := ReadGraph(ctx, store, "graph")
				require.NoError(t, err)
				assert.Equal(t, graph.Layers, gotGraph.Layers)
				assert.Equal(t, graph.Nodes, gotGraph.Nodes)
				assert.Equal(t, graph.Edges, gotGraph.Edges)
			})
		}
	}
}

func TestSnapshotDeterministicBytes(t *testing.T) {
	table, _ := buildFixtures(t)
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	require.NoError(t, WriteTable(ctx, store, "one", table, WithCompression(Zstd{})))
	require.NoError(t, WriteTable(ctx, store, "two", table, WithCompression(Zstd{})))

	one, err := store.Get(ctx, "one")
	require.NoError(t, err)
	two, err := store.Get(ctx, "two")
	require.NoError(t, err)
	assert.Equal(t, one, two)
}

func TestSnapshotCorruption(t *testing.T) {
	table, _ := buildFixtures(t)
	ctx := context.Background()

	t.Run("ChecksumMismatch", func(t *testing.T) {
		store := blobstore.NewMemoryStore()
		require.NoError(t, WriteTable(ctx, store, "table", table))

		data, err := store.Get(ctx, "table")
		require.NoError(t, err)
		data[len(data)-5] ^= 0xff // flip a payload byte
		require.NoError(t, store.Put(ctx, "table", data))

		_, err = ReadTable(ctx, store, "table")
		var cm *ErrChecksumMismatch
		assert.True(t, errors.As(err, &cm))
	})

	t.Run("InvalidMagic", func(t *testing.T) {
		store := blobstore.NewMemoryStore()
		require.NoError(t, store.Put(ctx, "junk", []byte("not a snapshot")))

		_, err := ReadTable(ctx, store, "junk")
		assert.ErrorIs(t, err, ErrInvalidMagic)
	})

	t.Run("WrongKind", func(t *testing.T) {
		store := blobstore.NewMemoryStore()
		require.NoError(t, WriteTable(ctx, store, "table", table))

		_, err := ReadGraph(ctx, store, "table")
		assert.ErrorIs(t, err, ErrWrongKind)
	})

	t.Run("Truncated", func(t *testing.T) {
		store := blobstore.NewMemoryStore()
		require.NoError(t, store.Put(ctx, "short", []byte("CX")))

		_, err := ReadTable(ctx, store, "short")
		assert.ErrorIs(t, err, ErrInvalidMagic)
	})

	t.Run("NotFound", func(t *testing.T) {
		store := blobstore.NewMemoryStore()
		_, err := ReadTable(ctx, store, "missing")
		assert.ErrorIs(t, err, blobstore.ErrNotFound)
	})
}

func TestCompressionByName(t *testing.T) {
	for _, name := range []string{"none", "zstd", "lz4"} {
		c, ok := CompressionByName(name)
		require.True(t, ok)
		assert.Equal(t, name, c.Name())
	}
	_, ok := CompressionByName("snappy")
	assert.False(t, ok)
}
