package snapshot

import (
	"context"

	"github.com/hupe1980/crossclust/blobstore"
	"github.com/hupe1980/crossclust/codec"
	"github.com/hupe1980/crossclust/crossover"
	"github.com/hupe1980/crossclust/overlap"
)

type options struct {
	codec       codec.Codec
	compression Compression
}

// Option configures snapshot writes. Reads are self-describing and need no
// configuration.
type Option func(*options)

// WithCodec sets the codec recorded in and used for new snapshots.
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompression sets the compression recorded in and used for new
// snapshots. If nil is passed, payloads are stored uncompressed.
func WithCompression(c Compression) Option {
	return func(o *options) {
		if c == nil {
			c = None{}
		}
		o.compression = c
	}
}

func applyOptions(opts []Option) options {
	o := options{
		codec:       codec.Default,
		compression: None{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WriteTable persists an overlap table under name.
func WriteTable(ctx context.Context, store blobstore.BlobStore, name string, t *overlap.Table, opts ...Option) error {
	o := applyOptions(opts)
	data, err := encode(KindTable, t, o.codec, o.compression)
	if err != nil {
		return err
	}
	return store.Put(ctx, name, data)
}

// ReadTable loads an overlap table written by WriteTable.
func ReadTable(ctx context.Context, store blobstore.BlobStore, name string) (*overlap.Table, error) {
	data, err := store.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	var t overlap.Table
	if err := decode(data, KindTable, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// WriteGraph persists a crossover graph under name.
func WriteGraph(ctx context.Context, store blobstore.BlobStore, name string, g *crossover.Graph, opts ...Option) error {
	o := applyOptions(opts)
	data, err := encode(KindGraph, g, o.codec, o.compression)
	if err != nil {
		return err
	}
	return store.Put(ctx, name, data)
}

// ReadGraph loads a crossover graph written by WriteGraph.
func ReadGraph(ctx context.Context, store blobstore.BlobStore, name string) (*crossover.Graph, error) {
	data, err := store.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	var g crossover.Graph
	if err := decode(data, KindGraph, &g); err != nil {
		return nil, err
	}
	return &g, nil
}
