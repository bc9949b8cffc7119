package snapshot

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression compresses snapshot payloads. The name is recorded in the
// snapshot header so readers pick the matching implementation.
type Compression interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
	Name() string
}

// CompressionByName returns a built-in compression by its stable name.
func CompressionByName(name string) (Compression, bool) {
	switch name {
	case "none":
		return None{}, true
	case "zstd":
		return Zstd{}, true
	case "lz4":
		return LZ4{}, true
	default:
		return nil, false
	}
}

// None stores payloads uncompressed.
type None struct{}

// Compress returns the data unchanged.
func (None) Compress(data []byte) ([]byte, error) { return data, nil }

// Decompress returns the data unchanged.
func (None) Decompress(data []byte) ([]byte, error) { return data, nil }

// Name returns "none".
func (None) Name() string { return "none" }

// Zstd compresses with Zstandard at the default level. Best ratio/speed
// trade-off for the grid-shaped JSON payloads snapshots carry.
type Zstd struct{}

// Compress encodes the whole payload as one zstd frame.
func (Zstd) Compress(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	out := enc.EncodeAll(data, nil)
	return out, enc.Close()
}

// Decompress decodes a single zstd frame.
func (Zstd) Decompress(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(data, nil)
}

// Name returns "zstd".
func (Zstd) Name() string { return "zstd" }

// LZ4 compresses with the LZ4 frame format. Fastest option when snapshots
// are written per sweep iteration.
type LZ4 struct{}

// Compress encodes the payload as an LZ4 frame.
func (LZ4) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decompress decodes an LZ4 frame.
func (LZ4) Decompress(data []byte) ([]byte, error) {
	return io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
}

// Name returns "lz4".
func (LZ4) Name() string { return "lz4" }
