package snapshot

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"

	"github.com/hupe1980/crossclust/codec"
)

// Container layout (little endian):
//
//	magic    [4]byte  "CXG0"
//	version  uint16
//	kind     uint8    (1 = overlap table, 2 = crossover graph)
//	codec    uint8 length + bytes
//	comp     uint8 length + bytes
//	payload  (compressed encoded value)
//	crc32    uint32   IEEE, over the payload bytes as stored

var (
	magic         = [4]byte{'C', 'X', 'G', '0'}
	formatVersion = uint16(1)
)

// Snapshot kinds.
const (
	KindTable uint8 = 1
	KindGraph uint8 = 2
)

var (
	// ErrInvalidMagic is returned when a blob is not a crossclust snapshot.
	ErrInvalidMagic = errors.New("invalid snapshot magic")
	// ErrInvalidVersion is returned for snapshot versions this build cannot read.
	ErrInvalidVersion = errors.New("unsupported snapshot version")
	// ErrWrongKind is returned when a snapshot holds a different value kind
	// than the caller asked for.
	ErrWrongKind = errors.New("snapshot holds a different kind of value")
)

// ErrChecksumMismatch indicates payload corruption detected on read.
type ErrChecksumMismatch struct {
	Expected uint32
	Actual   uint32
}

func (e *ErrChecksumMismatch) Error() string {
	return fmt.Sprintf("snapshot checksum mismatch: expected 0x%08x, got 0x%08x", e.Expected, e.Actual)
}

// encode serializes v into a self-describing snapshot blob.
func encode(kind uint8, v any, c codec.Codec, comp Compression) ([]byte, error) {
	encoded, err := c.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("snapshot: encode payload: %w", err)
	}
	payload, err := comp.Compress(encoded)
	if err != nil {
		return nil, fmt.Errorf("snapshot: compress payload: %w", err)
	}

	codecName := c.Name()
	compName := comp.Name()
	buf := make([]byte, 0, 4+2+1+1+len(codecName)+1+len(compName)+len(payload)+4)
	buf = append(buf, magic[:]...)
	buf = binary.LittleEndian.AppendUint16(buf, formatVersion)
	buf = append(buf, kind)
	buf = append(buf, uint8(len(codecName)))
	buf = append(buf, codecName...)
	buf = append(buf, uint8(len(compName)))
	buf = append(buf, compName...)
	buf = append(buf, payload...)
	buf = binary.LittleEndian.AppendUint32(buf, crc32.ChecksumIEEE(payload))
	return buf, nil
}

// decode parses a snapshot blob, verifies its checksum and decodes the
// payload into v.
func decode(data []byte, kind uint8, v any) error {
	if len(data) < 4+2+1+1 || [4]byte(data[:4]) != magic {
		return ErrInvalidMagic
	}
	off := 4

	version := binary.LittleEndian.Uint16(data[off:])
	off += 2
	if version != formatVersion {
		return fmt.Errorf("%w: %d", ErrInvalidVersion, version)
	}

	gotKind := data[off]
	off++
	if gotKind != kind {
		return fmt.Errorf("%w: got kind %d, want %d", ErrWrongKind, gotKind, kind)
	}

	codecName, off, err := readName(data, off)
	if err != nil {
		return err
	}
	compName, off, err := readName(data, off)
	if err != nil {
		return err
	}

	if len(data)-off < 4 {
		return ErrInvalidMagic
	}
	payload := data[off : len(data)-4]
	expected := binary.LittleEndian.Uint32(data[len(data)-4:])
	if actual := crc32.ChecksumIEEE(payload); actual != expected {
		return &ErrChecksumMismatch{Expected: expected, Actual: actual}
	}

	comp, ok := CompressionByName(compName)
	if !ok {
		return fmt.Errorf("snapshot: unknown compression %q", compName)
	}
	c, ok := codec.ByName(codecName)
	if !ok {
		return fmt.Errorf("snapshot: unknown codec %q", codecName)
	}

	encoded, err := comp.Decompress(payload)
	if err != nil {
		return fmt.Errorf("snapshot: decompress payload: %w", err)
	}
	if err := c.Unmarshal(encoded, v); err != nil {
		return fmt.Errorf("snapshot: decode payload: %w", err)
	}
	return nil
}

func readName(data []byte, off int) (string, int, error) {
	if off >= len(data) {
		return "", 0, ErrInvalidMagic
	}
	n := int(data[off])
	off++
	if off+n > len(data) {
		return "", 0, ErrInvalidMagic
	}
	return string(data[off : off+n]), off + n, nil
}
