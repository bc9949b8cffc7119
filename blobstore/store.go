package blobstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations must return an error that satisfies
// errors.Is(err, ErrNotFound).
var ErrNotFound = errors.New("blob not found")

// BlobStore stores immutable snapshot blobs by name. Names may contain
// slashes; implementations treat them as opaque keys.
type BlobStore interface {
	// Put writes a blob atomically, replacing any existing blob of that name.
	Put(ctx context.Context, name string, data []byte) error

	// Get reads a whole blob. Returns ErrNotFound if the blob does not exist.
	Get(ctx context.Context, name string) ([]byte, error)

	// Delete removes a blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, name string) error

	// List returns the names of all blobs with the given prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)
}
