// Package blobstore provides the storage abstraction behind snapshot export.
//
// Snapshots of overlap tables and crossover graphs are small, immutable,
// whole-object blobs, so the interface is Put/Get by name rather than a
// streaming or range-read API. Implementations must be safe for concurrent
// use.
//
// # Built-in implementations
//
//   - MemoryStore: in-memory, for tests and ephemeral pipelines
//   - LocalStore:  local filesystem with atomic writes
//   - s3.Store:    Amazon S3 (plus a DynamoDB-backed latest-snapshot pointer)
//   - minio.Store: MinIO and other S3-compatible object stores
package blobstore
