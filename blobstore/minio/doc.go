// Package minio implements blobstore.BlobStore for MinIO and other
// S3-compatible object stores via the native MinIO client.
//
// Prefer this backend for self-hosted deployments; use blobstore/s3 when
// running against AWS with its credential chain and transfer manager.
package minio
