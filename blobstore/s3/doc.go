// Package s3 implements blobstore.BlobStore on Amazon S3.
//
// Snapshots are immutable and content-named, so plain PutObject semantics
// are sufficient; uploads stream through the s3 transfer manager. The
// package also provides CommitStore, a DynamoDB-backed pointer that records
// the latest snapshot name per dataset with compare-and-swap semantics,
// which S3 itself lacks.
package s3
