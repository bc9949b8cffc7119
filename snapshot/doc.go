// Package snapshot persists overlap tables and crossover graphs as
// self-describing blobs.
//
// Each snapshot records its codec and compression by name in a small binary
// header and carries a CRC32 trailer over the payload, so files written
// under one configuration are always readable under another and storage
// corruption is detected on read. The checksum guards against accidental
// corruption only; it is not tamper-proof.
//
// Snapshots are immutable; overwriting a name replaces the blob wholesale.
package snapshot
