// Package label holds the entity universe and the immutable labelings
// (partitions) computed over it.
//
// A Universe interns opaque entity identifiers to dense indices so that
// cluster membership can be stored as Roaring Bitmaps. A Labeling is one
// partition of the universe into clusters; entities may be left out of a
// partition via the Unassigned sentinel. A Store collects labelings that
// share a single universe and rejects misaligned inputs early.
//
// Labelings are immutable once built. Construct them with a Builder (or
// FromMap) and treat them as value objects afterwards.
package label
