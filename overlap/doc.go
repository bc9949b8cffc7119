// Package overlap computes the complete pairwise contingency table between
// two labelings of the same entity universe.
//
// Counts are restricted to entities assigned in both labelings. The table is
// completed: every label of A is paired with every label of B, with zero
// counts for unobserved combinations, so downstream consumers can render
// dense grids without missing cells. Degenerate ratios (0/0) resolve to 0 by
// definition; they represent legitimate disjoint-cluster outcomes, not
// failures.
package overlap
