// Package crossover assembles a layered crossover graph from an ordered
// sequence of labelings and scores per-cluster stability.
//
// Each labeling becomes one layer; clusters become nodes keyed by
// (layer, label); overlap-table rows between adjacent layers become directed
// edges, zero-count rows included. Non-adjacent layers are never connected:
// the semantics of a clustering tree depend on only comparing neighboring
// granularities.
//
// Adjacent-pair tables are independent of one another and are computed on a
// worker pool; the merge is deterministic, so node and edge order never
// depends on completion order.
package crossover
