// Package crossclust quantifies how repeated clusterings of the same fixed
// set of entities relate to one another.
//
// Given two labelings (partitions) of one entity universe it computes the
// complete pairwise contingency table — counts, row/column proportions and
// Jaccard index per cluster pair. Given an ordered resolution sweep of
// labelings it assembles a layered crossover graph connecting clusters of
// adjacent resolutions and scores every cluster's stability. Crossclust does
// not cluster anything itself: labelings are produced by an external
// clustering capability and consumed here as immutable inputs.
//
// # Quick start
//
//	u := label.NewUniverse()
//	l1 := label.FromMap(u, "res-0.2", map[string]label.Label{
//	    "a": "1", "b": "1", "c": "2", "d": "2",
//	})
//	l2 := label.FromMap(u, "res-0.4", map[string]label.Label{
//	    "a": "1", "b": "2", "c": "2", "d": "2",
//	})
//
//	cc := crossclust.New(u)
//	_ = cc.Add(l1)
//	_ = cc.Add(l2)
//
//	table, _ := cc.Summarize("res-0.2", "res-0.4") // dense overlap grid
//	graph, _ := cc.BuildTree(ctx)                  // layered crossover graph
//
// Driving an external clusterer over a resolution sequence:
//
//	graph, err := cc.Sweep(ctx, func(ctx context.Context, r float64) (*label.Labeling, error) {
//	    return myClusterer.Cluster(ctx, neighborGraph, r)
//	}, []float64{0.0, 0.2, 0.4, 0.6, 0.8, 1.0})
//
// Tables and graphs are plain JSON-tagged structs; the snapshot package
// persists them to a blobstore (memory, local disk, S3, MinIO) in a
// self-describing compressed container.
//
// All computation is pure, deterministic and input-bounded: identical inputs
// produce bit-identical tables, graphs and snapshots. Emitted rows, nodes
// and edges are ordered lexicographically by label so serialized output is
// reproducible.
package crossclust
