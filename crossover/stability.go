package crossover

// Score annotates every node of g with a stability value in [0, 1].
//
// A node's in-score is the best single-cluster fraction of its entities
// explainable by one earlier-layer cluster (max PropTo over incoming edges);
// its out-score is the symmetric max PropFrom over outgoing edges. Interior
// nodes take the mean of both; first-layer nodes use the out-score only and
// last-layer nodes the in-score only. Ties for the max share the same value,
// so the result is deterministic.
//
// A node with no entities or no incident direction at all (e.g. the only
// layer of a single-labeling graph) is flagged degenerate with stability 0
// rather than failing.
func Score(g *Graph) {
	inBest := make(map[NodeKey]float64)
	outBest := make(map[NodeKey]float64)
	for _, e := range g.Edges {
		from := NodeKey{Layer: e.FromLayer, Label: e.FromLabel}
		if e.PropFrom > outBest[from] {
			outBest[from] = e.PropFrom
		}
		to := NodeKey{Layer: e.ToLayer, Label: e.ToLabel}
		if e.PropTo > inBest[to] {
			inBest[to] = e.PropTo
		}
	}

	last := len(g.Layers) - 1
	for i := range g.Nodes {
		n := &g.Nodes[i]
		key := n.Key()
		hasIn := n.Layer > 0
		hasOut := n.Layer < last

		switch {
		case n.Size == 0 || (!hasIn && !hasOut):
			n.Stability = 0
			n.Degenerate = true
		case hasIn && hasOut:
			n.Stability = (inBest[key] + outBest[key]) / 2
		case hasIn:
			n.Stability = inBest[key]
		default:
			n.Stability = outBest[key]
		}
	}
}
