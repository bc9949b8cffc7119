package crossover

import (
	"github.com/hupe1980/crossclust/label"
)

// NodeKey identifies a cluster node by its layer position and label.
type NodeKey struct {
	Layer int
	Label label.Label
}

// Node is one cluster in the layered graph. Size is the cluster size within
// its own labeling (assigned entities only). Stability is filled in by Score.
type Node struct {
	Layer      int         `json:"layer"`
	Source     string      `json:"source"`
	Label      label.Label `json:"label"`
	Size       int         `json:"size"`
	Stability  float64     `json:"stability"`
	Degenerate bool        `json:"degenerate,omitempty"`
}

// Key returns the node's identity within the graph.
func (n Node) Key() NodeKey {
	return NodeKey{Layer: n.Layer, Label: n.Label}
}

// Edge is a directed overlap edge from a cluster in one layer to a cluster
// in the next. Zero-count edges are retained so consumers can distinguish
// "no overlap" from "absent node".
type Edge struct {
	FromLayer int         `json:"from_layer"`
	FromLabel label.Label `json:"from_label"`
	ToLayer   int         `json:"to_layer"`
	ToLabel   label.Label `json:"to_label"`
	Count     int         `json:"count"`
	PropFrom  float64     `json:"prop_from"`
	PropTo    float64     `json:"prop_to"`
	Jaccard   float64     `json:"jaccard"`
}

// Graph is the layered crossover graph. Layers lists the source tags in
// layer order; Nodes are sorted by (layer, label) and Edges by
// (from layer, from label, to label). Edges only ever connect adjacent
// layers. The ordering is fixed so serialized output is reproducible.
type Graph struct {
	Layers []string `json:"layers"`
	Nodes  []Node   `json:"nodes"`
	Edges  []Edge   `json:"edges"`

	nodeIndex map[NodeKey]int
}

// Node returns the node for a (layer, label) key.
func (g *Graph) Node(layer int, lbl label.Label) (Node, bool) {
	i, ok := g.index()[NodeKey{Layer: layer, Label: lbl}]
	if !ok {
		return Node{}, false
	}
	return g.Nodes[i], true
}

// Outgoing returns the edges leaving a node, in to-label order.
func (g *Graph) Outgoing(layer int, lbl label.Label) []Edge {
	var out []Edge
	for _, e := range g.Edges {
		if e.FromLayer == layer && e.FromLabel == lbl {
			out = append(out, e)
		}
	}
	return out
}

// Incoming returns the edges entering a node, in from-label order.
func (g *Graph) Incoming(layer int, lbl label.Label) []Edge {
	var in []Edge
	for _, e := range g.Edges {
		if e.ToLayer == layer && e.ToLabel == lbl {
			in = append(in, e)
		}
	}
	return in
}

func (g *Graph) index() map[NodeKey]int {
	if g.nodeIndex == nil {
		g.nodeIndex = make(map[NodeKey]int, len(g.Nodes))
		for i, n := range g.Nodes {
			g.nodeIndex[n.Key()] = i
		}
	}
	return g.nodeIndex
}
