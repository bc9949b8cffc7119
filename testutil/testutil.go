package testutil

import (
	"github.com/hupe1980/crossclust/label"
)

// FourEntities returns the two-labeling scenario over entities a..d:
//
//	A: a→1 b→1 c→2 d→2
//	B: a→1 b→2 c→2 d→2
//
// Its completed overlap table is small enough to verify cell by cell.
func FourEntities() (u *label.Universe, a, b *label.Labeling) {
	u = label.NewUniverse("a", "b", "c", "d")
	a = label.FromMap(u, "A", map[string]label.Label{
		"a": "1", "b": "1", "c": "2", "d": "2",
	})
	b = label.FromMap(u, "B", map[string]label.Label{
		"a": "1", "b": "2", "c": "2", "d": "2",
	})
	return u, a, b
}

// NestedChain returns a perfectly nested three-layer resolution chain over
// eight entities e1..e8:
//
//	res-0.0: one cluster {e1..e8}
//	res-0.5: {e1..e4} {e5..e8}
//	res-1.0: {e1,e2} {e3,e4} {e5,e6} {e7,e8}
//
// Every cluster splits cleanly in two at the next layer, so stability values
// are exact: 0.5 for the root, 0.75 for the middle layer, 1.0 for leaves.
func NestedChain() (u *label.Universe, chain []*label.Labeling) {
	u = label.NewUniverse("e1", "e2", "e3", "e4", "e5", "e6", "e7", "e8")

	l0 := label.FromMap(u, "res-0.0", map[string]label.Label{
		"e1": "0", "e2": "0", "e3": "0", "e4": "0",
		"e5": "0", "e6": "0", "e7": "0", "e8": "0",
	})
	l1 := label.FromMap(u, "res-0.5", map[string]label.Label{
		"e1": "0", "e2": "0", "e3": "0", "e4": "0",
		"e5": "1", "e6": "1", "e7": "1", "e8": "1",
	})
	l2 := label.FromMap(u, "res-1.0", map[string]label.Label{
		"e1": "0", "e2": "0", "e3": "1", "e4": "1",
		"e5": "2", "e6": "2", "e7": "3", "e8": "3",
	})
	return u, []*label.Labeling{l0, l1, l2}
}
