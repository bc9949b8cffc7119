package overlap

import (
	"slices"

	"github.com/hupe1980/crossclust/label"
)

// Row is one cell of the completed contingency table: the overlap between
// one cluster of labeling A and one cluster of labeling B.
//
// SizeA is the number of A-cluster entities that are assigned in B (the row
// total), so that summing Count over a row reproduces SizeA exactly; SizeB
// is the symmetric column total.
type Row struct {
	LabelA  label.Label `json:"label_a"`
	LabelB  label.Label `json:"label_b"`
	Count   int         `json:"count"`
	SizeA   int         `json:"size_a"`
	SizeB   int         `json:"size_b"`
	PropA   float64     `json:"prop_a"`
	PropB   float64     `json:"prop_b"`
	Jaccard float64     `json:"jaccard"`
}

// Table is the completed contingency table between two labelings.
//
// Rows form the full LabelsA × LabelsB grid in lexicographic order
// (LabelA-major), which makes emitted output bit-for-bit reproducible.
type Table struct {
	SourceA string        `json:"source_a"`
	SourceB string        `json:"source_b"`
	LabelsA []label.Label `json:"labels_a"`
	LabelsB []label.Label `json:"labels_b"`
	Rows    []Row         `json:"rows"`
}

// Lookup returns the row for a (labelA, labelB) pair. The grid layout is
// positional, so lookups survive serialization round-trips.
func (t *Table) Lookup(la, lb label.Label) (Row, bool) {
	ia, okA := slices.BinarySearch(t.LabelsA, la)
	ib, okB := slices.BinarySearch(t.LabelsB, lb)
	if !okA || !okB {
		return Row{}, false
	}
	return t.Rows[ia*len(t.LabelsB)+ib], true
}

// Build computes the completed contingency table between labelings a and b.
//
// It fails with *label.ErrAlignment when the labelings were built over
// different universes and with *label.ErrEmptyLabeling when either labeling
// has zero assigned entities.
func Build(a, b *label.Labeling) (*Table, error) {
	if a.Universe() != b.Universe() {
		return nil, &label.ErrAlignment{
			SourceA: a.Source(),
			SourceB: b.Source(),
			Reason:  "labelings were built over different universes",
		}
	}
	if a.AssignedCount() == 0 {
		return nil, &label.ErrEmptyLabeling{Source: a.Source()}
	}
	if b.AssignedCount() == 0 {
		return nil, &label.ErrEmptyLabeling{Source: b.Source()}
	}

	labelsA := a.Labels()
	labelsB := b.Labels()

	// Row/column totals over the post-filter entity set: only entities
	// assigned in the other labeling contribute.
	sizeA := make([]int, len(labelsA))
	for i, la := range labelsA {
		sizeA[i] = int(a.Members(la).AndCardinality(b.Assigned()))
	}
	sizeB := make([]int, len(labelsB))
	for j, lb := range labelsB {
		sizeB[j] = int(b.Members(lb).AndCardinality(a.Assigned()))
	}

	rows := make([]Row, 0, len(labelsA)*len(labelsB))
	for i, la := range labelsA {
		members := a.Members(la)
		for j, lb := range labelsB {
			count := int(members.AndCardinality(b.Members(lb)))
			rows = append(rows, Row{
				LabelA:  la,
				LabelB:  lb,
				Count:   count,
				SizeA:   sizeA[i],
				SizeB:   sizeB[j],
				PropA:   ratio(count, sizeA[i]),
				PropB:   ratio(count, sizeB[j]),
				Jaccard: ratio(count, sizeA[i]+sizeB[j]-count),
			})
		}
	}

	return &Table{
		SourceA: a.Source(),
		SourceB: b.Source(),
		LabelsA: labelsA,
		LabelsB: labelsB,
		Rows:    rows,
	}, nil
}

// ratio divides count by total, resolving the 0/0 case to 0 by definition.
func ratio(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total)
}
