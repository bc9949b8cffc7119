package label

import (
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
)

// Label is an opaque, comparable cluster token.
type Label string

// Unassigned marks an entity that is part of the universe but excluded from
// a particular partition. It never forms a cluster.
const Unassigned Label = ""

// Labeling is one immutable partition of the entity universe. Every entity
// covered by the labeling maps to exactly one Label or to Unassigned.
//
// Cluster membership is stored as Roaring Bitmaps over universe indices so
// that overlap counting reduces to bitmap intersection cardinality.
type Labeling struct {
	universe *Universe
	source   string

	entities *roaring.Bitmap          // all covered entities, including unassigned
	assigned *roaring.Bitmap          // entities with a real label
	clusters map[Label]*roaring.Bitmap // assigned entities per label
	labels   []Label                  // sorted
}

// Source returns the tag identifying where this labeling came from
// (a resolution value, a modality name, ...).
func (l *Labeling) Source() string { return l.source }

// Universe returns the entity universe this labeling was built over.
func (l *Labeling) Universe() *Universe { return l.universe }

// Labels returns the cluster labels present in this labeling, sorted
// lexicographically. Unassigned is never included.
func (l *Labeling) Labels() []Label {
	return slices.Clone(l.labels)
}

// ClusterSize returns the number of entities assigned to lbl.
func (l *Labeling) ClusterSize(lbl Label) int {
	bm, ok := l.clusters[lbl]
	if !ok {
		return 0
	}
	return int(bm.GetCardinality())
}

// EntityCount returns the number of entities covered by this labeling,
// including unassigned ones.
func (l *Labeling) EntityCount() int {
	return int(l.entities.GetCardinality())
}

// AssignedCount returns the number of entities with a real label.
func (l *Labeling) AssignedCount() int {
	return int(l.assigned.GetCardinality())
}

// Get returns the label for an entity. The second return is false when the
// entity is not covered by this labeling at all; an Unassigned entity is
// covered and returns (Unassigned, true).
func (l *Labeling) Get(entity string) (Label, bool) {
	id, ok := l.universe.Lookup(entity)
	if !ok || !l.entities.Contains(id) {
		return Unassigned, false
	}
	for _, lbl := range l.labels {
		if l.clusters[lbl].Contains(id) {
			return lbl, true
		}
	}
	return Unassigned, true
}

// Members returns the membership bitmap for lbl. The bitmap is shared with
// the labeling and must be treated as read-only.
func (l *Labeling) Members(lbl Label) *roaring.Bitmap {
	if bm, ok := l.clusters[lbl]; ok {
		return bm
	}
	return roaring.New()
}

// Assigned returns the bitmap of all assigned entities. Read-only, see Members.
func (l *Labeling) Assigned() *roaring.Bitmap { return l.assigned }

// Entities returns the bitmap of all covered entities, unassigned ones
// included. Read-only, see Members.
func (l *Labeling) Entities() *roaring.Bitmap { return l.entities }

// maxEntityID returns the highest universe index covered by the labeling
// and false when the labeling covers no entities.
func (l *Labeling) maxEntityID() (uint32, bool) {
	if l.entities.IsEmpty() {
		return 0, false
	}
	return l.entities.Maximum(), true
}

// Builder accumulates entity→label assignments and freezes them into an
// immutable Labeling.
type Builder struct {
	universe *Universe
	source   string
	assign   map[uint32]Label
}

// NewBuilder creates a Builder for a labeling over the given universe.
// Entities assigned through the builder are interned into the universe.
func NewBuilder(universe *Universe, source string) *Builder {
	return &Builder{
		universe: universe,
		source:   source,
		assign:   make(map[uint32]Label),
	}
}

// Assign records the label for an entity. Assigning the same entity again
// replaces the previous label; every entity carries exactly one label or
// Unassigned. Returns the builder for chaining.
func (b *Builder) Assign(entity string, lbl Label) *Builder {
	b.assign[b.universe.Intern(entity)] = lbl
	return b
}

// Build freezes the accumulated assignments into an immutable Labeling.
// The builder must not be reused afterwards.
func (b *Builder) Build() *Labeling {
	l := &Labeling{
		universe: b.universe,
		source:   b.source,
		entities: roaring.New(),
		assigned: roaring.New(),
		clusters: make(map[Label]*roaring.Bitmap),
	}
	for id, lbl := range b.assign {
		l.entities.Add(id)
		if lbl == Unassigned {
			continue
		}
		l.assigned.Add(id)
		bm, ok := l.clusters[lbl]
		if !ok {
			bm = roaring.New()
			l.clusters[lbl] = bm
		}
		bm.Add(id)
	}
	l.labels = make([]Label, 0, len(l.clusters))
	for lbl := range l.clusters {
		l.labels = append(l.labels, lbl)
	}
	slices.Sort(l.labels)
	return l
}

// FromMap builds a Labeling directly from an entity→label map.
func FromMap(universe *Universe, source string, assign map[string]Label) *Labeling {
	b := NewBuilder(universe, source)
	for entity, lbl := range assign {
		b.Assign(entity, lbl)
	}
	return b.Build()
}
