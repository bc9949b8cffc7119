package label

import (
	"fmt"
	"slices"
)

// Store is a named, ordered collection of labelings sharing one entity
// universe. The universe baseline is fixed either explicitly at construction
// or by the first labeling added; later labelings must stay within it.
//
// Store is a plain lookup structure with no side effects; it is not safe for
// concurrent mutation.
type Store struct {
	universe  *Universe
	baseline  uint32 // number of universe entities when the baseline was fixed
	fixed     bool
	order     []string
	labelings map[string]*Labeling
}

// NewStore creates an empty store. If universe is non-nil the entity
// baseline is fixed to its current contents; otherwise the first labeling
// added establishes both universe and baseline.
func NewStore(universe *Universe) *Store {
	s := &Store{
		labelings: make(map[string]*Labeling),
	}
	if universe != nil {
		s.universe = universe
		s.baseline = uint32(universe.Len())
		s.fixed = true
	}
	return s
}

// Add registers a labeling under its source tag.
//
// It fails with *ErrAlignment when the labeling was built over a different
// universe or covers entities outside the established baseline, and with
// ErrDuplicateSource when the source tag is already registered.
func (s *Store) Add(l *Labeling) error {
	if _, ok := s.labelings[l.Source()]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateSource, l.Source())
	}

	if !s.fixed {
		s.universe = l.Universe()
		s.baseline = uint32(l.Universe().Len())
		s.fixed = true
	} else {
		if l.Universe() != s.universe {
			return &ErrAlignment{SourceA: l.Source(), Reason: "labeling was built over a different universe"}
		}
		if max, ok := l.maxEntityID(); ok && max >= s.baseline {
			return &ErrAlignment{
				SourceA: l.Source(),
				Reason:  fmt.Sprintf("entity %q is outside the established universe", s.universe.Name(max)),
			}
		}
	}

	s.order = append(s.order, l.Source())
	s.labelings[l.Source()] = l
	return nil
}

// Get returns the labeling registered under source.
func (s *Store) Get(source string) (*Labeling, error) {
	l, ok := s.labelings[source]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, source)
	}
	return l, nil
}

// Sources returns the registered source tags in registration order.
func (s *Store) Sources() []string {
	return slices.Clone(s.order)
}

// Len returns the number of registered labelings.
func (s *Store) Len() int { return len(s.labelings) }

// Universe returns the store's universe, or nil before the baseline is fixed.
func (s *Store) Universe() *Universe { return s.universe }
