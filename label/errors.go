package label

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a requested source tag is not in the store.
	ErrNotFound = errors.New("labeling not found")

	// ErrDuplicateSource is returned when a source tag is added twice.
	ErrDuplicateSource = errors.New("duplicate labeling source")
)

// ErrAlignment indicates that two labelings (or a labeling and a store) do
// not share a common entity universe.
type ErrAlignment struct {
	SourceA string
	SourceB string
	Reason  string
}

func (e *ErrAlignment) Error() string {
	if e.SourceB == "" {
		return fmt.Sprintf("labeling %q is not aligned: %s", e.SourceA, e.Reason)
	}
	return fmt.Sprintf("labelings %q and %q are not aligned: %s", e.SourceA, e.SourceB, e.Reason)
}

// ErrEmptyLabeling indicates a labeling with zero assigned entities.
type ErrEmptyLabeling struct {
	Source string
}

func (e *ErrEmptyLabeling) Error() string {
	return fmt.Sprintf("labeling %q has no assigned entities", e.Source)
}
