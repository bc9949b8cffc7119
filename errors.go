package crossclust

import (
	"errors"
	"fmt"

	"github.com/hupe1980/crossclust/label"
)

var (
	// ErrNotFound is returned when a requested labeling source does not exist.
	ErrNotFound = errors.New("labeling not found")
)

// ErrAlignment indicates that two labelings do not share a common entity
// universe, or that a labeling covers entities outside the store's baseline.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrAlignment struct {
	SourceA string
	SourceB string
	Reason  string
	cause   error
}

func (e *ErrAlignment) Error() string {
	if e.SourceB == "" {
		return fmt.Sprintf("alignment error: labeling %q: %s", e.SourceA, e.Reason)
	}
	return fmt.Sprintf("alignment error: labelings %q and %q: %s", e.SourceA, e.SourceB, e.Reason)
}

func (e *ErrAlignment) Unwrap() error { return e.cause }

// ErrEmptyLabeling indicates a labeling with zero assigned entities.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrEmptyLabeling struct {
	Source string
	cause  error
}

func (e *ErrEmptyLabeling) Error() string {
	return fmt.Sprintf("empty labeling: %q has no assigned entities", e.Source)
}

func (e *ErrEmptyLabeling) Unwrap() error { return e.cause }

// translateError maps leaf-package errors onto the root taxonomy so callers
// only ever match against crossclust error values.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, label.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	var ea *label.ErrAlignment
	if errors.As(err, &ea) {
		return &ErrAlignment{SourceA: ea.SourceA, SourceB: ea.SourceB, Reason: ea.Reason, cause: err}
	}

	var ee *label.ErrEmptyLabeling
	if errors.As(err, &ee) {
		return &ErrEmptyLabeling{Source: ee.Source, cause: err}
	}

	return err
}
