package pypes

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned by Get when the index is negative or past the
// end of the sequence, whichever way the access was resolved.
var ErrOutOfBounds = errors.New("pypes: index out of bounds")

// Get returns the element at index i. A sequence backed directly by an
// indexable collection resolves the access in constant time; Only and Skip
// re-base the index onto their source, keeping its fast path when it has
// one. Everything else advances a fresh traversal i elements and returns the
// next one, so repeated random access into a deep pipeline costs a scan per
// call. A negative i, or an i at or past the end, returns ErrOutOfBounds.
func (s Sequence[T]) Get(i int) (T, error) {
	v, ok := s.get(i)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %d", ErrOutOfBounds, i)
	}
	return v, nil
}

func (s Sequence[T]) get(i int) (T, bool) {
	if i < 0 {
		var zero T
		return zero, false
	}
	if s.at != nil {
		return s.at(i)
	}
	seen := 0
	for v := range s.All() {
		if seen == i {
			return v, true
		}
		seen++
	}
	var zero T
	return zero, false
}
