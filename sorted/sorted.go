package sorted

import (
	"iter"

	"github.com/google/btree"
)

const defaultDegree = 2

// Set is a mutable ordered collection of unique elements under a caller
// supplied ordering. It is a sequence source: All hands out a fresh
// ascending traversal on every call and Len is constant-time, so a set
// wrapped with pypes.From yields a replayable sequence with a free Count.
//
// A Set is not safe for concurrent use.
type Set[T any] struct {
	tree *btree.BTreeG[T]
	less func(T, T) bool
}

// Option configures a Set.
type Option func(*options)

type options struct {
	degree int
}

// WithDegree sets the branching factor of the backing B-tree. The default
// suits small to medium sets; raise it for very large ones.
func WithDegree(degree int) Option {
	return func(o *options) {
		o.degree = degree
	}
}

// New returns an empty Set ordered by less. Elements a and b are considered
// equal when neither less(a, b) nor less(b, a); adding an equal element
// replaces the existing one. A nil less panics.
func New[T any](less func(T, T) bool, opts ...Option) *Set[T] {
	if less == nil {
		panic("sorted: nil comparison")
	}
	o := options{degree: defaultDegree}
	for _, opt := range opts {
		opt(&o)
	}
	return &Set[T]{
		tree: btree.NewG(o.degree, btree.LessFunc[T](less)),
		less: less,
	}
}

// Add inserts v, replacing an equal element if one is present. It reports
// whether v was newly added rather than a replacement.
func (s *Set[T]) Add(v T) bool {
	_, replaced := s.tree.ReplaceOrInsert(v)
	return !replaced
}

// Delete removes the element equal to v, reporting whether one was present.
func (s *Set[T]) Delete(v T) bool {
	_, found := s.tree.Delete(v)
	return found
}

// Has reports whether an element equal to v is present.
func (s *Set[T]) Has(v T) bool {
	return s.tree.Has(v)
}

// Len returns the number of elements. It is constant-time.
func (s *Set[T]) Len() int {
	return s.tree.Len()
}

// Min returns the smallest element, if any.
func (s *Set[T]) Min() (T, bool) {
	return s.tree.Min()
}

// Max returns the largest element, if any.
func (s *Set[T]) Max() (T, bool) {
	return s.tree.Max()
}

// All returns an ascending traversal of the set. Each call starts a fresh
// pass over the elements present at that moment; mutating the set during a
// pass is not supported.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.tree.Ascend(func(v T) bool {
			return yield(v)
		})
	}
}

// Descending returns a traversal of the set from largest to smallest,
// under the same rules as All.
func (s *Set[T]) Descending() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.tree.Descend(func(v T) bool {
			return yield(v)
		})
	}
}
