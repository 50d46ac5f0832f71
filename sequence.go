package pypes

import (
	"iter"
	"slices"
)

// Source is anything that can hand out its elements as a sequence. Each call
// to All must return a fresh traversal; how many times fresh traversals can
// be obtained is the source's contract (see From and Once).
type Source[T any] interface {
	All() iter.Seq[T]
}

// Counter is an optional capability of sources that know their element count
// without consuming themselves. From detects it and wires the count into
// Count.
type Counter interface {
	Len() int
}

// Sequence is a lazy view over an ordered series of elements. It never
// stores elements; every traversal pulls them from the underlying source
// again. Combinator methods and the package-level combinator functions build
// new Sequences that wrap their inputs, and nothing is pulled until a
// terminal operation (ForEach, Reduce, Collect, Count, Get, ...) drives the
// chain.
//
// A Sequence value carries, besides the traversal itself, the capabilities
// the wrapped source happens to have: an O(1) element count and O(1) random
// access where they are provable, and whether fresh traversals are allowed.
// Combinators propagate capabilities where the operation preserves them and
// drop them where it cannot.
//
// The zero Sequence is empty.
type Sequence[T any] struct {
	seq    iter.Seq[T]
	length func() int       // nil when the count is unknown without consuming
	at     func(int) (T, bool) // nil unless random access is available
	replay bool
}

// All returns the traversal of s for use with range. Each range over the
// result starts a fresh pass; whether a second pass yields anything depends
// on the root source (see Replayable).
func (s Sequence[T]) All() iter.Seq[T] {
	if s.seq == nil {
		return func(func(T) bool) {}
	}
	return s.seq
}

// Replayable reports whether every source under s allows more than one full
// traversal. Consuming a non-replayable sequence twice is not an error; the
// second pass silently yields nothing, or worse, a remainder. Callers that
// need a second pass over single-pass input must Collect first.
func (s Sequence[T]) Replayable() bool {
	return s.replay
}

// FromSlice returns a replayable sequence over items. The slice is not
// copied; it backs the sequence directly, which makes indexed access via Get
// constant-time.
func FromSlice[T any](items []T) Sequence[T] {
	return Sequence[T]{
		seq:    slices.Values(items),
		length: func() int { return len(items) },
		at: func(i int) (T, bool) {
			if i < len(items) {
				return items[i], true
			}
			var zero T
			return zero, false
		},
		replay: true,
	}
}

// From returns a sequence over the elements of src. The source is consulted
// again on every traversal, so a replayable source (a fixed collection, a
// sorted set, a store view) yields a replayable sequence. If src also
// implements Counter its count is used for Count. A nil src panics.
func From[T any](src Source[T]) Sequence[T] {
	if src == nil {
		panic("pypes: nil source")
	}
	s := Sequence[T]{
		seq: func(yield func(T) bool) {
			for v := range src.All() {
				if !yield(v) {
					return
				}
			}
		},
		replay: true,
	}
	if c, ok := src.(Counter); ok {
		s.length = c.Len
	}
	return s
}

// FromSeq adopts seq as a replayable sequence. The caller warrants that seq
// is stateless: every invocation must replay the same elements. For a
// sequence that can be consumed only once, use Once. A nil seq panics.
func FromSeq[T any](seq iter.Seq[T]) Sequence[T] {
	if seq == nil {
		panic("pypes: nil sequence")
	}
	return Sequence[T]{seq: seq, replay: true}
}

// Once adopts seq as a single-pass sequence: the first full traversal
// consumes it and later traversals yield nothing, or a remainder if the
// first stopped early. Downstream combinators inherit the single-pass
// marking (see Replayable). A nil seq panics.
func Once[T any](seq iter.Seq[T]) Sequence[T] {
	if seq == nil {
		panic("pypes: nil sequence")
	}
	return Sequence[T]{seq: seq, replay: false}
}

// FromChan returns a single-pass sequence that receives from ch until it is
// closed. A nil ch panics.
func FromChan[T any](ch <-chan T) Sequence[T] {
	if ch == nil {
		panic("pypes: nil channel")
	}
	return Sequence[T]{
		seq: func(yield func(T) bool) {
			for v := range ch {
				if !yield(v) {
					return
				}
			}
		},
		replay: false,
	}
}

// Empty returns a replayable sequence with no elements.
func Empty[T any]() Sequence[T] {
	return Sequence[T]{
		seq:    func(func(T) bool) {},
		length: func() int { return 0 },
		at: func(int) (T, bool) {
			var zero T
			return zero, false
		},
		replay: true,
	}
}
