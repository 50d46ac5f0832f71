package pypes

import (
	"iter"

	"github.com/pydawan82/pypes/merge"
)

// Concat returns the lazy concatenation of seqs: every element of the first,
// then every element of the second, and so on. The element count is known
// when every input knows its own.
func Concat[T any](seqs ...Sequence[T]) Sequence[T] {
	out := Sequence[T]{
		seq: func(yield func(T) bool) {
			for _, s := range seqs {
				for v := range s.All() {
					if !yield(v) {
						return
					}
				}
			}
		},
		replay: allReplayable(seqs),
	}
	if lengths := knownLengths(seqs); lengths != nil {
		out.length = func() int {
			total := 0
			for _, l := range lengths {
				total += l()
			}
			return total
		}
	}
	return out
}

// Append returns s followed by the given sequences, lazily concatenated.
func (s Sequence[T]) Append(others ...Sequence[T]) Sequence[T] {
	return Concat(append([]Sequence[T]{s}, others...)...)
}

// Zip returns a lazy sequence of rows: the i-th row holds the i-th element
// of every input, in argument order. It stops as soon as any input runs out,
// so the result is as long as the shortest input. Zipping an already-zipped
// sequence with more inputs is done by listing them all in one call; rows
// stay flat. Zip with no arguments is empty.
func Zip[T any](seqs ...Sequence[T]) Sequence[[]T] {
	out := Sequence[[]T]{
		seq: func(yield func([]T) bool) {
			if len(seqs) == 0 {
				return
			}
			pulls := make([]func() (T, bool), len(seqs))
			for i, s := range seqs {
				next, stop := iter.Pull(s.All())
				defer stop()
				pulls[i] = next
			}
			for {
				row := make([]T, len(seqs))
				for i, pull := range pulls {
					v, ok := pull()
					if !ok {
						return
					}
					row[i] = v
				}
				if !yield(row) {
					return
				}
			}
		},
		replay: allReplayable(seqs),
	}
	if lengths := knownLengths(seqs); lengths != nil && len(lengths) > 0 {
		out.length = func() int {
			shortest := lengths[0]()
			for _, l := range lengths[1:] {
				shortest = min(shortest, l())
			}
			return shortest
		}
	}
	return out
}

// Pair holds one element from each of two zipped sequences.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip2 pairs the elements of two sequences of different element types,
// truncating at the shorter one.
func Zip2[A, B any](a Sequence[A], b Sequence[B]) Sequence[Pair[A, B]] {
	out := Sequence[Pair[A, B]]{
		seq: func(yield func(Pair[A, B]) bool) {
			nextA, stopA := iter.Pull(a.All())
			defer stopA()
			nextB, stopB := iter.Pull(b.All())
			defer stopB()
			for {
				va, ok := nextA()
				if !ok {
					return
				}
				vb, ok := nextB()
				if !ok {
					return
				}
				if !yield(Pair[A, B]{First: va, Second: vb}) {
					return
				}
			}
		},
		replay: a.replay && b.replay,
	}
	if a.length != nil && b.length != nil {
		out.length = func() int { return min(a.length(), b.length()) }
	}
	return out
}

// Chunk returns a lazy sequence of consecutive slices of s, each of length
// n except possibly the last, which holds whatever remains. Each chunk is a
// fresh slice. A non-positive n panics.
func Chunk[T any](s Sequence[T], n int) Sequence[[]T] {
	if n <= 0 {
		panic("pypes: non-positive chunk size")
	}
	out := Sequence[[]T]{
		seq: func(yield func([]T) bool) {
			chunk := make([]T, 0, n)
			for v := range s.All() {
				chunk = append(chunk, v)
				if len(chunk) == n {
					if !yield(chunk) {
						return
					}
					chunk = make([]T, 0, n)
				}
			}
			if len(chunk) > 0 {
				yield(chunk)
			}
		},
		replay: s.replay,
	}
	if s.length != nil {
		out.length = func() int { return (s.length() + n - 1) / n }
	}
	return out
}

// Windows returns a lazy sequence of sliding views over s: slices of exactly
// size elements, each starting step elements after the previous. Trailing
// elements that cannot fill a window are dropped. Each window is a fresh
// slice. A non-positive size or step panics.
func Windows[T any](s Sequence[T], size, step int) Sequence[[]T] {
	if size <= 0 {
		panic("pypes: non-positive window size")
	}
	if step <= 0 {
		panic("pypes: non-positive window step")
	}
	return Sequence[[]T]{
		seq: func(yield func([]T) bool) {
			var buf []T
			skip := 0
			for v := range s.All() {
				if skip > 0 {
					skip--
					continue
				}
				buf = append(buf, v)
				if len(buf) == size {
					window := make([]T, size)
					copy(window, buf)
					if !yield(window) {
						return
					}
					if step >= size {
						buf = buf[:0]
						skip = step - size
					} else {
						buf = append(buf[:0], buf[step:]...)
					}
				}
			}
		},
		replay: s.replay,
	}
}

// Distinct returns a lazy sequence of the elements of s with duplicates
// removed, keeping the first occurrence of each. The set of seen elements
// belongs to a single traversal; it grows with the number of distinct
// elements consumed.
func Distinct[T comparable](s Sequence[T]) Sequence[T] {
	return Sequence[T]{
		seq: func(yield func(T) bool) {
			seen := make(map[T]struct{})
			for v := range s.All() {
				if _, dup := seen[v]; dup {
					continue
				}
				seen[v] = struct{}{}
				if !yield(v) {
					return
				}
			}
		},
		replay: s.replay,
	}
}

// MergeSorted lazily merges sequences that are each sorted under less into
// one sequence sorted under less, duplicates preserved. maxVal must compare
// at least as large as every element; it marks exhausted inputs inside the
// underlying tournament tree. Merging k sequences costs O(log k)
// comparisons per element. The element count is known when every input
// knows its own. A nil less panics.
func MergeSorted[T any](less func(T, T) bool, maxVal T, seqs ...Sequence[T]) Sequence[T] {
	if less == nil {
		panic("pypes: nil comparison")
	}
	sources := make([]merge.Source[T], len(seqs))
	for i, s := range seqs {
		sources[i] = s
	}
	tree := merge.New(sources, maxVal, less)
	out := Sequence[T]{
		seq: func(yield func(T) bool) {
			for v := range tree.All() {
				if !yield(v) {
					return
				}
			}
		},
		replay: allReplayable(seqs),
	}
	if lengths := knownLengths(seqs); lengths != nil {
		out.length = func() int {
			total := 0
			for _, l := range lengths {
				total += l()
			}
			return total
		}
	}
	return out
}

func allReplayable[T any](seqs []Sequence[T]) bool {
	for _, s := range seqs {
		if !s.replay {
			return false
		}
	}
	return true
}

// knownLengths returns the length funcs of all sequences, or nil if any
// sequence cannot report its count without consuming itself.
func knownLengths[T any](seqs []Sequence[T]) []func() int {
	lengths := make([]func() int, len(seqs))
	for i, s := range seqs {
		if s.length == nil {
			return nil
		}
		lengths[i] = s.length
	}
	return lengths
}
