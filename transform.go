package pypes

import "github.com/pydawan82/pypes/optional"

// Map returns a lazy sequence of fn applied to each element of s, in order.
// fn is not called here; it runs once per element, each time that element is
// consumed from the result. The element count is preserved, so the result
// keeps s's constant-time Count capability. A nil fn panics.
func Map[T, U any](s Sequence[T], fn func(T) U) Sequence[U] {
	if fn == nil {
		panic("pypes: nil mapping")
	}
	return Sequence[U]{
		seq: func(yield func(U) bool) {
			for v := range s.All() {
				if !yield(fn(v)) {
					return
				}
			}
		},
		length: s.length,
		replay: s.replay,
	}
}

// Present unwraps a sequence of optional values, yielding the held value of
// each present element and dropping the empty ones.
func Present[T any](s Sequence[optional.Value[T]]) Sequence[T] {
	return Sequence[T]{
		seq: func(yield func(T) bool) {
			for o := range s.All() {
				if v, ok := o.Get(); ok {
					if !yield(v) {
						return
					}
				}
			}
		},
		replay: s.replay,
	}
}

// Filter returns a lazy sequence of the elements of s that satisfy pred,
// order preserved. A nil pred panics.
func (s Sequence[T]) Filter(pred func(T) bool) Sequence[T] {
	if pred == nil {
		panic("pypes: nil predicate")
	}
	return Sequence[T]{
		seq: func(yield func(T) bool) {
			for v := range s.All() {
				if pred(v) {
					if !yield(v) {
						return
					}
				}
			}
		},
		replay: s.replay,
	}
}

// DropWhile returns a lazy sequence that skips the leading elements of s for
// which pred holds and then yields everything else unconditionally. Once an
// element fails pred, pred is never consulted again: later elements pass
// through even if pred would hold for them. The dropping flag belongs to a
// single traversal, so a fresh pass over a replayable sequence drops again
// from the start. A nil pred panics.
func (s Sequence[T]) DropWhile(pred func(T) bool) Sequence[T] {
	if pred == nil {
		panic("pypes: nil predicate")
	}
	return Sequence[T]{
		seq: func(yield func(T) bool) {
			dropping := true
			for v := range s.All() {
				if dropping {
					if pred(v) {
						continue
					}
					dropping = false
				}
				if !yield(v) {
					return
				}
			}
		},
		replay: s.replay,
	}
}

// TakeWhile returns a lazy sequence that yields elements of s while pred
// holds and stops permanently at the first failure; the failing element is
// not yielded and nothing after it is pulled. A nil pred panics.
func (s Sequence[T]) TakeWhile(pred func(T) bool) Sequence[T] {
	if pred == nil {
		panic("pypes: nil predicate")
	}
	return Sequence[T]{
		seq: func(yield func(T) bool) {
			for v := range s.All() {
				if !pred(v) {
					return
				}
				if !yield(v) {
					return
				}
			}
		},
		replay: s.replay,
	}
}

// Only returns a lazy prefix of at most n elements of s. A negative n counts
// as zero. Indexed access inside the prefix bound-checks against n and then
// resolves against s directly, inheriting s's fast path when it has one.
func (s Sequence[T]) Only(n int) Sequence[T] {
	src := s
	out := Sequence[T]{
		seq: func(yield func(T) bool) {
			if n <= 0 {
				return
			}
			count := 0
			for v := range src.All() {
				if !yield(v) {
					return
				}
				count++
				if count >= n {
					return
				}
			}
		},
		at: func(i int) (T, bool) {
			if i >= n {
				var zero T
				return zero, false
			}
			return src.get(i)
		},
		replay: src.replay,
	}
	if src.length != nil {
		out.length = func() int { return min(max(n, 0), src.length()) }
	}
	return out
}

// Skip returns a lazy sequence that discards the first n elements of s and
// yields the rest; fewer than n elements means an empty result. A negative
// n counts as zero. Indexed access re-bases onto s at i+n, inheriting s's
// fast path when it has one.
func (s Sequence[T]) Skip(n int) Sequence[T] {
	src := s
	out := Sequence[T]{
		seq: func(yield func(T) bool) {
			skipped := 0
			for v := range src.All() {
				if skipped < n {
					skipped++
					continue
				}
				if !yield(v) {
					return
				}
			}
		},
		at: func(i int) (T, bool) {
			return src.get(i + max(n, 0))
		},
		replay: src.replay,
	}
	if src.length != nil {
		out.length = func() int { return max(src.length()-max(n, 0), 0) }
	}
	return out
}

// Peek returns a lazy sequence identical to s that additionally calls action
// on each element as it is consumed. Useful for observing a pipeline without
// disturbing it. A nil action panics.
func (s Sequence[T]) Peek(action func(T)) Sequence[T] {
	if action == nil {
		panic("pypes: nil action")
	}
	return Sequence[T]{
		seq: func(yield func(T) bool) {
			for v := range s.All() {
				action(v)
				if !yield(v) {
					return
				}
			}
		},
		length: s.length,
		replay: s.replay,
	}
}
