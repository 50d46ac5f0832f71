package pypes

// Range returns the sequence start, start+step, ... stopping before end.
// A negative step counts down. A zero step, or a start already past end,
// yields an empty sequence. The result is replayable with constant-time
// count and indexed access.
func Range(start, end, step int) Sequence[int] {
	length := func() int {
		switch {
		case step > 0 && start < end:
			return (end - start + step - 1) / step
		case step < 0 && start > end:
			return (start - end - step - 1) / -step
		default:
			return 0
		}
	}
	return Sequence[int]{
		seq: func(yield func(int) bool) {
			if step == 0 {
				return
			}
			for i := start; step > 0 && i < end || step < 0 && i > end; i += step {
				if !yield(i) {
					return
				}
			}
		},
		length: length,
		at: func(i int) (int, bool) {
			if i < length() {
				return start + i*step, true
			}
			return 0, false
		},
		replay: true,
	}
}

// RangeN returns the sequence 0, 1, ... n-1.
func RangeN(n int) Sequence[int] {
	return Range(0, n, 1)
}

// Repeat returns a sequence yielding v n times.
func Repeat[T any](v T, n int) Sequence[T] {
	length := func() int { return max(n, 0) }
	return Sequence[T]{
		seq: func(yield func(T) bool) {
			for range n {
				if !yield(v) {
					return
				}
			}
		},
		length: length,
		at: func(i int) (T, bool) {
			if i < length() {
				return v, true
			}
			var zero T
			return zero, false
		},
		replay: true,
	}
}

// Generate returns the infinite sequence seed, next(seed), next(next(seed)),
// and so on. Every traversal restarts from seed, so the result is
// replayable. Terminal operations that consume their whole input (Collect,
// Count, Reduce without short-circuiting) will not return when given an
// unbounded sequence; bound it first with Only or TakeWhile. A nil next
// panics.
func Generate[T any](seed T, next func(T) T) Sequence[T] {
	if next == nil {
		panic("pypes: nil generator")
	}
	return Sequence[T]{
		seq: func(yield func(T) bool) {
			for v := seed; yield(v); v = next(v) {
			}
		},
		replay: true,
	}
}
