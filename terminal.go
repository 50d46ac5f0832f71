package pypes

import (
	"fmt"
	"strings"
	"time"

	"github.com/pydawan82/pypes/optional"
)

// Number is the constraint for Sum: any type whose values add with +.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// ForEach consumes s, applying fn to every element in order. A nil fn
// panics.
func (s Sequence[T]) ForEach(fn func(T)) {
	if fn == nil {
		panic("pypes: nil action")
	}
	for v := range s.All() {
		fn(v)
	}
}

// ForEachInterspersed consumes s, applying fn to every element in order and
// calling between before each element except the first. N elements produce
// N-1 between calls; in particular between is never called for an empty or
// one-element sequence. A nil fn or between panics.
func (s Sequence[T]) ForEachInterspersed(fn func(T), between func()) {
	if fn == nil {
		panic("pypes: nil action")
	}
	if between == nil {
		panic("pypes: nil between action")
	}
	first := true
	for v := range s.All() {
		if !first {
			between()
		}
		first = false
		fn(v)
	}
}

// ForEachDelay consumes s, applying fn to every element and sleeping d
// between consecutive elements. The sleep is a plain blocking sleep on the
// calling goroutine; there is no sleep before the first element or after the
// last.
func (s Sequence[T]) ForEachDelay(fn func(T), d time.Duration) {
	s.ForEachInterspersed(fn, func() { time.Sleep(d) })
}

// Reduce folds s left to right with fn. With no seed, an empty sequence
// reduces to an empty value and a one-element sequence to that element, with
// fn never called. With a seed, the seed is folded against every element and
// the result is always present; an empty sequence yields the seed itself.
// More than one seed, or a nil fn, panics.
func (s Sequence[T]) Reduce(fn func(T, T) T, seed ...T) optional.Value[T] {
	if fn == nil {
		panic("pypes: nil reducer")
	}
	if len(seed) > 1 {
		panic("pypes: more than one seed")
	}
	var acc T
	have := false
	if len(seed) == 1 {
		acc = seed[0]
		have = true
	}
	for v := range s.All() {
		if !have {
			acc = v
			have = true
			continue
		}
		acc = fn(acc, v)
	}
	if !have {
		return optional.Empty[T]()
	}
	return optional.Of(acc)
}

// Fold folds s left to right into an accumulator of a different type,
// starting from init. An empty sequence returns init. A nil fn panics.
func Fold[T, R any](s Sequence[T], init R, fn func(R, T) R) R {
	if fn == nil {
		panic("pypes: nil reducer")
	}
	acc := init
	for v := range s.All() {
		acc = fn(acc, v)
	}
	return acc
}

// Sum adds every element of s to seed and returns the total; seed alone for
// an empty sequence.
func Sum[T Number](s Sequence[T], seed T) T {
	return Fold(s, seed, func(acc, v T) T { return acc + v })
}

// Join consumes s, formats each element with fmt.Sprint and concatenates the
// results with sep between consecutive elements. An empty sequence yields
// the empty string.
func (s Sequence[T]) Join(sep string) string {
	var b strings.Builder
	first := true
	for v := range s.All() {
		if !first {
			b.WriteString(sep)
		}
		first = false
		fmt.Fprint(&b, v)
	}
	return b.String()
}

// Count returns the number of elements in s. When the count is known without
// consuming (slice-backed sources, counted sources, and combinators that
// preserve the count arithmetically) it is returned directly; otherwise the
// sequence is consumed in full.
func (s Sequence[T]) Count() int {
	if s.length != nil {
		return s.length()
	}
	n := 0
	for range s.All() {
		n++
	}
	return n
}

// FirstMatch scans s in order and returns the first element satisfying pred,
// or an empty value if none does. The scan stops at the match; nothing past
// it is pulled from upstream. A nil pred panics.
func (s Sequence[T]) FirstMatch(pred func(T) bool) optional.Value[T] {
	if pred == nil {
		panic("pypes: nil predicate")
	}
	for v := range s.All() {
		if pred(v) {
			return optional.Of(v)
		}
	}
	return optional.Empty[T]()
}

// Min consumes s and returns its smallest element under less, or an empty
// value for an empty sequence. The first of equal elements wins. A nil less
// panics.
func Min[T any](s Sequence[T], less func(T, T) bool) optional.Value[T] {
	return best(s, less)
}

// Max consumes s and returns its largest element under less, or an empty
// value for an empty sequence. The first of equal elements wins. A nil less
// panics.
func Max[T any](s Sequence[T], less func(T, T) bool) optional.Value[T] {
	if less == nil {
		panic("pypes: nil comparison")
	}
	return best(s, func(a, b T) bool { return less(b, a) })
}

func best[T any](s Sequence[T], less func(T, T) bool) optional.Value[T] {
	if less == nil {
		panic("pypes: nil comparison")
	}
	var bestV T
	have := false
	for v := range s.All() {
		if !have || less(v, bestV) {
			bestV = v
			have = true
		}
	}
	if !have {
		return optional.Empty[T]()
	}
	return optional.Of(bestV)
}

// Collect consumes s into a fresh slice, in order. Every call consumes the
// sequence again and returns a new slice. Collect does not return when given
// an unbounded sequence.
func (s Sequence[T]) Collect() []T {
	var out []T
	if s.length != nil {
		if n := s.length(); n > 0 {
			out = make([]T, 0, n)
		}
	}
	for v := range s.All() {
		out = append(out, v)
	}
	return out
}
