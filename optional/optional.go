package optional

import "iter"

// Value holds zero or one value of type T. The zero Value is empty.
type Value[T any] struct {
	value   T
	present bool
}

// Of returns a present Value holding v. Any v counts, including the zero
// value of T.
func Of[T any](v T) Value[T] {
	return Value[T]{value: v, present: true}
}

// OfPtr returns a Value holding *p, or an empty Value if p is nil.
func OfPtr[T any](p *T) Value[T] {
	if p == nil {
		return Empty[T]()
	}
	return Of(*p)
}

// Empty returns a Value holding nothing.
func Empty[T any]() Value[T] {
	return Value[T]{}
}

// IsPresent reports whether a value is held.
func (v Value[T]) IsPresent() bool {
	return v.present
}

// Get returns the held value and whether one is present. When empty, the
// first return is the zero value of T.
func (v Value[T]) Get() (T, bool) {
	return v.value, v.present
}

// OrElse returns the held value if present, or other otherwise.
func (v Value[T]) OrElse(other T) T {
	if v.present {
		return v.value
	}
	return other
}

// All returns a sequence yielding the held value if present and nothing
// otherwise. The sequence may be ranged over any number of times.
func (v Value[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if v.present {
			yield(v.value)
		}
	}
}

// Map returns a present Value holding fn applied to v's value, or an empty
// Value when v is empty. fn is not called for empty input. A nil fn panics.
func Map[T, U any](v Value[T], fn func(T) U) Value[U] {
	if fn == nil {
		panic("optional: nil mapping")
	}
	if !v.present {
		return Empty[U]()
	}
	return Of(fn(v.value))
}
