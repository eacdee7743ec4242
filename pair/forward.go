package pair

import "golang.org/x/exp/constraints"

// Source yields the value an element is built from.
type Source[E any] interface {
	Take() E
}

type copied[E any] struct{ v E }

func (s copied[E]) Take() E { return s.v }

// Copy is a Source that yields a copy of v.
func Copy[E any](v E) Source[E] {
	return copied[E]{v: v}
}

type moved[E any] struct{ v *E }

func (s moved[E]) Take() E {
	v := *s.v
	var zero E
	*s.v = zero
	return v
}

// Moved is a Source that takes *v and leaves the zero value behind.
// v must not be nil.
func Moved[E any](v *E) Source[E] {
	return moved[E]{v: v}
}

type converted[E, R any] struct {
	src  Source[E]
	conv func(E) R
}

func (s converted[E, R]) Take() R { return s.conv(s.src.Take()) }

// Converted is a Source that builds an R from what src yields.
func Converted[E, R any](src Source[E], conv func(E) R) Source[R] {
	return converted[E, R]{src: src, conv: conv}
}

// Forward builds a pair from two sources, first then second.
func Forward[T, U any](first Source[T], second Source[U]) Pair[T, U] {
	f := first.Take()
	s := second.Take()
	return Pair[T, U]{first: f, second: s}
}

// Number is any integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Cast builds a Pair[T, U] by numeric conversion of e and f.
func Cast[T, U, E, F Number](e E, f F) Pair[T, U] {
	return Pair[T, U]{first: T(e), second: U(f)}
}
