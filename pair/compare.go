package pair

import (
	"cmp"
	"slices"
)

// Comparable can be implemented by element types without a built-in
// ordering.
type Comparable[E any] interface {
	// Cmp returns < 0 if this is less than other, 0 if they are equal and
	// > 0 if this is greater than other.
	Cmp(other E) int
}

// Equal reports whether a and b hold equal elements. second is only
// compared when first is equal.
func Equal[T, U comparable](a, b Pair[T, U]) bool {
	return a.first == b.first && a.second == b.second
}

// NotEqual is !Equal(a, b).
func NotEqual[T, U comparable](a, b Pair[T, U]) bool {
	return !Equal(a, b)
}

// Compare orders a and b lexicographically: by first, then by second.
// It returns -1, 0 or +1. Floating point NaN sorts before any other
// value and equal to itself, as in cmp.Compare.
func Compare[T, U cmp.Ordered](a, b Pair[T, U]) int {
	if c := cmp.Compare(a.first, b.first); c != 0 {
		return c
	}
	return cmp.Compare(a.second, b.second)
}

// LexicographicalCompare reports whether a orders strictly before b.
func LexicographicalCompare[T, U cmp.Ordered](a, b Pair[T, U]) bool {
	return Compare(a, b) < 0
}

func Less[T, U cmp.Ordered](a, b Pair[T, U]) bool {
	return LexicographicalCompare(a, b)
}

func Greater[T, U cmp.Ordered](a, b Pair[T, U]) bool {
	return LexicographicalCompare(b, a)
}

func LessEqual[T, U cmp.Ordered](a, b Pair[T, U]) bool {
	return !Less(b, a)
}

func GreaterEqual[T, U cmp.Ordered](a, b Pair[T, U]) bool {
	return !Less(a, b)
}

// EqualFunc is Equal with caller supplied element equality.
func EqualFunc[T, U any](a, b Pair[T, U], eqT func(T, T) bool, eqU func(U, U) bool) bool {
	return eqT(a.first, b.first) && eqU(a.second, b.second)
}

// CompareFunc is Compare with caller supplied element comparison.
func CompareFunc[T, U any](a, b Pair[T, U], cmpT func(T, T) int, cmpU func(U, U) int) int {
	if c := cmpT(a.first, b.first); c != 0 {
		return c
	}
	return cmpU(a.second, b.second)
}

// CompareBy orders pairs whose elements implement Comparable.
func CompareBy[T Comparable[T], U Comparable[U]](a, b Pair[T, U]) int {
	if c := a.first.Cmp(b.first); c != 0 {
		return c
	}
	return a.second.Cmp(b.second)
}

// Sort sorts ps in ascending lexicographic order. Equal pairs keep their
// relative order.
func Sort[T, U cmp.Ordered](ps []Pair[T, U]) {
	slices.SortStableFunc(ps, Compare[T, U])
}
