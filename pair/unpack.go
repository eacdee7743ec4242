package pair

import (
	"fmt"
	"iter"
	"reflect"
)

// Arity is the number of elements in every Pair.
const Arity = 2

// IndexError is the panic value for an element index outside [0, Arity).
type IndexError struct {
	Index int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("pair: index %d out of range [0, %d)", e.Index, Arity)
}

// Len returns Arity
func (p Pair[T, U]) Len() int {
	return Arity
}

// Unpack returns both elements, for `a, b := p.Unpack()`.
func (p Pair[T, U]) Unpack() (T, U) {
	return p.first, p.second
}

// Get0 returns element 0, the first one.
func Get0[T, U any](p Pair[T, U]) T {
	return p.first
}

// Get1 returns element 1, the second one.
func Get1[T, U any](p Pair[T, U]) U {
	return p.second
}

// At returns element i boxed in an interface.
// It panics with *IndexError unless 0 <= i < Arity; use Get0 and Get1
// when the index is known at compile time.
func (p Pair[T, U]) At(i int) any {
	switch i {
	case 0:
		return p.first
	case 1:
		return p.second
	default:
		panic(&IndexError{Index: i})
	}
}

// ElemType returns the type of element i of a Pair[T, U].
// It panics with *IndexError unless 0 <= i < Arity.
func ElemType[T, U any](i int) reflect.Type {
	switch i {
	case 0:
		return reflect.TypeFor[T]()
	case 1:
		return reflect.TypeFor[U]()
	default:
		panic(&IndexError{Index: i})
	}
}

// Types returns the element types of p in order.
func (p Pair[T, U]) Types() [Arity]reflect.Type {
	return [Arity]reflect.Type{ElemType[T, U](0), ElemType[T, U](1)}
}

// Seq2 yields the elements of p once.
func (p Pair[T, U]) Seq2() iter.Seq2[T, U] {
	return func(yield func(T, U) bool) {
		yield(p.first, p.second)
	}
}
