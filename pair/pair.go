// Package pair provides Pair, a value holding two independently typed
// elements.
//
// A Pair is a plain value: assigning it copies both elements, and the
// zero value is a usable pair of zero elements. Elements are read through
// First and Second and only ever replaced together, through Assign,
// MoveFrom or Reset.
package pair

// Pair holds a first element of type T and a second element of type U.
//
// second is laid out before first: Go only pads a zero-size field when
// it is the last one, so Pair[T, struct{}] is exactly as large as T.
type Pair[T, U any] struct {
	second U
	first  T
}

// Zero returns a pair of zero values
func Zero[T, U any]() Pair[T, U] {
	return Pair[T, U]{}
}

// Make return a new Pair
// copy the `first` and `second`
func Make[T, U any](first T, second U) Pair[T, U] {
	return Pair[T, U]{first: first, second: second}
}

// New copy the `first` and `second`
// return a new Pair Ptr
func New[T, U any](first T, second U) *Pair[T, U] {
	p := Make(first, second)
	return &p
}

// First returns the first element.
func (p Pair[T, U]) First() T {
	return p.first
}

// Second returns the second element.
func (p Pair[T, U]) Second() U {
	return p.second
}

// Cloner is implemented by element types that know how to deep copy
// themselves.
type Cloner[E any] interface {
	Clone() E
}

func cloneOf[E any](e E) E {
	if c, ok := any(e).(Cloner[E]); ok {
		return c.Clone()
	}
	return e
}

// Clone return a copy of p in which every element implementing Cloner
// has been deep copied
func (p Pair[T, U]) Clone() Pair[T, U] {
	return Pair[T, U]{first: cloneOf(p.first), second: cloneOf(p.second)}
}

// Move returns *p and leaves *p as the zero pair.
func Move[T, U any](p *Pair[T, U]) Pair[T, U] {
	moved := *p
	*p = Pair[T, U]{}
	return moved
}

// Assign copies first then second from other into p.
func (p *Pair[T, U]) Assign(other Pair[T, U]) *Pair[T, U] {
	p.first = other.first
	p.second = other.second
	return p
}

// MoveFrom moves both elements of other into p and resets other.
// Moving a pair into itself leaves it unchanged.
func (p *Pair[T, U]) MoveFrom(other *Pair[T, U]) *Pair[T, U] {
	if p == other {
		return p
	}
	p.first = other.first
	p.second = other.second
	*other = Pair[T, U]{}
	return p
}

// Reset the pair to zero values
func (p *Pair[T, U]) Reset() {
	*p = Pair[T, U]{}
}

// Exchange the pairs
func Exchange[T, U any](a, b *Pair[T, U]) {
	*a, *b = *b, *a
}

// Swap returns a pair with the elements of p in reverse order.
func (p Pair[T, U]) Swap() Pair[U, T] {
	return Pair[U, T]{first: p.second, second: p.first}
}

// MapFirst returns a pair whose first element is f(p.First()).
func MapFirst[T, U, R any](p Pair[T, U], f func(T) R) Pair[R, U] {
	return Pair[R, U]{first: f(p.first), second: p.second}
}

// MapSecond returns a pair whose second element is f(p.Second()).
func MapSecond[T, U, R any](p Pair[T, U], f func(U) R) Pair[T, R] {
	return Pair[T, R]{first: p.first, second: f(p.second)}
}
