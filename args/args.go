// Package args holds argument bundles: fixed-length, ordered lists of
// values bound to the constructor they will be passed to.
//
// A bundle lets a caller describe how to build a value without building
// it yet, which is what piecewise pair construction needs.
package args

// Builder builds an R from the arguments it carries.
type Builder[R any] interface {
	// Build calls the bound constructor with the bundled arguments.
	// A constructor error is returned as is.
	Build() (R, error)
	// Len is the number of bundled arguments.
	Len() int
	// Infallible reports whether Build can never return an error.
	Infallible() bool
}

func never[R any](ctor func() R) func() (R, error) {
	return func() (R, error) { return ctor(), nil }
}

// Bundle0 is an empty argument list.
type Bundle0[R any] struct {
	ctor func() (R, error)
	safe bool
}

// Of0 binds a constructor taking no argument.
func Of0[R any](ctor func() R) Bundle0[R] {
	return Bundle0[R]{ctor: never(ctor), safe: true}
}

// Try0 binds a fallible constructor taking no argument.
func Try0[R any](ctor func() (R, error)) Bundle0[R] {
	return Bundle0[R]{ctor: ctor}
}

// Value is a bundle which yields v unchanged.
func Value[R any](v R) Bundle0[R] {
	return Of0(func() R { return v })
}

func (b Bundle0[R]) Build() (R, error) {
	if b.ctor == nil {
		var zero R
		return zero, nil
	}
	return b.ctor()
}

func (b Bundle0[R]) Len() int { return 0 }

func (b Bundle0[R]) Infallible() bool { return b.safe || b.ctor == nil }

// Bundle1 carries one argument.
type Bundle1[A, R any] struct {
	ctor func(A) (R, error)
	a    A
	safe bool
}

// Of1 binds ctor to a.
func Of1[A, R any](ctor func(A) R, a A) Bundle1[A, R] {
	return Bundle1[A, R]{
		ctor: func(a A) (R, error) { return ctor(a), nil },
		a:    a,
		safe: true,
	}
}

// Try1 binds a fallible ctor to a.
func Try1[A, R any](ctor func(A) (R, error), a A) Bundle1[A, R] {
	return Bundle1[A, R]{ctor: ctor, a: a}
}

func (b Bundle1[A, R]) Build() (R, error) { return b.ctor(b.a) }

func (b Bundle1[A, R]) Len() int { return 1 }

func (b Bundle1[A, R]) Infallible() bool { return b.safe }

func (b Bundle1[A, R]) Values() A { return b.a }

// Bundle2 carries two arguments.
type Bundle2[A, B, R any] struct {
	ctor func(A, B) (R, error)
	a    A
	b    B
	safe bool
}

// Of2 binds ctor to (a, b).
func Of2[A, B, R any](ctor func(A, B) R, a A, b B) Bundle2[A, B, R] {
	return Bundle2[A, B, R]{
		ctor: func(a A, b B) (R, error) { return ctor(a, b), nil },
		a:    a,
		b:    b,
		safe: true,
	}
}

// Try2 binds a fallible ctor to (a, b).
func Try2[A, B, R any](ctor func(A, B) (R, error), a A, b B) Bundle2[A, B, R] {
	return Bundle2[A, B, R]{ctor: ctor, a: a, b: b}
}

func (b Bundle2[A, B, R]) Build() (R, error) { return b.ctor(b.a, b.b) }

func (b Bundle2[A, B, R]) Len() int { return 2 }

func (b Bundle2[A, B, R]) Infallible() bool { return b.safe }

func (b Bundle2[A, B, R]) Values() (A, B) { return b.a, b.b }

// Bundle3 carries three arguments.
type Bundle3[A, B, C, R any] struct {
	ctor func(A, B, C) (R, error)
	a    A
	b    B
	c    C
	safe bool
}

// Of3 binds ctor to (a, b, c).
func Of3[A, B, C, R any](ctor func(A, B, C) R, a A, b B, c C) Bundle3[A, B, C, R] {
	return Bundle3[A, B, C, R]{
		ctor: func(a A, b B, c C) (R, error) { return ctor(a, b, c), nil },
		a:    a,
		b:    b,
		c:    c,
		safe: true,
	}
}

// Try3 binds a fallible ctor to (a, b, c).
func Try3[A, B, C, R any](ctor func(A, B, C) (R, error), a A, b B, c C) Bundle3[A, B, C, R] {
	return Bundle3[A, B, C, R]{ctor: ctor, a: a, b: b, c: c}
}

func (b Bundle3[A, B, C, R]) Build() (R, error) { return b.ctor(b.a, b.b, b.c) }

func (b Bundle3[A, B, C, R]) Len() int { return 3 }

func (b Bundle3[A, B, C, R]) Infallible() bool { return b.safe }

func (b Bundle3[A, B, C, R]) Values() (A, B, C) { return b.a, b.b, b.c }

// Bundle4 carries four arguments.
type Bundle4[A, B, C, D, R any] struct {
	ctor func(A, B, C, D) (R, error)
	a    A
	b    B
	c    C
	d    D
	safe bool
}

// Of4 binds ctor to (a, b, c, d).
func Of4[A, B, C, D, R any](ctor func(A, B, C, D) R, a A, b B, c C, d D) Bundle4[A, B, C, D, R] {
	return Bundle4[A, B, C, D, R]{
		ctor: func(a A, b B, c C, d D) (R, error) { return ctor(a, b, c, d), nil },
		a:    a,
		b:    b,
		c:    c,
		d:    d,
		safe: true,
	}
}

// Try4 binds a fallible ctor to (a, b, c, d).
func Try4[A, B, C, D, R any](ctor func(A, B, C, D) (R, error), a A, b B, c C, d D) Bundle4[A, B, C, D, R] {
	return Bundle4[A, B, C, D, R]{ctor: ctor, a: a, b: b, c: c, d: d}
}

func (b Bundle4[A, B, C, D, R]) Build() (R, error) { return b.ctor(b.a, b.b, b.c, b.d) }

func (b Bundle4[A, B, C, D, R]) Len() int { return 4 }

func (b Bundle4[A, B, C, D, R]) Infallible() bool { return b.safe }

func (b Bundle4[A, B, C, D, R]) Values() (A, B, C, D) { return b.a, b.b, b.c, b.d }
