package pair

import "github.com/Equationzhao/cpair/args"

// TryPiecewise builds first from the first bundle and second from the
// second one. If a bundle fails its error is returned unchanged, and a
// failure of the first bundle means the second is never built.
func TryPiecewise[T, U any](first args.Builder[T], second args.Builder[U]) (Pair[T, U], error) {
	f, err := first.Build()
	if err != nil {
		return Pair[T, U]{}, err
	}
	s, err := second.Build()
	if err != nil {
		return Pair[T, U]{}, err
	}
	return Pair[T, U]{first: f, second: s}, nil
}

// Piecewise is like TryPiecewise but panics with the bundle's error.
func Piecewise[T, U any](first args.Builder[T], second args.Builder[U]) Pair[T, U] {
	p, err := TryPiecewise(first, second)
	if err != nil {
		panic(err)
	}
	return p
}

// Infallible reports whether piecewise construction from first and
// second can never fail.
func Infallible[T, U any](first args.Builder[T], second args.Builder[U]) bool {
	return first.Infallible() && second.Infallible()
}
