package cpair

import (
	"errors"
	"fmt"

	"github.com/Equationzhao/cpair/pair"
)

// ErrLengthMismatch is returned by Zip for slices of different lengths.
var ErrLengthMismatch = errors.New("cpair: length mismatch")

// Zip pairs as[i] with bs[i].
func Zip[T, U any](as []T, bs []U) ([]pair.Pair[T, U], error) {
	if len(as) != len(bs) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(as), len(bs))
	}
	ps := make([]pair.Pair[T, U], len(as))
	for i := range as {
		ps[i] = pair.Make(as[i], bs[i])
	}
	return ps, nil
}

// Unzip is the inverse of Zip.
func Unzip[T, U any](ps []pair.Pair[T, U]) ([]T, []U) {
	return Firsts(ps), Seconds(ps)
}

// Firsts returns the first element of every pair.
func Firsts[T, U any](ps []pair.Pair[T, U]) []T {
	firsts := make([]T, len(ps))
	for i, p := range ps {
		firsts[i] = p.First()
	}
	return firsts
}

// Seconds returns the second element of every pair.
func Seconds[T, U any](ps []pair.Pair[T, U]) []U {
	seconds := make([]U, len(ps))
	for i, p := range ps {
		seconds[i] = p.Second()
	}
	return seconds
}
