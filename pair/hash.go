package pair

import "github.com/dolthub/maphash"

// Hasher hashes pairs of comparable elements with the runtime's map hash.
// Equal pairs hash equal for a given Hasher. A Hasher is immutable and
// safe for concurrent use.
type Hasher[T, U comparable] struct {
	h maphash.Hasher[Pair[T, U]]
}

// NewHasher returns a Hasher with a random seed.
func NewHasher[T, U comparable]() Hasher[T, U] {
	return Hasher[T, U]{h: maphash.NewHasher[Pair[T, U]]()}
}

// Hash returns the hash of p.
func (h Hasher[T, U]) Hash(p Pair[T, U]) uint64 {
	return h.h.Hash(p)
}

// WithSeed returns a Hasher of the same type with a fresh seed.
func (h Hasher[T, U]) WithSeed() Hasher[T, U] {
	return Hasher[T, U]{h: maphash.NewSeed(h.h)}
}
