// Package cpair collects helpers built on pair.Pair: a key/value view of a
// pair and conversions between pairs, maps and slices.
package cpair

import (
	"cmp"
	"slices"

	"github.com/Equationzhao/cpair/pair"
)

// KV is a pair read as a key and a value.
type KV[k comparable, v any] struct {
	internal pair.Pair[k, v]
}

func MakeKV[k comparable, v any](key k, value v) KV[k, v] {
	return KV[k, v]{
		internal: pair.Make(key, value),
	}
}

func (kvp KV[k, v]) Key() k {
	return kvp.internal.First()
}

func (kvp KV[k, v]) Value() v {
	return kvp.internal.Second()
}

// Pair returns the underlying pair.
func (kvp KV[k, v]) Pair() pair.Pair[k, v] {
	return kvp.internal
}

func (kvp KV[k, v]) String() string {
	return kvp.internal.String()
}

// FromMap returns the entries of m in unspecified order.
func FromMap[k comparable, v any](m map[k]v) []KV[k, v] {
	kvs := make([]KV[k, v], 0, len(m))
	for key, value := range m {
		kvs = append(kvs, MakeKV(key, value))
	}
	return kvs
}

// SortedFromMap returns the entries of m in ascending key order.
func SortedFromMap[k cmp.Ordered, v any](m map[k]v) []KV[k, v] {
	kvs := FromMap(m)
	slices.SortFunc(kvs, func(a, b KV[k, v]) int {
		return cmp.Compare(a.Key(), b.Key())
	})
	return kvs
}

// ToMap builds a map from kvs; a later entry wins over an earlier one with
// the same key.
func ToMap[k comparable, v any](kvs []KV[k, v]) map[k]v {
	m := make(map[k]v, len(kvs))
	for _, kvp := range kvs {
		m[kvp.Key()] = kvp.Value()
	}
	return m
}
