package vector

import (
	"cmp"
	"slices"
)

// Equal reports whether a and b have the same length and equal elements.
// A nil array equals an empty one.
func Equal[T comparable](a, b *Array[T]) bool {
	return slices.Equal(a.view(), b.view())
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[T any](a, b *Array[T], eq func(T, T) bool) bool {
	return slices.EqualFunc(a.view(), b.view(), eq)
}

// Compare orders a and b lexicographically and returns -1, 0 or +1.
// A strict prefix orders before the longer array.
func Compare[T cmp.Ordered](a, b *Array[T]) int {
	return slices.Compare(a.view(), b.view())
}

// CompareFunc is Compare with a caller-supplied element ordering.
func CompareFunc[T any](a, b *Array[T], cmp func(T, T) int) int {
	return slices.CompareFunc(a.view(), b.view(), cmp)
}

// Less reports whether a orders before b.
func Less[T cmp.Ordered](a, b *Array[T]) bool {
	return Compare(a, b) < 0
}
