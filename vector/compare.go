// SPDX-License-Identifier: MIT

package vector

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Equal reports whether a and b have the same length and pairwise equal
// elements.
func Equal[T comparable](a, b *Vector[T]) bool { return slices.Equal(a.Data(), b.Data()) }

// EqualFunc is Equal with a caller-supplied element equality.
func EqualFunc[T any](a, b *Vector[T], eq func(T, T) bool) bool {
	return slices.EqualFunc(a.Data(), b.Data(), eq)
}

// Compare orders a and b lexicographically: -1, 0 or +1. A proper prefix
// orders before the longer vector.
func Compare[T constraints.Ordered](a, b *Vector[T]) int { return slices.Compare(a.Data(), b.Data()) }

// CompareFunc is Compare with a caller-supplied element ordering.
func CompareFunc[T any](a, b *Vector[T], cmp func(T, T) int) int {
	return slices.CompareFunc(a.Data(), b.Data(), cmp)
}

// Less reports a < b lexicographically.
func Less[T constraints.Ordered](a, b *Vector[T]) bool { return Compare(a, b) < 0 }

// LessEq reports a <= b, i.e. !(b < a).
func LessEq[T constraints.Ordered](a, b *Vector[T]) bool { return !Less(b, a) }

// Greater reports a > b, i.e. b < a.
func Greater[T constraints.Ordered](a, b *Vector[T]) bool { return Less(b, a) }

// GreaterEq reports a >= b, i.e. !(a < b).
func GreaterEq[T constraints.Ordered](a, b *Vector[T]) bool { return !Less(a, b) }
