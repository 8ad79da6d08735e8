// SPDX-License-Identifier: MIT

package vector

import (
	"iter"

	"github.com/katalvlaran/ministl/iterator"
)

const (
	ctxAt    = "At"
	ctxSetAt = "SetAt"
)

// At returns the element at pos.
// Errors: ErrOutOfRange when pos < 0 or pos >= Len().
// Complexity: O(1).
func (v *Vector[T]) At(pos int) (T, error) {
	if pos < 0 || pos >= v.size {
		var zero T

		return zero, vectorErrorf(ctxAt, pos, ErrOutOfRange)
	}

	return v.buf[pos], nil
}

// SetAt overwrites the element at pos.
// Errors: ErrOutOfRange when pos < 0 or pos >= Len().
func (v *Vector[T]) SetAt(pos int, value T) error {
	if pos < 0 || pos >= v.size {
		return vectorErrorf(ctxSetAt, pos, ErrOutOfRange)
	}
	v.buf[pos] = value

	return nil
}

// Get returns the element at i without a vector-level check; i outside
// [0, Len) panics with the runtime bounds error.
func (v *Vector[T]) Get(i int) T { return v.buf[:v.size][i] }

// Set overwrites the element at i without a vector-level check.
func (v *Vector[T]) Set(i int, value T) { v.buf[:v.size][i] = value }

// Ref returns a pointer to the element at i. The pointer is valid until the
// next reallocation.
func (v *Vector[T]) Ref(i int) *T { return &v.buf[:v.size][i] }

// Front returns the first element.
// Errors: ErrEmpty on an empty vector.
func (v *Vector[T]) Front() (T, error) {
	if v.size == 0 {
		var zero T

		return zero, vectorErrorf("Front", 0, ErrEmpty)
	}

	return v.buf[0], nil
}

// Back returns the last element.
// Errors: ErrEmpty on an empty vector.
func (v *Vector[T]) Back() (T, error) {
	if v.size == 0 {
		var zero T

		return zero, vectorErrorf("Back", 0, ErrEmpty)
	}

	return v.buf[v.size-1], nil
}

// Data returns the live elements as a slice sharing the vector storage.
// Appending to the returned slice never affects the vector.
func (v *Vector[T]) Data() []T { return v.buf[:v.size:v.size] }

// ToSlice returns an independent copy of the live elements.
func (v *Vector[T]) ToSlice() []T {
	out := make([]T, v.size)
	copy(out, v.buf[:v.size])

	return out
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the number of elements the buffer holds without reallocating.
func (v *Vector[T]) Cap() int { return len(v.buf) }

// Empty reports whether Len() == 0.
func (v *Vector[T]) Empty() bool { return v.size == 0 }

// ---------- iterators ----------

// Begin returns an iterator to the first element.
func (v *Vector[T]) Begin() iterator.Iterator[T] { return iterator.Begin[T](v) }

// End returns the past-the-end iterator.
func (v *Vector[T]) End() iterator.Iterator[T] { return iterator.End[T](v) }

// CBegin is Begin; Go has no const iterators, kept for API parity.
func (v *Vector[T]) CBegin() iterator.Iterator[T] { return v.Begin() }

// CEnd is End.
func (v *Vector[T]) CEnd() iterator.Iterator[T] { return v.End() }

// RBegin returns a reverse iterator to the last element.
func (v *Vector[T]) RBegin() iterator.ReverseIterator[T] { return iterator.NewReverse(v.End()) }

// REnd returns the reverse past-the-end iterator.
func (v *Vector[T]) REnd() iterator.ReverseIterator[T] { return iterator.NewReverse(v.Begin()) }

// All yields (index, element) pairs front to back.
// Mutating the vector during iteration is not supported.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// Values yields the elements front to back.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.buf[i]) {
				return
			}
		}
	}
}

// Backward yields (index, element) pairs back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}
