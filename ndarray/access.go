// SPDX-License-Identifier: MIT

package ndarray

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/ministl/iterator"
)

// Offset returns the flat position of the N-ary index idx.
// Errors:
//   - ErrInvalidArgument when len(idx) != Rank().
//   - ErrOutOfRange when any idx[k] is outside [0, Dimension(k)).
func (a *Array[T]) Offset(idx ...int) (int, error) {
	off, err := offset(a.dims, idx)
	if err != nil {
		return 0, arrayErrorf(ctxOffset, idx, err)
	}

	return off, nil
}

// At returns the element at the N-ary index idx (one index per dimension).
// Errors: as Offset.
// Complexity: O(rank).
func (a *Array[T]) At(idx ...int) (T, error) {
	off, err := offset(a.dims, idx)
	if err != nil {
		var zero T

		return zero, arrayErrorf(ctxAt, idx, err)
	}

	return a.data[off], nil
}

// Set writes value at the N-ary index idx.
// Errors: as Offset.
func (a *Array[T]) Set(value T, idx ...int) error {
	off, err := offset(a.dims, idx)
	if err != nil {
		return arrayErrorf(ctxSet, idx, err)
	}
	a.data[off] = value

	return nil
}

// At2 is At for rank-2 arrays. Errors: ErrInvalidArgument when Rank() != 2.
func (a *Array[T]) At2(i, j int) (T, error) { return a.atRank(2, i, j) }

// Set2 is Set for rank-2 arrays.
func (a *Array[T]) Set2(i, j int, value T) error { return a.setRank(2, value, i, j) }

// At3 is At for rank-3 arrays. Errors: ErrInvalidArgument when Rank() != 3.
func (a *Array[T]) At3(i, j, k int) (T, error) { return a.atRank(3, i, j, k) }

// Set3 is Set for rank-3 arrays.
func (a *Array[T]) Set3(i, j, k int, value T) error { return a.setRank(3, value, i, j, k) }

func (a *Array[T]) atRank(rank int, idx ...int) (T, error) {
	if len(a.dims) != rank {
		var zero T

		return zero, fmt.Errorf("Array.At%d: rank is %d: %w", rank, len(a.dims), ErrInvalidArgument)
	}

	return a.At(idx...)
}

func (a *Array[T]) setRank(rank int, value T, idx ...int) error {
	if len(a.dims) != rank {
		return fmt.Errorf("Array.Set%d: rank is %d: %w", rank, len(a.dims), ErrInvalidArgument)
	}

	return a.Set(value, idx...)
}

// Flat returns the element at flat position i.
// Errors: ErrOutOfRange when i is outside [0, Len()).
func (a *Array[T]) Flat(i int) (T, error) {
	if i < 0 || i >= len(a.data) {
		var zero T

		return zero, fmt.Errorf("Array.Flat(%d): %w", i, ErrOutOfRange)
	}

	return a.data[i], nil
}

// SetFlat writes value at flat position i.
// Errors: ErrOutOfRange when i is outside [0, Len()).
func (a *Array[T]) SetFlat(i int, value T) error {
	if i < 0 || i >= len(a.data) {
		return fmt.Errorf("Array.SetFlat(%d): %w", i, ErrOutOfRange)
	}
	a.data[i] = value

	return nil
}

// ---------- iterators ----------

// Begin returns an iterator to the first element in storage order.
func (a *Array[T]) Begin() iterator.Iterator[T] { return iterator.Begin[T](a) }

// End returns the past-the-end iterator.
func (a *Array[T]) End() iterator.Iterator[T] { return iterator.End[T](a) }

// RBegin returns a reverse iterator to the last element.
func (a *Array[T]) RBegin() iterator.ReverseIterator[T] { return iterator.NewReverse(a.End()) }

// REnd returns the reverse past-the-end iterator.
func (a *Array[T]) REnd() iterator.ReverseIterator[T] { return iterator.NewReverse(a.Begin()) }

// All yields (flat index, element) pairs in storage order.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.data {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values yields the elements in storage order.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.data {
			if !yield(v) {
				return
			}
		}
	}
}
