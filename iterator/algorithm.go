// SPDX-License-Identifier: MIT

package iterator

import (
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// algoErrorf tags an algorithm failure with its name, keeping the sentinel
// reachable through errors.Is.
func algoErrorf(op string, err error) error {
	return fmt.Errorf("iterator.%s: %w", op, err)
}

// window validates [first, last) and returns it as a slice view over the
// shared storage.
// Stage 1: both ends belong to the same non-nil sequence.
// Stage 2: 0 <= first <= last <= Len.
// Complexity: O(1).
func window[T any](first, last Iterator[T]) ([]T, error) {
	if first.seq == nil || first.seq != last.seq {
		return nil, ErrBadRange
	}
	if first.pos < 0 || first.pos > last.pos || last.pos > first.seq.Len() {
		return nil, ErrBadRange
	}

	return first.seq.Data()[first.pos:last.pos], nil
}

// Distance returns the number of elements in [first, last).
func Distance[T any](first, last Iterator[T]) (int, error) {
	w, err := window(first, last)
	if err != nil {
		return 0, algoErrorf("Distance", err)
	}

	return len(w), nil
}

// Find returns the first iterator in [first, last) whose element equals v,
// or last when there is none.
// Complexity: O(n).
func Find[T comparable](first, last Iterator[T], v T) (Iterator[T], error) {
	return FindFunc(first, last, func(x T) bool { return x == v })
}

// FindFunc returns the first iterator in [first, last) satisfying pred,
// or last when there is none.
func FindFunc[T any](first, last Iterator[T], pred func(T) bool) (Iterator[T], error) {
	w, err := window(first, last)
	if err != nil {
		return last, algoErrorf("FindFunc", err)
	}
	for i := range w {
		if pred(w[i]) {
			return first.Add(i), nil
		}
	}

	return last, nil
}

// Count returns how many elements of [first, last) equal v.
func Count[T comparable](first, last Iterator[T], v T) (int, error) {
	return CountFunc(first, last, func(x T) bool { return x == v })
}

// CountFunc returns how many elements of [first, last) satisfy pred.
func CountFunc[T any](first, last Iterator[T], pred func(T) bool) (int, error) {
	w, err := window(first, last)
	if err != nil {
		return 0, algoErrorf("CountFunc", err)
	}
	n := 0
	for i := range w {
		if pred(w[i]) {
			n++
		}
	}

	return n, nil
}

// ForEach calls fn with a pointer to every element of [first, last) in order.
func ForEach[T any](first, last Iterator[T], fn func(*T)) error {
	w, err := window(first, last)
	if err != nil {
		return algoErrorf("ForEach", err)
	}
	for i := range w {
		fn(&w[i])
	}

	return nil
}

// Transform writes fn(x) for every x in [first, last) to the range starting
// at dst and returns the end of the written range. dst may equal first
// (in-place transform).
//
// Errors: ErrBadRange for an invalid input range, ErrShortDestination when
// dst has fewer than Distance(first, last) elements ahead of it.
func Transform[T any](first, last, dst Iterator[T], fn func(T) T) (Iterator[T], error) {
	w, err := window(first, last)
	if err != nil {
		return dst, algoErrorf("Transform", err)
	}
	out, err := window(dst, dst.Add(len(w)))
	if err != nil {
		return dst, algoErrorf("Transform", ErrShortDestination)
	}
	for i := range w {
		out[i] = fn(w[i])
	}

	return dst.Add(len(w)), nil
}

// Fill assigns v to every element of [first, last).
func Fill[T any](first, last Iterator[T], v T) error {
	w, err := window(first, last)
	if err != nil {
		return algoErrorf("Fill", err)
	}
	for i := range w {
		w[i] = v
	}

	return nil
}

// Copy copies [first, last) into the range starting at dst and returns the
// end of the written range. Overlapping ranges are handled like the built-in
// copy.
func Copy[T any](first, last, dst Iterator[T]) (Iterator[T], error) {
	w, err := window(first, last)
	if err != nil {
		return dst, algoErrorf("Copy", err)
	}
	out, err := window(dst, dst.Add(len(w)))
	if err != nil {
		return dst, algoErrorf("Copy", ErrShortDestination)
	}
	copy(out, w)

	return dst.Add(len(w)), nil
}

// Reverse reverses the order of the elements in [first, last).
func Reverse[T any](first, last Iterator[T]) error {
	w, err := window(first, last)
	if err != nil {
		return algoErrorf("Reverse", err)
	}
	slices.Reverse(w)

	return nil
}

// Sort sorts [first, last) in place using cmp (negative when a < b).
// The sort is not stable.
// Complexity: O(n log n).
func Sort[T any](first, last Iterator[T], cmp func(a, b T) int) error {
	w, err := window(first, last)
	if err != nil {
		return algoErrorf("Sort", err)
	}
	slices.SortFunc(w, cmp)

	return nil
}

// SortOrdered sorts [first, last) in ascending order.
func SortOrdered[T constraints.Ordered](first, last Iterator[T]) error {
	w, err := window(first, last)
	if err != nil {
		return algoErrorf("SortOrdered", err)
	}
	slices.Sort(w)

	return nil
}

// IsSorted reports whether [first, last) is sorted according to cmp.
func IsSorted[T any](first, last Iterator[T], cmp func(a, b T) int) (bool, error) {
	w, err := window(first, last)
	if err != nil {
		return false, algoErrorf("IsSorted", err)
	}

	return slices.IsSortedFunc(w, cmp), nil
}

// Equal reports whether [first1, last1) and [first2, first2+n) hold equal
// elements, n being the length of the first range.
func Equal[T comparable](first1, last1, first2 Iterator[T]) (bool, error) {
	a, err := window(first1, last1)
	if err != nil {
		return false, algoErrorf("Equal", err)
	}
	b, err := window(first2, first2.Add(len(a)))
	if err != nil {
		return false, nil // second range is shorter: not equal
	}

	return slices.Equal(a, b), nil
}

// Accumulate folds [first, last) from the left starting at init.
func Accumulate[T, A any](first, last Iterator[T], init A, fn func(A, T) A) (A, error) {
	w, err := window(first, last)
	if err != nil {
		return init, algoErrorf("Accumulate", err)
	}
	acc := init
	for i := range w {
		acc = fn(acc, w[i])
	}

	return acc, nil
}

// MinElement returns an iterator to the first smallest element of
// [first, last), or last when the range is empty.
func MinElement[T constraints.Ordered](first, last Iterator[T]) (Iterator[T], error) {
	w, err := window(first, last)
	if err != nil {
		return last, algoErrorf("MinElement", err)
	}
	if len(w) == 0 {
		return last, nil
	}
	best := 0
	for i := 1; i < len(w); i++ {
		if w[i] < w[best] {
			best = i
		}
	}

	return first.Add(best), nil
}

// MaxElement returns an iterator to the first largest element of
// [first, last), or last when the range is empty.
func MaxElement[T constraints.Ordered](first, last Iterator[T]) (Iterator[T], error) {
	w, err := window(first, last)
	if err != nil {
		return last, algoErrorf("MaxElement", err)
	}
	if len(w) == 0 {
		return last, nil
	}
	best := 0
	for i := 1; i < len(w); i++ {
		if w[i] > w[best] {
			best = i
		}
	}

	return first.Add(best), nil
}
