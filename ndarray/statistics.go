// SPDX-License-Identifier: MIT

package ndarray

// Sum folds every element with +, starting from zero. An empty array sums to
// zero. Integer overflow wraps as in ordinary Go arithmetic.
// Complexity: O(Len()).
func (a *Array[T]) Sum() T {
	var s T
	for _, v := range a.data {
		s += v
	}

	return s
}

// Min returns the smallest element.
// Errors: ErrEmpty on an empty array.
func (a *Array[T]) Min() (T, error) {
	return a.extreme("Min", func(x, best T) bool { return x < best })
}

// Max returns the largest element.
// Errors: ErrEmpty on an empty array.
func (a *Array[T]) Max() (T, error) {
	return a.extreme("Max", func(x, best T) bool { return x > best })
}

// extreme scans once and keeps the first element that wins under better.
func (a *Array[T]) extreme(op string, better func(x, best T) bool) (T, error) {
	if len(a.data) == 0 {
		var zero T

		return zero, opErrorf(op, ErrEmpty)
	}
	best := a.data[0]
	for _, v := range a.data[1:] {
		if better(v, best) {
			best = v
		}
	}

	return best, nil
}

// Mean returns Sum() / Len() in float64. The sum is accumulated in T and
// converted once, so integer arrays are not truncated by the division.
// Errors: ErrEmpty on an empty array.
func (a *Array[T]) Mean() (float64, error) {
	if len(a.data) == 0 {
		return 0, opErrorf("Mean", ErrEmpty)
	}

	return float64(a.Sum()) / float64(len(a.data)), nil
}
