// SPDX-License-Identifier: MIT

package vector

// Reserve makes room for at least n elements. When n <= Cap() it is a no-op
// (it never shrinks and never fails for n < Len()); otherwise the buffer is
// reallocated to exactly n.
//
// Errors: ErrLength when n > MaxSize().
// Complexity: O(Len()) when reallocating, O(1) otherwise.
func (v *Vector[T]) Reserve(n int) error {
	if n <= len(v.buf) {
		return nil
	}
	if n > v.MaxSize() {
		return vectorErrorf("Reserve", n, ErrLength)
	}
	v.reallocate(n)

	return nil
}

// ShrinkToFit reallocates the buffer to exactly Len() when Cap() > Len().
// An empty vector releases its buffer entirely.
func (v *Vector[T]) ShrinkToFit() {
	if len(v.buf) > v.size {
		v.reallocate(v.size)
	}
}

// reallocate moves the live elements into a fresh buffer of newCap slots.
// Stage 1: allocate (nil for newCap == 0).
// Stage 2: relocate buf[:size]; the old buffer becomes garbage.
// Precondition (internal): newCap >= size.
func (v *Vector[T]) reallocate(newCap int) {
	var nb []T
	if newCap > 0 {
		nb = make([]T, newCap)
	}
	v.relocated += copy(nb, v.buf[:v.size])
	v.buf = nb
}

// nextCapacity applies the growth policy (0 -> 1, otherwise doubling)
// until the capacity covers required, clamped to MaxSize.
func (v *Vector[T]) nextCapacity(required int) int {
	c, limit := len(v.buf), v.MaxSize()
	for c < required {
		if c == 0 {
			c = 1

			continue
		}
		if c > limit/2 {
			return limit
		}
		c *= 2
	}

	return c
}

// grow ensures room for required elements with a single reallocation.
func (v *Vector[T]) grow(required int) {
	if required > len(v.buf) {
		v.reallocate(v.nextCapacity(required))
	}
}
