// SPDX-License-Identifier: MIT

package iterator

// ReverseIterator walks a sequence backwards on top of a forward Iterator.
// It keeps the classic "base is one past the addressed element" relation:
// NewReverse(End) addresses the last element and NewReverse(Begin) is the
// reverse past-the-end.
type ReverseIterator[T any] struct {
	base Iterator[T]
}

// NewReverse adapts base into a reverse iterator.
func NewReverse[T any](base Iterator[T]) ReverseIterator[T] {
	return ReverseIterator[T]{base: base}
}

// Base returns the underlying forward iterator.
func (r ReverseIterator[T]) Base() Iterator[T] {
	return r.base
}

// Pos returns the forward index of the addressed element (base - 1).
func (r ReverseIterator[T]) Pos() int {
	return r.base.pos - 1
}

// Valid reports whether the iterator can be dereferenced.
func (r ReverseIterator[T]) Valid() bool {
	return r.base.Prev().Valid()
}

// Get returns the addressed element. Panics if !Valid().
func (r ReverseIterator[T]) Get() T {
	return r.base.At(-1)
}

// Set overwrites the addressed element.
func (r ReverseIterator[T]) Set(v T) { r.base.Prev().Set(v) }

// Ptr returns a pointer to the addressed element.
func (r ReverseIterator[T]) Ptr() *T {
	return r.base.Prev().Ptr()
}

// At returns the element n reverse steps away.
func (r ReverseIterator[T]) At(n int) T {
	return r.base.At(-n - 1)
}

// Next moves one element towards the front of the sequence.
func (r ReverseIterator[T]) Next() ReverseIterator[T] {
	return ReverseIterator[T]{base: r.base.Prev()}
}

// Prev moves one element towards the back of the sequence.
func (r ReverseIterator[T]) Prev() ReverseIterator[T] {
	return ReverseIterator[T]{base: r.base.Next()}
}

// Add returns r + n in reverse direction.
func (r ReverseIterator[T]) Add(n int) ReverseIterator[T] {
	return ReverseIterator[T]{base: r.base.Sub(n)}
}

// Sub returns r - n in reverse direction.
func (r ReverseIterator[T]) Sub(n int) ReverseIterator[T] {
	return ReverseIterator[T]{base: r.base.Add(n)}
}

// Advance moves the iterator in place by n reverse steps.
func (r *ReverseIterator[T]) Advance(n int) {
	r.base.pos -= n
}

// Distance returns r - other measured in reverse steps.
func (r ReverseIterator[T]) Distance(other ReverseIterator[T]) int {
	return other.base.pos - r.base.pos
}

// Equal reports whether both reverse iterators share the same base.
func (r ReverseIterator[T]) Equal(other ReverseIterator[T]) bool {
	return r.base.Equal(other.base)
}

// Less reports r < other (r is closer to the reverse beginning).
func (r ReverseIterator[T]) Less(other ReverseIterator[T]) bool {
	return r.base.pos > other.base.pos
}

// LessEq reports r <= other.
func (r ReverseIterator[T]) LessEq(other ReverseIterator[T]) bool {
	return r.base.pos >= other.base.pos
}

// Greater reports r > other.
func (r ReverseIterator[T]) Greater(other ReverseIterator[T]) bool {
	return r.base.pos < other.base.pos
}

// GreaterEq reports r >= other.
func (r ReverseIterator[T]) GreaterEq(other ReverseIterator[T]) bool {
	return r.base.pos <= other.base.pos
}
