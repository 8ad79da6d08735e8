// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/katalvlaran/ministl/iterator"
)

// PushBack appends value. When Len() == Cap() the capacity doubles first
// (1 for an empty buffer), giving amortized O(1) appends.
//
// Exceeding MaxSize is an allocation failure and surfaces as the runtime's
// own panic, unmodified.
func (v *Vector[T]) PushBack(value T) {
	if v.size == len(v.buf) {
		v.grow(v.size + 1)
	}
	v.buf[v.size] = value
	v.size++
}

// Append pushes every value in order, reallocating at most once.
func (v *Vector[T]) Append(values ...T) {
	v.grow(v.size + len(values))
	v.size += copy(v.buf[v.size:], values)
}

// PopBack removes the last element. On an empty vector it does nothing.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		return
	}
	v.size--
	var zero T
	v.buf[v.size] = zero
}

// TryPopBack removes and returns the last element.
// Errors: ErrEmpty on an empty vector (the vector is unchanged).
func (v *Vector[T]) TryPopBack() (T, error) {
	var zero T
	if v.size == 0 {
		return zero, vectorErrorf("TryPopBack", 0, ErrEmpty)
	}
	v.size--
	out := v.buf[v.size]
	v.buf[v.size] = zero

	return out, nil
}

// Insert places value before position pos (0 <= pos <= Len()) and returns an
// iterator to it. Every iterator into the vector is invalidated.
//
// Errors: ErrOutOfRange for pos outside [0, Len()].
// Complexity: O(Len() - pos) plus a possible reallocation.
func (v *Vector[T]) Insert(pos int, value T) (iterator.Iterator[T], error) {
	if pos < 0 || pos > v.size {
		return v.End(), vectorErrorf("Insert", pos, ErrOutOfRange)
	}
	v.grow(v.size + 1)
	copy(v.buf[pos+1:v.size+1], v.buf[pos:v.size])
	v.buf[pos] = value
	v.size++

	return iterator.New[T](v, pos), nil
}

// InsertN places count copies of value before pos and returns an iterator to
// the first inserted element (pos itself when count == 0).
//
// Errors:
//   - ErrOutOfRange for pos outside [0, Len()].
//   - ErrInvalidArgument for count < 0; ErrLength past MaxSize.
//   - the Cloner's error; the vector is left unchanged.
func (v *Vector[T]) InsertN(pos, count int, value T) (iterator.Iterator[T], error) {
	if pos < 0 || pos > v.size {
		return v.End(), vectorErrorf("InsertN", pos, ErrOutOfRange)
	}
	if count < 0 {
		return v.End(), vectorErrorf("InsertN", count, ErrInvalidArgument)
	}
	if count > v.MaxSize()-v.size {
		return v.End(), vectorErrorf("InsertN", count, ErrLength)
	}
	scratch := make([]T, count)
	if err := v.cloneFill(scratch, value); err != nil {
		return v.End(), fmt.Errorf("Vector.InsertN: %w", err)
	}

	return v.insertSlice(pos, scratch), nil
}

// InsertRange copies [first, last) before pos and returns an iterator to the
// first inserted element. The source is copied aside before any shifting,
// so first/last may point into v itself.
//
// Errors:
//   - ErrOutOfRange for pos outside [0, Len()].
//   - iterator.ErrBadRange for a malformed source range; ErrLength past MaxSize.
//   - the Cloner's error; the vector is left unchanged.
func (v *Vector[T]) InsertRange(pos int, first, last iterator.Iterator[T]) (iterator.Iterator[T], error) {
	if pos < 0 || pos > v.size {
		return v.End(), vectorErrorf("InsertRange", pos, ErrOutOfRange)
	}
	n, err := iterator.Distance(first, last)
	if err != nil {
		return v.End(), fmt.Errorf("Vector.InsertRange: %w", err)
	}
	if n > v.MaxSize()-v.size {
		return v.End(), vectorErrorf("InsertRange", n, ErrLength)
	}
	scratch := make([]T, n)
	if err = v.cloneInto(scratch, first.Sequence().Data()[first.Pos():last.Pos()]); err != nil {
		return v.End(), fmt.Errorf("Vector.InsertRange: %w", err)
	}

	return v.insertSlice(pos, scratch), nil
}

// insertSlice opens a gap of len(src) at pos and copies src into it.
// Stage 1: grow by doubling until the new size fits (one reallocation).
// Stage 2: shift buf[pos:size] right; copy handles the overlap.
// Stage 3: fill the gap, bump size.
func (v *Vector[T]) insertSlice(pos int, src []T) iterator.Iterator[T] {
	n := len(src)
	if n == 0 {
		return iterator.New[T](v, pos)
	}
	v.grow(v.size + n)
	copy(v.buf[pos+n:v.size+n], v.buf[pos:v.size])
	copy(v.buf[pos:pos+n], src)
	v.size += n

	return iterator.New[T](v, pos)
}

// Erase removes the element at pos and returns an iterator to the element
// that now occupies pos (End() if the last element was erased).
//
// Errors: ErrOutOfRange for pos outside [0, Len()).
func (v *Vector[T]) Erase(pos int) (iterator.Iterator[T], error) {
	if pos < 0 || pos >= v.size {
		return v.End(), vectorErrorf("Erase", pos, ErrOutOfRange)
	}

	return v.eraseRange(pos, pos+1), nil
}

// EraseRange removes the elements in [first, last) and returns an iterator to
// the element now at first.
//
// Errors: ErrOutOfRange unless 0 <= first <= last <= Len().
func (v *Vector[T]) EraseRange(first, last int) (iterator.Iterator[T], error) {
	if first < 0 || first > last || last > v.size {
		return v.End(), fmt.Errorf("Vector.EraseRange(%d,%d): %w", first, last, ErrOutOfRange)
	}

	return v.eraseRange(first, last), nil
}

// eraseRange closes the gap [first, last) and zeroes the vacated tail.
func (v *Vector[T]) eraseRange(first, last int) iterator.Iterator[T] {
	n := last - first
	if n > 0 {
		copy(v.buf[first:], v.buf[last:v.size])
		clear(v.buf[v.size-n : v.size])
		v.size -= n
	}

	return iterator.New[T](v, first)
}

// Resize sets Len() to n. Growing appends zero values (reallocating to
// exactly n when n > Cap()); shrinking destroys the trailing elements.
//
// Errors: ErrInvalidArgument for n < 0; ErrLength for n > MaxSize().
func (v *Vector[T]) Resize(n int) error {
	if err := v.checkResize("Resize", n); err != nil {
		return err
	}
	if n <= v.size {
		clear(v.buf[n:v.size])
	} else if n > len(v.buf) {
		v.reallocate(n)
	}
	// Slots past size are kept zeroed, so growing needs no fill.
	v.size = n

	return nil
}

// ResizeFill is Resize with new slots set to copies of value.
// Errors: as Resize, plus the Cloner's error (the vector is then unchanged).
func (v *Vector[T]) ResizeFill(n int, value T) error {
	if err := v.checkResize("ResizeFill", n); err != nil {
		return err
	}
	if n <= v.size {
		clear(v.buf[n:v.size])
		v.size = n

		return nil
	}
	scratch := make([]T, n-v.size)
	if err := v.cloneFill(scratch, value); err != nil {
		return fmt.Errorf("Vector.ResizeFill: %w", err)
	}
	if n > len(v.buf) {
		v.reallocate(n)
	}
	copy(v.buf[v.size:n], scratch)
	v.size = n

	return nil
}

func (v *Vector[T]) checkResize(op string, n int) error {
	if n < 0 {
		return vectorErrorf(op, n, ErrInvalidArgument)
	}
	if n > v.MaxSize() {
		return vectorErrorf(op, n, ErrLength)
	}

	return nil
}

// Clear destroys every element; the capacity is unchanged.
func (v *Vector[T]) Clear() {
	clear(v.buf[:v.size])
	v.size = 0
}
