// SPDX-License-Identifier: MIT

package ndarray

import (
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/ministl/iterator"
)

// Number is the element constraint: every integer and floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Array is a dense N-dimensional array.
//   - dims holds the extents; len(dims) is the rank and never changes.
//   - data is the flat buffer, len(data) == Π dims.
//
// Use New or one of its siblings; the zero value has rank 0 and is only
// good as a Swap/Move target.
type Array[T Number] struct {
	dims []int
	data []T
}

// Compile-time assertions.
var (
	_ iterator.Sequence[float64] = (*Array[float64])(nil)
	_ fmt.Stringer               = (*Array[float64])(nil)
)

// New returns a zero-filled array with the given extents.
// MAIN DESCRIPTION:
//   - Allocate Π dims elements in one buffer.
//
// Implementation:
//   - Stage 1: validate the shape (rank >= 1, extents >= 0).
//   - Stage 2: copy dims so later caller mutations do not leak in.
//   - Stage 3: allocate; make() zero-fills.
//
// Errors:
//   - ErrInvalidArgument for rank 0, a negative extent or an overflowing count.
//
// Complexity:
//   - Time O(Π dims), Space O(Π dims).
func New[T Number](dims ...int) (*Array[T], error) {
	n, err := elementCount(dims)
	if err != nil {
		return nil, arrayErrorf(ctxNew, dims, err)
	}

	return &Array[T]{dims: slices.Clone(dims), data: make([]T, n)}, nil
}

// NewFilled returns an array with every element set to value.
func NewFilled[T Number](value T, dims ...int) (*Array[T], error) {
	a, err := New[T](dims...)
	if err != nil {
		return nil, err
	}
	a.Fill(value)

	return a, nil
}

// FromList builds a rank-1 array from values. Any other rank is rejected:
// a flat list carries no shape for higher ranks.
// Errors: ErrInvalidArgument when rank != 1.
func FromList[T Number](rank int, values []T) (*Array[T], error) {
	if rank != 1 {
		return nil, fmt.Errorf("Array.FromList(rank=%d): %w", rank, ErrInvalidArgument)
	}

	return Vector1(values...), nil
}

// Vector1 builds a rank-1 array holding a copy of values.
func Vector1[T Number](values ...T) *Array[T] {
	return &Array[T]{dims: []int{len(values)}, data: slices.Clone(values)}
}

// Matrix2D returns a zero-filled rows x cols array.
func Matrix2D[T Number](rows, cols int) (*Array[T], error) { return New[T](rows, cols) }

// Matrix3D returns a zero-filled x x y x z array.
func Matrix3D[T Number](x, y, z int) (*Array[T], error) { return New[T](x, y, z) }

// Clone returns a deep copy.
// Complexity: O(Len()).
func (a *Array[T]) Clone() *Array[T] {
	return &Array[T]{dims: slices.Clone(a.dims), data: slices.Clone(a.data)}
}

// Move transfers the buffer to a new array. The receiver keeps its rank
// with every extent set to zero (Len 0) and stays usable.
// Complexity: O(rank).
func (a *Array[T]) Move() *Array[T] {
	out := &Array[T]{dims: a.dims, data: a.data}
	a.dims = make([]int, len(out.dims))
	a.data = nil

	return out
}

// Swap exchanges shape and contents with other in O(1).
func (a *Array[T]) Swap(other *Array[T]) {
	a.dims, other.dims = other.dims, a.dims
	a.data, other.data = other.data, a.data
}

// ---------- shape ----------

// Rank returns the number of dimensions.
func (a *Array[T]) Rank() int { return len(a.dims) }

// Len returns the total element count, Π dims.
func (a *Array[T]) Len() int { return len(a.data) }

// Empty reports whether the array holds no elements.
func (a *Array[T]) Empty() bool { return len(a.data) == 0 }

// Dimension returns the extent of dimension k.
// Errors: ErrOutOfRange when k is outside [0, Rank()).
func (a *Array[T]) Dimension(k int) (int, error) {
	if k < 0 || k >= len(a.dims) {
		return 0, fmt.Errorf("Array.Dimension(%d): %w", k, ErrOutOfRange)
	}

	return a.dims[k], nil
}

// Dimensions returns a copy of the extents.
func (a *Array[T]) Dimensions() []int { return slices.Clone(a.dims) }

// SameShape reports whether a and other have identical rank and extents.
func (a *Array[T]) SameShape(other *Array[T]) bool { return slices.Equal(a.dims, other.dims) }

// Data returns the flat buffer in storage order (dimension 0 fastest).
// The slice aliases the array.
func (a *Array[T]) Data() []T { return a.data }

// ---------- modifiers ----------

// Resize replaces the shape and reallocates a zero-filled buffer. The old
// elements are discarded regardless of overlap between the shapes.
//
// Errors: ErrInvalidArgument when the rank differs or an extent is negative.
func (a *Array[T]) Resize(dims ...int) error {
	var zero T

	return a.resize(ctxResize, zero, dims)
}

// ResizeFill is Resize with every new element set to value.
func (a *Array[T]) ResizeFill(value T, dims ...int) error {
	return a.resize("ResizeFill", value, dims)
}

func (a *Array[T]) resize(op string, value T, dims []int) error {
	if len(dims) != len(a.dims) {
		return arrayErrorf(op, dims, ErrInvalidArgument)
	}
	n, err := elementCount(dims)
	if err != nil {
		return arrayErrorf(op, dims, err)
	}
	a.dims = slices.Clone(dims)
	a.data = make([]T, n)
	var zero T
	if value != zero {
		a.Fill(value)
	}

	return nil
}

// Fill sets every element to value.
func (a *Array[T]) Fill(value T) {
	for i := range a.data {
		a.data[i] = value
	}
}

// Apply replaces every element with fn(flat, v), in storage order.
func (a *Array[T]) Apply(fn func(flat int, v T) T) {
	for i, v := range a.data {
		a.data[i] = fn(i, v)
	}
}

// Do calls fn for every element in storage order until fn returns false.
func (a *Array[T]) Do(fn func(flat int, v T) bool) {
	for i, v := range a.data {
		if !fn(i, v) {
			return
		}
	}
}

// ---------- equality ----------

// Equal reports whether both arrays have the same extents and elements.
func (a *Array[T]) Equal(other *Array[T]) bool {
	return slices.Equal(a.dims, other.dims) && slices.Equal(a.data, other.data)
}

// NotEqual is !Equal.
func (a *Array[T]) NotEqual(other *Array[T]) bool { return !a.Equal(other) }
