// SPDX-License-Identifier: MIT
//
// Element-wise arithmetic.
//   - In-place forms (AddInPlace, SubInPlace, ScaleInPlace, DivInPlace) mutate
//     the receiver; the operand is never modified.
//   - Free forms (Add, Sub, Scale, ScaleLeft, Div) run the in-place form on a
//     Clone and never touch their inputs.
//   - Loops run flat 0..n-1 over the shared layout, so two arrays of the same
//     shape line up element for element.

package ndarray

import "fmt"

// ewCombine writes fn(a[i], b[i]) into a for every i after checking shapes.
func (a *Array[T]) ewCombine(op string, b *Array[T], fn func(x, y T) T) error {
	if !a.SameShape(b) {
		return fmt.Errorf("Array.%s(%v vs %v): %w", op, a.dims, b.dims, ErrInvalidArgument)
	}
	for i := range a.data {
		a.data[i] = fn(a.data[i], b.data[i])
	}

	return nil
}

// AddInPlace adds other element-wise.
// Errors: ErrInvalidArgument when the extents differ; a is then unchanged.
func (a *Array[T]) AddInPlace(other *Array[T]) error {
	return a.ewCombine("AddInPlace", other, func(x, y T) T { return x + y })
}

// SubInPlace subtracts other element-wise.
// Errors: ErrInvalidArgument when the extents differ; a is then unchanged.
func (a *Array[T]) SubInPlace(other *Array[T]) error {
	return a.ewCombine("SubInPlace", other, func(x, y T) T { return x - y })
}

// ScaleInPlace multiplies every element by s.
func (a *Array[T]) ScaleInPlace(s T) {
	for i := range a.data {
		a.data[i] *= s
	}
}

// DivInPlace divides every element by s. Integer element types truncate.
// Errors: ErrInvalidArgument when s == 0; a is then unchanged.
func (a *Array[T]) DivInPlace(s T) error {
	if s == 0 {
		return opErrorf("DivInPlace", ErrInvalidArgument)
	}
	for i := range a.data {
		a.data[i] /= s
	}

	return nil
}

// Add returns a + b as a new array.
func Add[T Number](a, b *Array[T]) (*Array[T], error) {
	out := a.Clone()
	if err := out.AddInPlace(b); err != nil {
		return nil, err
	}

	return out, nil
}

// Sub returns a - b as a new array.
func Sub[T Number](a, b *Array[T]) (*Array[T], error) {
	out := a.Clone()
	if err := out.SubInPlace(b); err != nil {
		return nil, err
	}

	return out, nil
}

// Scale returns a * s as a new array.
func Scale[T Number](a *Array[T], s T) *Array[T] {
	out := a.Clone()
	out.ScaleInPlace(s)

	return out
}

// ScaleLeft returns s * a as a new array.
func ScaleLeft[T Number](s T, a *Array[T]) *Array[T] { return Scale(a, s) }

// Div returns a / s as a new array.
// Errors: ErrInvalidArgument when s == 0.
func Div[T Number](a *Array[T], s T) (*Array[T], error) {
	out := a.Clone()
	if err := out.DivInPlace(s); err != nil {
		return nil, err
	}

	return out, nil
}
