// SPDX-License-Identifier: MIT

package ndarray

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates an index outside its dimension's extent or a
	// flat index outside [0, Len).
	ErrOutOfRange = errors.New("ndarray: index out of range")

	// ErrInvalidArgument indicates a bad rank, a negative extent, mismatched
	// shapes in arithmetic, or division by zero.
	ErrInvalidArgument = errors.New("ndarray: invalid argument")

	// ErrEmpty indicates a reduction that needs at least one element.
	ErrEmpty = errors.New("ndarray: empty array")
)

// arrayErrorf attaches method context and the offending coordinates,
// e.g. "Array.At([1 7]): ndarray: index out of range".
func arrayErrorf(method string, idx []int, err error) error {
	return fmt.Errorf("Array.%s(%v): %w", method, idx, err)
}

// opErrorf attaches method context only.
func opErrorf(method string, err error) error {
	return fmt.Errorf("Array.%s: %w", method, err)
}
