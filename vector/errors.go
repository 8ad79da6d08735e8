// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates a position outside the live elements
	// (At/SetAt/Erase) or outside [0, Len] for insertion points.
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrInvalidArgument indicates a nonsensical argument such as a negative
	// count.
	ErrInvalidArgument = errors.New("vector: invalid argument")

	// ErrEmpty indicates an operation that needs at least one element.
	ErrEmpty = errors.New("vector: empty vector")

	// ErrLength indicates a requested size or capacity above MaxSize.
	ErrLength = errors.New("vector: length exceeds max size")
)

// vectorErrorf attaches method context and the offending position to a
// sentinel, e.g. "Vector.At(7): vector: index out of range".
func vectorErrorf(method string, pos int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, pos, err)
}
