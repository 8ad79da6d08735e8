// SPDX-License-Identifier: MIT

package list

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates a position outside the list.
	ErrOutOfRange = errors.New("list: index out of range")

	// ErrEmpty indicates an operation that needs at least one element.
	ErrEmpty = errors.New("list: empty list")
)

func listErrorf(kind, method string, index int, err error) error {
	return fmt.Errorf("%s.%s(%d): %w", kind, method, index, err)
}
