// SPDX-License-Identifier: MIT

package iterator

import "errors"

var (
	// ErrBadRange is returned when [first, last) does not denote a valid range:
	// the iterators come from different sequences, first > last, or an end lies
	// outside [0, Len].
	ErrBadRange = errors.New("iterator: invalid range")

	// ErrShortDestination is returned when an output range cannot hold the
	// number of elements an algorithm writes.
	ErrShortDestination = errors.New("iterator: destination too short")
)
