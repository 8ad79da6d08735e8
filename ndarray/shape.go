// SPDX-License-Identifier: MIT

package ndarray

import "math"

// ---------- error context tags ----------

const (
	ctxNew    = "New"
	ctxResize = "Resize"
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxOffset = "Offset"
)

// elementCount validates a shape and returns the product of its extents.
// MAIN DESCRIPTION:
//   - Single source of truth for shape legality.
//
// Implementation:
//   - Stage 1: rank must be >= 1.
//   - Stage 2: every extent must be >= 0 (zero extents give an empty array).
//   - Stage 3: multiply with an overflow guard.
//
// Errors:
//   - ErrInvalidArgument on rank 0, a negative extent, or an element count
//     that does not fit in int.
//
// Complexity:
//   - Time O(rank), Space O(1).
func elementCount(dims []int) (int, error) {
	if len(dims) == 0 {
		return 0, ErrInvalidArgument
	}
	n := 1
	for _, d := range dims {
		if d < 0 {
			return 0, ErrInvalidArgument
		}
		if d != 0 && n > math.MaxInt/d {
			return 0, ErrInvalidArgument
		}
		n *= d
	}

	return n, nil
}

// offset maps an N-ary index to its flat position using
// Σ idx[k] * Π_{j<k} dims[j]. Dimension 0 has multiplier 1.
//
// Errors:
//   - ErrInvalidArgument for a rank-0 array or when len(idx) != len(dims).
//   - ErrOutOfRange when any idx[k] is outside [0, dims[k]).
func offset(dims, idx []int) (int, error) {
	if len(dims) == 0 || len(idx) != len(dims) {
		return 0, ErrInvalidArgument
	}
	off, stride := 0, 1
	for k, i := range idx {
		if i < 0 || i >= dims[k] {
			return 0, ErrOutOfRange
		}
		off += i * stride
		stride *= dims[k]
	}

	return off, nil
}
