// SPDX-License-Identifier: MIT

// Package ndarray provides Array[T], a dense N-dimensional numeric array
// stored in a single flat buffer.
//
// Layout:
//   - The rank (number of dimensions) is fixed at construction.
//   - The element at (i0, i1, ..., iN-1) lives at offset
//     Σ i_k * Π_{j<k} dim_j, so dimension 0 varies fastest in the buffer.
//   - Iteration (Begin/End, All, Values) visits the buffer in storage order
//     and is unaware of the N-dimensional structure.
//
// Errors:
//   - ErrOutOfRange: an index outside its extent, a flat index outside
//     [0, Len), or a dimension number outside [0, Rank).
//   - ErrInvalidArgument: rank or extent misuse, shape mismatch in
//     arithmetic, division by zero, list construction with rank != 1.
//   - ErrEmpty: Min/Max/Mean on an array with no elements.
//
// Every error is wrapped with method context and matches its sentinel via
// errors.Is. Nothing in the package panics on caller input.
//
// Resize is destructive: the old elements are discarded and the new buffer
// is zero- or value-filled. Arrays are not safe for concurrent mutation.
package ndarray
