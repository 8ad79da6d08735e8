// SPDX-License-Identifier: MIT

// Package iterator provides the random-access iterator shared by the
// contiguous containers of ministl (vector, ndarray), a reverse adaptor and
// a small set of range algorithms (find, count, transform, sort, ...).
//
// An Iterator is a value: a (sequence, position) pair. It never owns memory
// and it is never invalidated in the dangling-pointer sense; after a
// reallocation or a shift it simply addresses whatever element now lives at
// its position. Dereferencing a position outside [0, Len) panics with the
// runtime bounds error, which is the Go rendition of "undefined".
//
// Ranges are half-open [first, last). Algorithms validate that both ends
// belong to the same sequence and that first <= last, returning ErrBadRange
// otherwise.
//
// Quick example:
//
//	s := iterator.Slice([]int{3, 1, 2})
//	_ = iterator.SortOrdered(s.Begin(), s.End())
//	it, _ := iterator.Find(s.Begin(), s.End(), 2) // it.Pos() == 1
package iterator
