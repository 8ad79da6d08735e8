// SPDX-License-Identifier: MIT

// Package vector implements Vector, a contiguous, growable, owning sequence
// with amortized O(1) append and random-access iterators.
//
// Storage model:
//   - buf is the allocation; len(buf) is the capacity.
//   - The first Len() slots hold live elements, the rest hold zero values
//     (allocated but unused). Every path that destroys an element zeroes
//     its slot so the garbage collector can reclaim what it referenced.
//   - Growth doubles the capacity starting from 1; elements are relocated
//     once per reallocation, which keeps N appends at O(N) total moves.
//
// Errors:
//   - Checked accessors and modifiers return the sentinels of errors.go
//     wrapped with method context; match them with errors.Is.
//   - Get, Set and Ref are unchecked: an index outside [0, Len) panics with
//     the runtime bounds error, exactly like indexing a slice.
//
// A Vector is not safe for concurrent use.
package vector
