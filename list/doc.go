// SPDX-License-Identifier: MIT

// Package list provides two node-based sequences:
//   - Singly[T]: a forward list with head and tail pointers, O(1) PushFront,
//     PushBack and PopFront, O(i) positional Insert/Erase.
//   - Doubly[T]: a list bounded by two sentinel nodes, O(1) push/pop at both
//     ends, and positional access that walks from the closer end
//     (O(min(i, n-i))).
//
// Both lists own their nodes exclusively; Clone deep-copies with plain
// assignment of elements. Positions are zero-based. Checked operations
// return ErrOutOfRange or ErrEmpty wrapped with method context. Lists are not
// safe for concurrent mutation.
package list
