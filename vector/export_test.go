// SPDX-License-Identifier: MIT

package vector

// Test bridge (white-box) for vector_test.
//   - Relocations_TestOnly reports how many elements reallocation has moved.
//   - TailZeroed_TestOnly checks that every slot past Len() holds the zero value.

// Relocations_TestOnly returns the number of elements copied by reallocation.
func Relocations_TestOnly[T any](v *Vector[T]) int { return v.relocated }

// TailZeroed_TestOnly reports whether buf[size:] holds only zero values.
func TailZeroed_TestOnly[T comparable](v *Vector[T]) bool {
	var zero T
	for _, x := range v.buf[v.size:] {
		if x != zero {
			return false
		}
	}

	return true
}
