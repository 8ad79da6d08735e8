// SPDX-License-Identifier: MIT

package ndarray_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ministl/ndarray"
)

// ExampleArray_Sum builds a 2x3 array and reduces it.
func ExampleArray_Sum() {
	a, _ := ndarray.Matrix2D[int](2, 3)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			_ = a.Set2(i, j, i*3+j)
		}
	}
	mean, _ := a.Mean()
	fmt.Println(a)
	fmt.Println("sum:", a.Sum(), "mean:", mean)
	// Output:
	// [0, 1, 2]
	// [3, 4, 5]
	// sum: 15 mean: 2.5
}

// ExampleAdd shows shape mismatch rejection.
func ExampleAdd() {
	a, _ := ndarray.New[int](2, 2)
	b, _ := ndarray.New[int](2, 3)
	_, err := ndarray.Add(a, b)
	fmt.Println(errors.Is(err, ndarray.ErrInvalidArgument))
	// Output:
	// true
}
