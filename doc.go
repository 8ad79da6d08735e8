// SPDX-License-Identifier: MIT

// Package ministl is a small library of generic containers with explicit
// storage and growth contracts.
//
// Everything is organized under four subpackages:
//
//	iterator/  random-access position over a contiguous sequence, reverse
//	           adaptor, range algorithms (Find, Sort, Accumulate, ...)
//	vector/    Vector[T]: contiguous and growable with doubling capacity,
//	           checked/unchecked access, iterator-based insert/erase
//	ndarray/   Array[T]: dense N-dimensional numeric array in one flat buffer,
//	           element-wise arithmetic and reductions
//	list/      Singly[T] and Doubly[T] linked lists
//
// Quick example:
//
//	v := vector.New[int]()
//	_ = v.Reserve(100)
//	for i := 0; i < 100; i++ {
//		v.PushBack(i)
//	}
//	v.ShrinkToFit() // Cap() == 100
//
// Library packages return sentinel errors wrapped with context (match them
// with errors.Is) and never log. The ministl command in cmd/ministl runs the
// demo scenarios with zap logging and YAML/TOML configuration.
//
//	go install github.com/katalvlaran/ministl/cmd/ministl@latest
package ministl
