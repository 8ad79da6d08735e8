// SPDX-License-Identifier: MIT

package vector

// Option configures a Vector at construction time.
// Option constructors panic only on nonsensical values (programmer error).
type Option[T any] func(*options[T])

// Cloner produces an independent copy of an element. It is used on every
// copy-construction path (NewFilled, NewFromRange, FromSlice, Clone,
// CopyFrom, InsertN, InsertRange, ResizeFill). A failing Cloner aborts the
// operation and rolls back everything copied so far.
type Cloner[T any] func(T) (T, error)

type options[T any] struct {
	capacity int       // initial reservation; 0 means no allocation
	cloner   Cloner[T] // nil means plain assignment
}

const panicNegativeCapacity = "vector: WithCapacity: capacity must be >= 0"

// WithCapacity reserves room for n elements up front.
func WithCapacity[T any](n int) Option[T] {
	if n < 0 {
		panic(panicNegativeCapacity)
	}

	return func(o *options[T]) { o.capacity = n }
}

// WithCloner installs a deep-copy function for elements holding references
// (pointers, slices, maps) that must not be shared between copies.
func WithCloner[T any](fn Cloner[T]) Option[T] {
	return func(o *options[T]) { o.cloner = fn }
}

// gatherOptions applies opts over the defaults.
func gatherOptions[T any](opts []Option[T]) options[T] {
	var o options[T]
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
