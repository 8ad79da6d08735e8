// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"math"
	"strings"
	"unsafe"

	"github.com/katalvlaran/ministl/iterator"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// Vector is a contiguous owning sequence of T.
//   - buf holds the allocation (len(buf) == Cap()).
//   - size counts the live elements at buf[0:size].
//   - Slots buf[size:] always hold the zero value.
//
// The zero value is an empty vector ready to use.
type Vector[T any] struct {
	buf    []T       // allocation; len(buf) is the capacity
	size   int       // live elements
	cloner Cloner[T] // copy policy; nil means assignment

	relocated int // elements moved by reallocation since construction
}

// Compile-time assertions.
var (
	_ iterator.Sequence[int] = (*Vector[int])(nil)
	_ fmt.Stringer           = (*Vector[int])(nil)
)

// New returns an empty vector. Without WithCapacity nothing is allocated.
// Complexity: O(1), or O(n) with WithCapacity(n).
func New[T any](opts ...Option[T]) *Vector[T] {
	o := gatherOptions(opts)
	v := &Vector[T]{cloner: o.cloner}
	if o.capacity > 0 {
		v.buf = make([]T, o.capacity)
	}

	return v
}

// NewFilled returns a vector holding count copies of value, with capacity
// exactly count.
//
// Errors:
//   - ErrInvalidArgument when count < 0.
//   - ErrLength when count > MaxSize().
//   - the Cloner's error; nothing is retained in that case.
//
// Complexity: O(count).
func NewFilled[T any](count int, value T, opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	if count < 0 {
		return nil, vectorErrorf("NewFilled", count, ErrInvalidArgument)
	}
	if count > v.MaxSize() {
		return nil, vectorErrorf("NewFilled", count, ErrLength)
	}
	if count == 0 {
		return v, nil
	}
	buf := make([]T, count)
	if err := v.cloneFill(buf, value); err != nil {
		return nil, fmt.Errorf("Vector.NewFilled: %w", err)
	}
	v.buf, v.size = buf, count

	return v, nil
}

// NewFromRange copy-constructs a vector from [first, last). The distance is
// computed once and a single allocation of exactly that size is made.
//
// Errors:
//   - iterator.ErrBadRange for a malformed range.
//   - the Cloner's error; the partially built buffer is zeroed and dropped.
//
// Complexity: O(n).
func NewFromRange[T any](first, last iterator.Iterator[T], opts ...Option[T]) (*Vector[T], error) {
	n, err := iterator.Distance(first, last)
	if err != nil {
		return nil, fmt.Errorf("Vector.NewFromRange: %w", err)
	}
	v := New(opts...)
	if n == 0 {
		return v, nil
	}
	buf := make([]T, n)
	if err = v.cloneInto(buf, first.Sequence().Data()[first.Pos():last.Pos()]); err != nil {
		return nil, fmt.Errorf("Vector.NewFromRange: %w", err)
	}
	v.buf, v.size = buf, n

	return v, nil
}

// FromSlice copy-constructs a vector from the elements of values.
// It is the range constructor applied to a plain slice.
func FromSlice[T any](values []T, opts ...Option[T]) (*Vector[T], error) {
	s := iterator.Slice(values)

	return NewFromRange(s.Begin(), s.End(), opts...)
}

// Of builds a vector from a literal list of values (capacity == len(values)).
// Elements are assigned, never cloned, so Of cannot fail.
func Of[T any](values ...T) *Vector[T] {
	v := &Vector[T]{}
	if len(values) > 0 {
		v.buf = make([]T, len(values))
		v.size = copy(v.buf, values)
	}

	return v
}

// Clone returns a deep copy with capacity exactly Len(), copying every
// element through the configured Cloner.
//
// Errors: the Cloner's error; no partial copy is returned.
// Complexity: O(n).
func (v *Vector[T]) Clone() (*Vector[T], error) {
	out := &Vector[T]{cloner: v.cloner}
	if v.size == 0 {
		return out, nil
	}
	buf := make([]T, v.size)
	if err := v.cloneInto(buf, v.buf[:v.size]); err != nil {
		return nil, fmt.Errorf("Vector.Clone: %w", err)
	}
	out.buf, out.size = buf, v.size

	return out, nil
}

// CopyFrom replaces the contents of v with a deep copy of src
// (copy-and-swap: on error v is left untouched).
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	if v == src {
		return nil
	}
	tmp, err := src.Clone()
	if err != nil {
		return fmt.Errorf("Vector.CopyFrom: %w", err)
	}
	tmp.cloner = v.cloner
	v.Swap(tmp)

	return nil
}

// Move transfers ownership of the buffer to a new vector. The receiver is
// left empty (Len 0, Cap 0, no allocation) and stays fully usable.
// Complexity: O(1).
func (v *Vector[T]) Move() *Vector[T] {
	out := &Vector[T]{buf: v.buf, size: v.size, cloner: v.cloner}
	v.buf, v.size = nil, 0

	return out
}

// MoveFrom releases the current contents of v and steals the buffer of src,
// leaving src empty.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.Clear()
	v.buf, v.size = src.buf, src.size
	src.buf, src.size = nil, 0
}

// Assign replaces the contents with values (operator= from a list).
// Capacity is kept when it suffices.
func (v *Vector[T]) Assign(values ...T) {
	v.Clear()
	if len(values) > len(v.buf) {
		v.buf = make([]T, len(values))
	}
	v.size = copy(v.buf, values)
}

// Swap exchanges the contents of v and other in O(1); no element moves.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf, other.buf = other.buf, v.buf
	v.size, other.size = other.size, v.size
	v.cloner, other.cloner = other.cloner, v.cloner
}

// Swap is the non-member form of a.Swap(b).
func Swap[T any](a, b *Vector[T]) { a.Swap(b) }

// MaxSize returns the largest element count the vector accepts.
// Zero-sized element types are bounded only by the int range.
func (v *Vector[T]) MaxSize() int {
	var zero T
	sz := int(unsafe.Sizeof(zero))
	if sz == 0 {
		return math.MaxInt
	}

	return math.MaxInt / sz
}

// String renders the live elements as "[a, b, c]".
func (v *Vector[T]) String() string {
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for i := 0; i < v.size; i++ {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		fmt.Fprint(&b, v.buf[i])
	}
	b.WriteString(_fmtClose)

	return b.String()
}

// cloneInto copies src into dst (len(dst) >= len(src)) through the Cloner.
// On failure every slot written so far is zeroed before returning, so the
// caller can drop dst without retaining partial copies.
func (v *Vector[T]) cloneInto(dst, src []T) error {
	if v.cloner == nil {
		copy(dst, src)

		return nil
	}
	for i := range src {
		c, err := v.cloner(src[i])
		if err != nil {
			clear(dst[:i])

			return fmt.Errorf("element %d: %w", i, err)
		}
		dst[i] = c
	}

	return nil
}

// cloneFill writes a copy of value into every slot of dst with the same
// rollback contract as cloneInto.
func (v *Vector[T]) cloneFill(dst []T, value T) error {
	if v.cloner == nil {
		for i := range dst {
			dst[i] = value
		}

		return nil
	}
	for i := range dst {
		c, err := v.cloner(value)
		if err != nil {
			clear(dst[:i])

			return fmt.Errorf("element %d: %w", i, err)
		}
		dst[i] = c
	}

	return nil
}
