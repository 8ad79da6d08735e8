// SPDX-License-Identifier: MIT

package iterator

// Sequence is the contract a contiguous container satisfies to be traversed
// by Iterator.
//   - Len reports the number of live elements.
//   - Data returns the live elements as a slice sharing the container storage.
//
// Implementations MUST be pointer types (or otherwise comparable) because
// iterator equality compares the owning sequence.
type Sequence[T any] interface {
	Len() int
	Data() []T
}

// Iterator is a random-access position inside a Sequence.
// The zero value is a singular iterator: it compares equal only to other
// zero iterators and must not be dereferenced.
//
// Complexity: every method is O(1).
type Iterator[T any] struct {
	seq Sequence[T] // owning sequence (non-owning reference)
	pos int         // element index; Len() is the past-the-end position
}

// New returns an iterator at position pos of seq. No bounds check is made:
// past-the-end (pos == seq.Len()) and detached positions are legal values.
func New[T any](seq Sequence[T], pos int) Iterator[T] {
	return Iterator[T]{seq: seq, pos: pos}
}

// Begin returns an iterator to the first element of seq.
func Begin[T any](seq Sequence[T]) Iterator[T] { return Iterator[T]{seq: seq} }

// End returns the past-the-end iterator of seq.
func End[T any](seq Sequence[T]) Iterator[T] { return Iterator[T]{seq: seq, pos: seq.Len()} }

// Pos returns the element index the iterator addresses.
func (it Iterator[T]) Pos() int { return it.pos }

// Sequence returns the owning sequence (nil for the zero iterator).
func (it Iterator[T]) Sequence() Sequence[T] { return it.seq }

// Valid reports whether the iterator can be dereferenced.
func (it Iterator[T]) Valid() bool {
	return it.seq != nil && it.pos >= 0 && it.pos < it.seq.Len()
}

// Get returns the addressed element. Panics if !Valid().
func (it Iterator[T]) Get() T { return it.seq.Data()[it.pos] }

// Set overwrites the addressed element. Panics if !Valid().
func (it Iterator[T]) Set(v T) { it.seq.Data()[it.pos] = v }

// Ptr returns a pointer to the addressed element. The pointer is only
// meaningful until the next reallocation of the owning container.
func (it Iterator[T]) Ptr() *T { return &it.seq.Data()[it.pos] }

// At returns the element n positions away (it[n]).
func (it Iterator[T]) At(n int) T { return it.seq.Data()[it.pos+n] }

// Next returns the iterator one position forward (++it).
func (it Iterator[T]) Next() Iterator[T] { return Iterator[T]{seq: it.seq, pos: it.pos + 1} }

// Prev returns the iterator one position backward (--it).
func (it Iterator[T]) Prev() Iterator[T] { return Iterator[T]{seq: it.seq, pos: it.pos - 1} }

// Add returns it + n.
func (it Iterator[T]) Add(n int) Iterator[T] { return Iterator[T]{seq: it.seq, pos: it.pos + n} }

// Sub returns it - n.
func (it Iterator[T]) Sub(n int) Iterator[T] { return Iterator[T]{seq: it.seq, pos: it.pos - n} }

// Advance moves the iterator in place by n (it += n; negative n moves back).
func (it *Iterator[T]) Advance(n int) { it.pos += n }

// Distance returns it - other, the signed number of steps from other to it.
// Both iterators are expected to belong to the same sequence.
func (it Iterator[T]) Distance(other Iterator[T]) int { return it.pos - other.pos }

// Equal reports whether both iterators address the same position of the
// same sequence.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.seq == other.seq && it.pos == other.pos
}

// Compare orders two iterators of the same sequence by position:
// -1 if it < other, 0 if equal, +1 if it > other.
func (it Iterator[T]) Compare(other Iterator[T]) int {
	switch {
	case it.pos < other.pos:
		return -1
	case it.pos > other.pos:
		return 1
	default:
		return 0
	}
}

// Less reports it < other.
func (it Iterator[T]) Less(other Iterator[T]) bool { return it.pos < other.pos }

// LessEq reports it <= other.
func (it Iterator[T]) LessEq(other Iterator[T]) bool { return it.pos <= other.pos }

// Greater reports it > other.
func (it Iterator[T]) Greater(other Iterator[T]) bool { return it.pos > other.pos }

// GreaterEq reports it >= other.
func (it Iterator[T]) GreaterEq(other Iterator[T]) bool { return it.pos >= other.pos }

// SliceSequence adapts a plain Go slice to Sequence so that slices can feed
// range constructors and algorithms. The slice header is captured once;
// appends made elsewhere are not observed.
type SliceSequence[T any] struct {
	s []T
}

// Slice wraps s (no copy).
func Slice[T any](s []T) *SliceSequence[T] { return &SliceSequence[T]{s: s} }

// Len implements Sequence.
func (ss *SliceSequence[T]) Len() int { return len(ss.s) }

// Data implements Sequence.
func (ss *SliceSequence[T]) Data() []T { return ss.s }

// Begin returns an iterator to the first element.
func (ss *SliceSequence[T]) Begin() Iterator[T] { return Begin[T](ss) }

// End returns the past-the-end iterator.
func (ss *SliceSequence[T]) End() Iterator[T] { return End[T](ss) }
