// SPDX-License-Identifier: MIT

package list

import "iter"

const kindDoubly = "Doubly"

type dnode[T any] struct {
	value      T // unused in sentinels
	prev, next *dnode[T]
}

// Doubly is a doubly linked list framed by two sentinel nodes, so every real
// node has both neighbours and no edge case touches nil links.
//   - head.next is the first element, tail.prev the last.
//   - An empty list has head.next == tail.
//
// Use NewDoubly or DoublyOf; the zero value is initialized lazily on first
// use.
type Doubly[T any] struct {
	head, tail *dnode[T]
	size       int
}

// NewDoubly returns an empty list.
func NewDoubly[T any]() *Doubly[T] {
	l := &Doubly[T]{}
	l.init()

	return l
}

// DoublyOf returns a list holding values in order.
func DoublyOf[T any](values ...T) *Doubly[T] {
	l := NewDoubly[T]()
	for _, v := range values {
		l.PushBack(v)
	}

	return l
}

func (l *Doubly[T]) init() {
	l.head, l.tail = &dnode[T]{}, &dnode[T]{}
	l.head.next, l.tail.prev = l.tail, l.head
	l.size = 0
}

func (l *Doubly[T]) lazyInit() {
	if l.head == nil {
		l.init()
	}
}

// insertBetween links a new node holding v between left and right.
func (l *Doubly[T]) insertBetween(left, right *dnode[T], v T) *dnode[T] {
	n := &dnode[T]{value: v, prev: left, next: right}
	left.next, right.prev = n, n
	l.size++

	return n
}

// unlink removes the real node n and returns its value.
func (l *Doubly[T]) unlink(n *dnode[T]) T {
	n.prev.next, n.next.prev = n.next, n.prev
	n.prev, n.next = nil, nil
	l.size--

	return n.value
}

// nodeAt walks from whichever end is closer to index (0 <= index < size).
func (l *Doubly[T]) nodeAt(index int) *dnode[T] {
	if index < l.size/2 {
		cur := l.head.next
		for i := 0; i < index; i++ {
			cur = cur.next
		}

		return cur
	}
	cur := l.tail.prev
	for i := l.size - 1; i > index; i-- {
		cur = cur.prev
	}

	return cur
}

// Len returns the number of elements.
func (l *Doubly[T]) Len() int { return l.size }

// Empty reports whether Len() == 0.
func (l *Doubly[T]) Empty() bool { return l.size == 0 }

// Front returns the first element. Errors: ErrEmpty.
func (l *Doubly[T]) Front() (T, error) {
	if l.size == 0 {
		var zero T

		return zero, listErrorf(kindDoubly, "Front", 0, ErrEmpty)
	}

	return l.head.next.value, nil
}

// Back returns the last element. Errors: ErrEmpty.
func (l *Doubly[T]) Back() (T, error) {
	if l.size == 0 {
		var zero T

		return zero, listErrorf(kindDoubly, "Back", 0, ErrEmpty)
	}

	return l.tail.prev.value, nil
}

// PushFront prepends v in O(1).
func (l *Doubly[T]) PushFront(v T) {
	l.lazyInit()
	l.insertBetween(l.head, l.head.next, v)
}

// PushBack appends v in O(1).
func (l *Doubly[T]) PushBack(v T) {
	l.lazyInit()
	l.insertBetween(l.tail.prev, l.tail, v)
}

// PopFront removes and returns the first element. Errors: ErrEmpty.
func (l *Doubly[T]) PopFront() (T, error) {
	if l.size == 0 {
		var zero T

		return zero, listErrorf(kindDoubly, "PopFront", 0, ErrEmpty)
	}

	return l.unlink(l.head.next), nil
}

// PopBack removes and returns the last element. Errors: ErrEmpty.
func (l *Doubly[T]) PopBack() (T, error) {
	if l.size == 0 {
		var zero T

		return zero, listErrorf(kindDoubly, "PopBack", 0, ErrEmpty)
	}

	return l.unlink(l.tail.prev), nil
}

// At returns the element at index, walking from the closer end.
// Errors: ErrOutOfRange for index outside [0, Len()).
func (l *Doubly[T]) At(index int) (T, error) {
	if index < 0 || index >= l.size {
		var zero T

		return zero, listErrorf(kindDoubly, "At", index, ErrOutOfRange)
	}

	return l.nodeAt(index).value, nil
}

// SetAt overwrites the element at index.
// Errors: ErrOutOfRange for index outside [0, Len()).
func (l *Doubly[T]) SetAt(index int, v T) error {
	if index < 0 || index >= l.size {
		return listErrorf(kindDoubly, "SetAt", index, ErrOutOfRange)
	}
	l.nodeAt(index).value = v

	return nil
}

// Insert places v at position index. An index at or past Len() appends.
// Errors: ErrOutOfRange for a negative index.
func (l *Doubly[T]) Insert(index int, v T) error {
	switch {
	case index < 0:
		return listErrorf(kindDoubly, "Insert", index, ErrOutOfRange)
	case index == 0:
		l.PushFront(v)
	case index >= l.size:
		l.PushBack(v)
	default:
		at := l.nodeAt(index)
		l.insertBetween(at.prev, at, v)
	}

	return nil
}

// Erase removes the element at index.
// Errors: ErrOutOfRange for index outside [0, Len()).
func (l *Doubly[T]) Erase(index int) error {
	if index < 0 || index >= l.size {
		return listErrorf(kindDoubly, "Erase", index, ErrOutOfRange)
	}
	l.unlink(l.nodeAt(index))

	return nil
}

// IndexFunc returns the position of the first element satisfying pred, or -1.
func (l *Doubly[T]) IndexFunc(pred func(T) bool) int {
	for i, v := range l.All() {
		if pred(v) {
			return i
		}
	}

	return -1
}

// Clear drops every element and keeps the sentinels.
func (l *Doubly[T]) Clear() {
	if l.head == nil {
		return
	}
	for n := l.head.next; n != l.tail; {
		next := n.next
		n.prev, n.next = nil, nil
		n = next
	}
	l.head.next, l.tail.prev = l.tail, l.head
	l.size = 0
}

// Clone returns an independent copy (elements assigned).
func (l *Doubly[T]) Clone() *Doubly[T] {
	out := NewDoubly[T]()
	for _, v := range l.All() {
		out.PushBack(v)
	}

	return out
}

// Move transfers the nodes to a new list; l keeps fresh sentinels and stays
// usable.
func (l *Doubly[T]) Move() *Doubly[T] {
	l.lazyInit()
	out := &Doubly[T]{head: l.head, tail: l.tail, size: l.size}
	l.init()

	return out
}

// Swap exchanges the contents of l and other in O(1).
func (l *Doubly[T]) Swap(other *Doubly[T]) { *l, *other = *other, *l }

// ToSlice copies the elements into a new slice.
func (l *Doubly[T]) ToSlice() []T {
	out := make([]T, 0, l.size)
	for _, v := range l.All() {
		out = append(out, v)
	}

	return out
}

// All yields (position, element) pairs front to back.
func (l *Doubly[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if l.head == nil {
			return
		}
		i := 0
		for n := l.head.next; n != l.tail; n = n.next {
			if !yield(i, n.value) {
				return
			}
			i++
		}
	}
}

// Backward yields (position, element) pairs back to front.
func (l *Doubly[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if l.head == nil {
			return
		}
		i := l.size - 1
		for n := l.tail.prev; n != l.head; n = n.prev {
			if !yield(i, n.value) {
				return
			}
			i--
		}
	}
}

// String renders the list as "[a b c]".
func (l *Doubly[T]) String() string { return render(l.All()) }

// Index returns the position of the first element equal to v in l, or -1.
func Index[T comparable, L interface{ IndexFunc(func(T) bool) int }](l L, v T) int {
	return l.IndexFunc(func(x T) bool { return x == v })
}
