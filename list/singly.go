// SPDX-License-Identifier: MIT

package list

import (
	"fmt"
	"iter"
	"strings"
)

const kindSingly = "Singly"

type snode[T any] struct {
	value T
	next  *snode[T]
}

// Singly is a singly linked list. The zero value is an empty list.
//   - head is the first node, tail the last (both nil when empty).
//   - size always equals the number of reachable nodes.
type Singly[T any] struct {
	head, tail *snode[T]
	size       int
}

// NewSingly returns an empty list.
func NewSingly[T any]() *Singly[T] { return &Singly[T]{} }

// SinglyOf returns a list holding values in order.
func SinglyOf[T any](values ...T) *Singly[T] {
	l := &Singly[T]{}
	for _, v := range values {
		l.PushBack(v)
	}

	return l
}

// Len returns the number of elements.
func (l *Singly[T]) Len() int { return l.size }

// Empty reports whether Len() == 0.
func (l *Singly[T]) Empty() bool { return l.size == 0 }

// Front returns the first element. Errors: ErrEmpty.
func (l *Singly[T]) Front() (T, error) {
	if l.head == nil {
		var zero T

		return zero, listErrorf(kindSingly, "Front", 0, ErrEmpty)
	}

	return l.head.value, nil
}

// Back returns the last element in O(1). Errors: ErrEmpty.
func (l *Singly[T]) Back() (T, error) {
	if l.tail == nil {
		var zero T

		return zero, listErrorf(kindSingly, "Back", 0, ErrEmpty)
	}

	return l.tail.value, nil
}

// PushFront prepends v.
func (l *Singly[T]) PushFront(v T) {
	l.head = &snode[T]{value: v, next: l.head}
	if l.tail == nil {
		l.tail = l.head
	}
	l.size++
}

// PushBack appends v in O(1) through the tail pointer.
func (l *Singly[T]) PushBack(v T) {
	n := &snode[T]{value: v}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
}

// PopFront removes and returns the first element. Errors: ErrEmpty.
func (l *Singly[T]) PopFront() (T, error) {
	if l.head == nil {
		var zero T

		return zero, listErrorf(kindSingly, "PopFront", 0, ErrEmpty)
	}
	n := l.head
	l.head = n.next
	if l.head == nil {
		l.tail = nil
	}
	n.next = nil
	l.size--

	return n.value, nil
}

// nodeBefore returns the node at index-1 (1 <= index <= size).
func (l *Singly[T]) nodeBefore(index int) *snode[T] {
	prev := l.head
	for i := 1; i < index; i++ {
		prev = prev.next
	}

	return prev
}

// Insert places v so that it ends up at position index (0 <= index <= Len()).
// Errors: ErrOutOfRange for index outside [0, Len()].
func (l *Singly[T]) Insert(index int, v T) error {
	switch {
	case index < 0 || index > l.size:
		return listErrorf(kindSingly, "Insert", index, ErrOutOfRange)
	case index == 0:
		l.PushFront(v)
	case index == l.size:
		l.PushBack(v)
	default:
		prev := l.nodeBefore(index)
		prev.next = &snode[T]{value: v, next: prev.next}
		l.size++
	}

	return nil
}

// Erase removes the element at index.
// Errors: ErrOutOfRange for index outside [0, Len()).
func (l *Singly[T]) Erase(index int) error {
	if index < 0 || index >= l.size {
		return listErrorf(kindSingly, "Erase", index, ErrOutOfRange)
	}
	if index == 0 {
		_, err := l.PopFront()

		return err
	}
	prev := l.nodeBefore(index)
	victim := prev.next
	prev.next = victim.next
	if victim == l.tail {
		l.tail = prev
	}
	victim.next = nil
	l.size--

	return nil
}

// IndexFunc returns the position of the first element satisfying pred, or -1.
func (l *Singly[T]) IndexFunc(pred func(T) bool) int {
	i := 0
	for n := l.head; n != nil; n = n.next {
		if pred(n.value) {
			return i
		}
		i++
	}

	return -1
}

// Clear drops every node.
func (l *Singly[T]) Clear() {
	// Unlink so no node keeps its successor reachable.
	for n := l.head; n != nil; {
		next := n.next
		n.next = nil
		n = next
	}
	l.head, l.tail, l.size = nil, nil, 0
}

// Clone returns an independent copy (elements assigned).
func (l *Singly[T]) Clone() *Singly[T] {
	out := &Singly[T]{}
	for n := l.head; n != nil; n = n.next {
		out.PushBack(n.value)
	}

	return out
}

// Move transfers the chain to a new list and leaves l empty and usable.
func (l *Singly[T]) Move() *Singly[T] {
	out := &Singly[T]{head: l.head, tail: l.tail, size: l.size}
	l.head, l.tail, l.size = nil, nil, 0

	return out
}

// Swap exchanges the contents of l and other in O(1).
func (l *Singly[T]) Swap(other *Singly[T]) { *l, *other = *other, *l }

// ToSlice copies the elements into a new slice.
func (l *Singly[T]) ToSlice() []T {
	out := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}

	return out
}

// All yields (position, element) pairs front to back.
func (l *Singly[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for n := l.head; n != nil; n = n.next {
			if !yield(i, n.value) {
				return
			}
			i++
		}
	}
}

// String renders the list as "[a b c]".
func (l *Singly[T]) String() string { return render(l.All()) }

func render[T any](seq iter.Seq2[int, T]) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range seq {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, v)
	}
	b.WriteByte(']')

	return b.String()
}
