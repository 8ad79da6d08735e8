// SPDX-License-Identifier: MIT

package list_test

import (
	"testing"

	"github.com/katalvlaran/ministl/list"
	"github.com/stretchr/testify/require"
)

func TestSingly_Basics(t *testing.T) {
	t.Parallel()

	l := list.NewSingly[int]()
	require.True(t, l.Empty())
	_, err := l.Front()
	require.ErrorIs(t, err, list.ErrEmpty)
	_, err = l.Back()
	require.ErrorIs(t, err, list.ErrEmpty)
	_, err = l.PopFront()
	require.ErrorIs(t, err, list.ErrEmpty)

	l.PushBack(2)
	l.PushFront(1)
	l.PushBack(3)
	require.Equal(t, []int{1, 2, 3}, l.ToSlice())
	require.Equal(t, "[1 2 3]", l.String())

	f, err := l.Front()
	require.NoError(t, err)
	require.Equal(t, 1, f)
	b, err := l.Back()
	require.NoError(t, err)
	require.Equal(t, 3, b)

	v, err := l.PopFront()
	require.NoError(t, err)
	require.Equal(t, 1, v)
	require.Equal(t, 2, l.Len())
}

func TestSingly_InsertErase(t *testing.T) {
	t.Parallel()

	l := list.SinglyOf(1, 2, 4)
	require.NoError(t, l.Insert(2, 3))
	require.NoError(t, l.Insert(0, 0))
	require.NoError(t, l.Insert(l.Len(), 5))
	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, l.ToSlice())
	require.ErrorIs(t, l.Insert(7, 9), list.ErrOutOfRange)
	require.ErrorIs(t, l.Insert(-1, 9), list.ErrOutOfRange)

	require.NoError(t, l.Erase(5))
	back, err := l.Back()
	require.NoError(t, err)
	require.Equal(t, 4, back, "tail follows an erased last node")
	l.PushBack(6)
	require.NoError(t, l.Erase(0))
	require.NoError(t, l.Erase(1))
	require.Equal(t, []int{1, 3, 4, 6}, l.ToSlice())
	require.ErrorIs(t, l.Erase(4), list.ErrOutOfRange)

	require.Equal(t, 2, list.Index(l, 4))
	require.Equal(t, -1, list.Index(l, 42))
	require.Equal(t, 3, l.IndexFunc(func(x int) bool { return x > 4 }))
}

func TestSingly_Ownership(t *testing.T) {
	t.Parallel()

	a := list.SinglyOf("x", "y")
	c := a.Clone()
	c.PushBack("z")
	require.Equal(t, 2, a.Len())

	m := a.Move()
	require.True(t, a.Empty())
	a.PushBack("again")
	require.Equal(t, []string{"again"}, a.ToSlice())
	require.Equal(t, []string{"x", "y"}, m.ToSlice())

	m.Swap(c)
	require.Equal(t, 3, m.Len())
	require.Equal(t, 2, c.Len())

	m.Clear()
	require.True(t, m.Empty())
	_, err := m.Back()
	require.ErrorIs(t, err, list.ErrEmpty)

	var zero list.Singly[int]
	zero.PushBack(1)
	require.Equal(t, 1, zero.Len())

	for i, v := range list.SinglyOf(10, 20).All() {
		require.Equal(t, (i+1)*10, v)
	}
}

func TestDoubly_EndsAndAccess(t *testing.T) {
	t.Parallel()

	l := list.NewDoubly[int]()
	_, err := l.PopBack()
	require.ErrorIs(t, err, list.ErrEmpty)
	_, err = l.PopFront()
	require.ErrorIs(t, err, list.ErrEmpty)
	_, err = l.Front()
	require.ErrorIs(t, err, list.ErrEmpty)

	for i := 0; i < 10; i++ {
		l.PushBack(i)
	}
	l.PushFront(-1)
	require.Equal(t, 11, l.Len())

	for i := 0; i < l.Len(); i++ {
		v, err := l.At(i)
		require.NoError(t, err)
		require.Equal(t, i-1, v, "At(%d)", i)
	}
	_, err = l.At(11)
	require.ErrorIs(t, err, list.ErrOutOfRange)
	_, err = l.At(-1)
	require.ErrorIs(t, err, list.ErrOutOfRange)

	require.NoError(t, l.SetAt(9, 80))
	require.NoError(t, l.SetAt(1, 70))
	require.ErrorIs(t, l.SetAt(11, 0), list.ErrOutOfRange)

	f, err := l.PopFront()
	require.NoError(t, err)
	require.Equal(t, -1, f)
	b, err := l.PopBack()
	require.NoError(t, err)
	require.Equal(t, 9, b)
	require.Equal(t, []int{70, 1, 2, 3, 4, 5, 6, 7, 80}, l.ToSlice())

	var idx []int
	var vals []int
	for i, v := range l.Backward() {
		idx = append(idx, i)
		vals = append(vals, v)
	}
	require.Equal(t, []int{8, 7, 6, 5, 4, 3, 2, 1, 0}, idx)
	require.Equal(t, []int{80, 7, 6, 5, 4, 3, 2, 1, 70}, vals)
}

func TestDoubly_InsertErase(t *testing.T) {
	t.Parallel()

	l := list.DoublyOf(1, 2, 4)
	require.NoError(t, l.Insert(2, 3))
	require.NoError(t, l.Insert(0, 0))
	require.NoError(t, l.Insert(100, 5), "past-the-end insert appends")
	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, l.ToSlice())
	require.ErrorIs(t, l.Insert(-1, 0), list.ErrOutOfRange)

	require.NoError(t, l.Erase(0))
	require.NoError(t, l.Erase(4))
	require.NoError(t, l.Erase(1))
	require.Equal(t, []int{1, 3, 4}, l.ToSlice())
	require.ErrorIs(t, l.Erase(3), list.ErrOutOfRange)
	require.Equal(t, "[1 3 4]", l.String())

	require.Equal(t, 1, list.Index(l, 3))
	require.Equal(t, -1, list.Index(l, 9))
}

func TestDoubly_Ownership(t *testing.T) {
	t.Parallel()

	a := list.DoublyOf(1, 2, 3)
	c := a.Clone()
	require.NoError(t, c.SetAt(0, 9))
	f, _ := a.Front()
	require.Equal(t, 1, f)

	m := a.Move()
	require.True(t, a.Empty())
	a.PushBack(4)
	require.Equal(t, []int{4}, a.ToSlice())
	require.Equal(t, []int{1, 2, 3}, m.ToSlice())

	m.Swap(a)
	require.Equal(t, []int{4}, m.ToSlice())
	require.Equal(t, []int{1, 2, 3}, a.ToSlice())

	a.Clear()
	require.True(t, a.Empty())
	a.PushFront(7)
	require.Equal(t, []int{7}, a.ToSlice())

	var zero list.Doubly[string]
	require.Empty(t, zero.ToSlice())
	zero.Clear()
	zero.PushFront("a")
	zero.PushBack("b")
	require.Equal(t, []string{"a", "b"}, zero.ToSlice())
	moved := (&list.Doubly[int]{}).Move()
	require.True(t, moved.Empty())
}
