// SPDX-License-Identifier: MIT

package iterator_test

import (
	"cmp"
	"testing"

	"github.com/katalvlaran/ministl/iterator"
	"github.com/stretchr/testify/require"
)

// TestIteratorArithmetic checks the random-access operators on a slice sequence.
func TestIteratorArithmetic(t *testing.T) {
	t.Parallel()

	s := iterator.Slice([]int{10, 20, 30, 40})
	b, e := s.Begin(), s.End()

	require.Equal(t, 4, e.Distance(b))
	require.Equal(t, 10, b.Get())
	require.Equal(t, 30, b.At(2))
	require.Equal(t, 20, b.Next().Get())
	require.Equal(t, 40, e.Prev().Get())
	require.Equal(t, 40, b.Add(3).Get())
	require.True(t, b.Add(4).Equal(e))
	require.True(t, e.Sub(4).Equal(b))

	it := b
	it.Advance(2)
	require.Equal(t, 2, it.Pos())
	it.Advance(-1)
	require.Equal(t, 20, it.Get())

	it.Set(25)
	require.Equal(t, 25, s.Data()[1])
	*it.Ptr() = 26
	require.Equal(t, 26, s.Data()[1])
}

// TestIteratorComparisons covers the six relational operators.
func TestIteratorComparisons(t *testing.T) {
	t.Parallel()

	s := iterator.Slice([]string{"a", "b", "c"})
	a, c := s.Begin(), s.Begin().Add(2)

	require.True(t, a.Less(c))
	require.True(t, a.LessEq(c))
	require.True(t, a.LessEq(a))
	require.True(t, c.Greater(a))
	require.True(t, c.GreaterEq(a))
	require.False(t, a.Equal(c))
	require.Equal(t, -1, a.Compare(c))
	require.Equal(t, 1, c.Compare(a))
	require.Equal(t, 0, a.Compare(s.Begin()))

	other := iterator.Slice([]string{"a", "b", "c"})
	require.False(t, a.Equal(other.Begin()), "iterators of different sequences never compare equal")
}

// TestIteratorValid distinguishes dereferenceable positions from end and zero values.
func TestIteratorValid(t *testing.T) {
	t.Parallel()

	s := iterator.Slice([]int{1})
	require.True(t, s.Begin().Valid())
	require.False(t, s.End().Valid())
	require.False(t, s.Begin().Prev().Valid())

	var zero iterator.Iterator[int]
	require.False(t, zero.Valid())
	require.Nil(t, zero.Sequence())
}

// TestReverseIterator walks a sequence backwards and checks the base relation.
func TestReverseIterator(t *testing.T) {
	t.Parallel()

	s := iterator.Slice([]int{1, 2, 3, 4})
	rb := iterator.NewReverse(s.End())
	re := iterator.NewReverse(s.Begin())

	var got []int
	for r := rb; !r.Equal(re); r = r.Next() {
		got = append(got, r.Get())
	}
	require.Equal(t, []int{4, 3, 2, 1}, got)

	require.Equal(t, 4, re.Distance(rb))
	require.Equal(t, 3, rb.Pos())
	require.Equal(t, 2, rb.At(2))
	require.Equal(t, 2, rb.Add(2).Get())
	require.True(t, rb.Add(2).Sub(2).Equal(rb))
	require.True(t, rb.Less(re))
	require.True(t, re.Greater(rb))
	require.True(t, rb.LessEq(rb))
	require.True(t, re.GreaterEq(re))
	require.True(t, rb.Valid())
	require.False(t, re.Valid())

	r := rb
	r.Advance(1)
	require.Equal(t, 3, r.Get())
	r.Set(30)
	require.Equal(t, 30, s.Data()[2])
	require.Equal(t, 4, r.Prev().Get())
	require.True(t, r.Base().Equal(s.Begin().Add(3)))
	*r.Ptr() = 31
	require.Equal(t, 31, s.Data()[2])
}

// TestAlgorithms runs the range algorithms on a small slice.
func TestAlgorithms(t *testing.T) {
	t.Parallel()

	s := iterator.Slice([]int{5, 3, 8, 3, 1})
	b, e := s.Begin(), s.End()

	n, err := iterator.Distance(b, e)
	require.NoError(t, err)
	require.Equal(t, 5, n)

	it, err := iterator.Find(b, e, 8)
	require.NoError(t, err)
	require.Equal(t, 2, it.Pos())

	it, err = iterator.Find(b, e, 42)
	require.NoError(t, err)
	require.True(t, it.Equal(e))

	cnt, err := iterator.Count(b, e, 3)
	require.NoError(t, err)
	require.Equal(t, 2, cnt)

	sum, err := iterator.Accumulate(b, e, 0, func(acc, x int) int { return acc + x })
	require.NoError(t, err)
	require.Equal(t, 20, sum)

	mn, err := iterator.MinElement(b, e)
	require.NoError(t, err)
	require.Equal(t, 1, mn.Get())
	mx, err := iterator.MaxElement(b, e)
	require.NoError(t, err)
	require.Equal(t, 8, mx.Get())

	require.NoError(t, iterator.SortOrdered(b, e))
	require.Equal(t, []int{1, 3, 3, 5, 8}, s.Data())
	ok, err := iterator.IsSorted(b, e, cmp.Compare[int])
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, iterator.Sort(b, e, func(a, b int) int { return cmp.Compare(b, a) }))
	require.Equal(t, []int{8, 5, 3, 3, 1}, s.Data())

	require.NoError(t, iterator.Reverse(b, e))
	require.Equal(t, []int{1, 3, 3, 5, 8}, s.Data())

	end, err := iterator.Transform(b, e, b, func(x int) int { return x * 2 })
	require.NoError(t, err)
	require.True(t, end.Equal(e))
	require.Equal(t, []int{2, 6, 6, 10, 16}, s.Data())

	require.NoError(t, iterator.ForEach(b, b.Add(2), func(p *int) { *p = -*p }))
	require.Equal(t, []int{-2, -6, 6, 10, 16}, s.Data())

	require.NoError(t, iterator.Fill(b.Add(3), e, 0))
	require.Equal(t, []int{-2, -6, 6, 0, 0}, s.Data())
}

// TestCopyAndEqual checks output-range algorithms.
func TestCopyAndEqual(t *testing.T) {
	t.Parallel()

	src := iterator.Slice([]int{1, 2, 3})
	dst := iterator.Slice(make([]int, 4))

	end, err := iterator.Copy(src.Begin(), src.End(), dst.Begin().Next())
	require.NoError(t, err)
	require.Equal(t, 4, end.Pos())
	require.Equal(t, []int{0, 1, 2, 3}, dst.Data())

	eq, err := iterator.Equal(src.Begin(), src.End(), dst.Begin().Next())
	require.NoError(t, err)
	require.True(t, eq)

	eq, err = iterator.Equal(src.Begin(), src.End(), dst.Begin().Add(2))
	require.NoError(t, err)
	require.False(t, eq, "shorter second range")

	_, err = iterator.Copy(src.Begin(), src.End(), dst.Begin().Add(2))
	require.ErrorIs(t, err, iterator.ErrShortDestination)
}

// TestBadRanges ensures every algorithm rejects malformed ranges.
func TestBadRanges(t *testing.T) {
	t.Parallel()

	a := iterator.Slice([]int{1, 2, 3})
	other := iterator.Slice([]int{1, 2, 3})

	cases := []struct {
		name        string
		first, last iterator.Iterator[int]
	}{
		{"reversed", a.End(), a.Begin()},
		{"foreign", a.Begin(), other.End()},
		{"past-end", a.Begin(), a.End().Next()},
		{"negative", a.Begin().Prev(), a.End()},
		{"zero", iterator.Iterator[int]{}, iterator.Iterator[int]{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := iterator.Distance(tc.first, tc.last)
			require.ErrorIs(t, err, iterator.ErrBadRange)
			_, err = iterator.Find(tc.first, tc.last, 1)
			require.ErrorIs(t, err, iterator.ErrBadRange)
			require.ErrorIs(t, iterator.Sort(tc.first, tc.last, cmp.Compare[int]), iterator.ErrBadRange)
			require.ErrorIs(t, iterator.Fill(tc.first, tc.last, 0), iterator.ErrBadRange)
		})
	}
}
