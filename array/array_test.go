package array_test

import (
	"errors"
	"testing"

	"github.com/plus3/contig/array"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroValueIsEmpty(t *testing.T) {
	var a array.Array[int]

	assert.Equal(t, 0, a.Count())
	assert.Equal(t, 0, a.Capacity())
	assert.True(t, a.IsEmpty())
	assert.Nil(t, a.Data())
}

func TestNewAllocatesWithoutConstructing(t *testing.T) {
	a := array.New[string](16)

	assert.Equal(t, 0, a.Count())
	assert.Equal(t, 16, a.Capacity())
	assert.True(t, a.IsEmpty())

	_, err := a.Get(0)
	assert.ErrorIs(t, err, array.ErrOutOfRange)
}

func TestNewNegativeCapacityPanics(t *testing.T) {
	assert.Panics(t, func() { array.New[int](-1) })
}

func TestOf(t *testing.T) {
	a := array.Of(1, 2, 3)

	assert.Equal(t, 3, a.Count())
	assert.Equal(t, 3, a.Capacity())
	assert.Equal(t, []int{1, 2, 3}, contents(a))
}

func TestAddGrowth(t *testing.T) {
	a := array.New[int](0)

	// First growth allocates 8 slots, then half again each time.
	expected := map[int]int{1: 8, 8: 8, 9: 12, 12: 12, 13: 18, 19: 27}
	for i := 1; i <= 19; i++ {
		a.Add(i)
		last, err := a.Last()
		require.NoError(t, err)
		assert.Equal(t, i, last)
		assert.Equal(t, i, a.Count())
		assert.LessOrEqual(t, a.Count(), a.Capacity())
		if want, ok := expected[i]; ok {
			assert.Equal(t, want, a.Capacity(), "capacity after %d adds", i)
		}
	}
}

func TestGrowthFromSmallCapacity(t *testing.T) {
	a := array.Of(1, 2, 3)

	a.Add(4)
	assert.Equal(t, 4, a.Capacity())

	a.Add(5)
	assert.Equal(t, 6, a.Capacity())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, contents(a))
}

func TestEmplaceReturnsElementAddress(t *testing.T) {
	a := array.New[Point](4)

	p := a.Emplace(Point{X: 1, Y: 2})
	p.X = 10

	got, err := a.Get(0)
	require.NoError(t, err)
	assert.Equal(t, Point{X: 10, Y: 2}, got)
}

func TestGetSetRef(t *testing.T) {
	a := array.Of(Point{1, 1}, Point{2, 2})

	require.NoError(t, a.Set(1, Point{5, 5}))
	ref, err := a.Ref(1)
	require.NoError(t, err)
	assert.Equal(t, Point{5, 5}, *ref)

	ref.Y = 7
	got, err := a.Get(1)
	require.NoError(t, err)
	assert.Equal(t, Point{5, 7}, got)
}

func TestRangeErrors(t *testing.T) {
	a := array.Of(1, 2, 3)

	_, err := a.Get(3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, array.ErrOutOfRange))
	assert.EqualError(t, err, "array: get: index 3 out of range [0,3)")

	var rangeErr *array.RangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, 3, rangeErr.Index)
	assert.Equal(t, 3, rangeErr.Count)
	assert.False(t, rangeErr.AllowEnd)

	_, err = a.Get(-1)
	assert.ErrorIs(t, err, array.ErrOutOfRange)

	_, err = a.Ref(5)
	assert.ErrorIs(t, err, array.ErrOutOfRange)

	assert.ErrorIs(t, a.Set(3, 0), array.ErrOutOfRange)
	assert.ErrorIs(t, a.RemoveAt(3), array.ErrOutOfRange)

	_, err = a.Insert(4, 0)
	assert.EqualError(t, err, "array: insert: index 4 out of range [0,3]")

	_, err = a.InsertValues(-1, 1, 2)
	assert.ErrorIs(t, err, array.ErrOutOfRange)

	// Failed calls leave the contents untouched.
	assert.Equal(t, []int{1, 2, 3}, contents(a))
	assert.Equal(t, 3, a.Capacity())
}

func TestFirstLastPopOnEmpty(t *testing.T) {
	var a array.Array[int]

	_, err := a.First()
	assert.ErrorIs(t, err, array.ErrOutOfRange)
	_, err = a.Last()
	assert.ErrorIs(t, err, array.ErrOutOfRange)
	_, err = a.Pop()
	assert.ErrorIs(t, err, array.ErrOutOfRange)
}

func TestCloneIsIndependent(t *testing.T) {
	a := array.New[int](50)
	a.AppendValues(1, 2, 3)

	c := a.Clone()
	assert.True(t, array.Equal(a, c))
	assert.Equal(t, 3, c.Capacity(), "clone drops spare capacity")

	require.NoError(t, c.Set(0, 100))
	c.Add(4)

	assert.Equal(t, []int{1, 2, 3}, contents(a))
	assert.Equal(t, []int{100, 2, 3, 4}, contents(c))
}

func TestCloneNonComparable(t *testing.T) {
	a := array.Of(Labeled{Label: "a", Tags: []string{"x"}})

	c := a.Clone()
	assert.True(t, array.EqualFunc(a, c, func(x, y Labeled) bool {
		return x.Label == y.Label && len(x.Tags) == len(y.Tags)
	}))
}

func TestMoveLeavesSourceEmpty(t *testing.T) {
	a := array.Of(1, 2, 3)
	a.Reserve(10)

	m := a.Move()

	assert.Equal(t, 0, a.Count())
	assert.Equal(t, 0, a.Capacity())
	assert.Equal(t, []int{1, 2, 3}, contents(m))
	assert.Equal(t, 10, m.Capacity())

	a.Add(9)
	assert.Equal(t, []int{9}, contents(a))
	assert.Equal(t, []int{1, 2, 3}, contents(m))
}

func TestAssign(t *testing.T) {
	a := array.Of(7, 8, 9, 10)
	src := array.New[int](20)
	src.AppendValues(1, 2)

	a.Assign(src)
	assert.Equal(t, []int{1, 2}, contents(a))
	assert.Equal(t, 2, a.Capacity())

	require.NoError(t, a.Set(0, 5))
	assert.Equal(t, []int{1, 2}, contents(src))

	a.Assign(a)
	assert.Equal(t, []int{5, 2}, contents(a))
}

func TestAssignValues(t *testing.T) {
	a := array.Of(1)
	a.AssignValues(4, 5, 6)

	assert.Equal(t, []int{4, 5, 6}, contents(a))
	assert.Equal(t, 3, a.Capacity())
}

func TestMoveAssign(t *testing.T) {
	a := array.Of(1)
	b := array.Of(2, 3)

	a.MoveAssign(b)
	assert.Equal(t, []int{2, 3}, contents(a))
	assert.Equal(t, 0, b.Count())
	assert.Equal(t, 0, b.Capacity())

	a.MoveAssign(a)
	assert.Equal(t, []int{2, 3}, contents(a))
}

func TestSwap(t *testing.T) {
	a := array.Of(1, 2, 3)
	b := array.New[int](9)

	a.Swap(b)

	assert.Equal(t, 0, a.Count())
	assert.Equal(t, 9, a.Capacity())
	assert.Equal(t, []int{1, 2, 3}, contents(b))
	assert.Equal(t, 3, b.Capacity())
}

func TestRelease(t *testing.T) {
	a := array.Of("a", "b")
	a.Release()

	assert.Equal(t, 0, a.Count())
	assert.Equal(t, 0, a.Capacity())

	a.Release()
	a.Add("c")
	assert.Equal(t, []string{"c"}, contents(a))
}

func TestDataSharesStorage(t *testing.T) {
	a := array.Of(1, 2, 3)
	a.Reserve(10)

	data := a.Data()
	assert.Len(t, data, 3)
	assert.Equal(t, 3, cap(data))

	data[1] = 20
	got, err := a.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 20, got)
}

func TestString(t *testing.T) {
	assert.Equal(t, "[1 2 3]", array.Of(1, 2, 3).String())
	assert.Equal(t, "[]", array.New[int](4).String())
	assert.Equal(t, "[{1 2}]", array.Of(Point{1, 2}).String())
}

func TestSequenceScenario(t *testing.T) {
	a := array.New[int](0)
	a.Add(1)
	a.Add(2)
	a.Add(3)
	assert.Equal(t, []int{1, 2, 3}, contents(a))

	index, err := a.Insert(1, 9)
	require.NoError(t, err)
	assert.Equal(t, 1, index)
	assert.Equal(t, []int{1, 9, 2, 3}, contents(a))

	require.NoError(t, a.RemoveAt(0))
	assert.Equal(t, []int{9, 2, 3}, contents(a))

	assert.Equal(t, 1, array.Find(a, 2))

	removed := a.RemoveAll(func(x int) bool { return x > 2 })
	assert.Equal(t, 2, removed)
	assert.Equal(t, []int{2}, contents(a))
}
