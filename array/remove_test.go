package array_test

import (
	"testing"

	"github.com/plus3/contig/array"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveAt(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  []int
	}{
		{"front", 0, []int{2, 3, 4}},
		{"middle", 2, []int{1, 2, 4}},
		{"last", 3, []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := array.Of(1, 2, 3, 4)
			require.NoError(t, a.RemoveAt(tt.index))
			assert.Equal(t, tt.want, contents(a))
			assert.Equal(t, 4, a.Capacity())
		})
	}
}

func TestRemoveAtEmpty(t *testing.T) {
	var a array.Array[int]
	assert.ErrorIs(t, a.RemoveAt(0), array.ErrOutOfRange)
}

func TestRemoveByValue(t *testing.T) {
	a := array.Of(1, 2, 3, 2)

	assert.True(t, array.Remove(a, 2))
	assert.Equal(t, []int{1, 3, 2}, contents(a))

	assert.False(t, array.Remove(a, 9))
	assert.Equal(t, []int{1, 3, 2}, contents(a))
}

func TestRemoveAllKeepsOrder(t *testing.T) {
	a := newCounting(10)

	removed := a.RemoveAll(func(x int) bool { return x%3 == 0 })
	assert.Equal(t, 4, removed)
	assert.Equal(t, []int{1, 2, 4, 5, 7, 8}, contents(a))
	assert.LessOrEqual(t, a.Count(), a.Capacity())
}

func TestRemoveAllNoMatch(t *testing.T) {
	a := array.Of(1, 2, 3)

	removed := a.RemoveAll(func(x int) bool { return x > 10 })
	assert.Equal(t, 0, removed)
	assert.Equal(t, []int{1, 2, 3}, contents(a))
}

func TestRemoveAllEverything(t *testing.T) {
	a := array.Of("a", "b")

	removed := a.RemoveAll(func(string) bool { return true })
	assert.Equal(t, 2, removed)
	assert.True(t, a.IsEmpty())
	assert.Equal(t, 2, a.Capacity())
}

func TestPop(t *testing.T) {
	a := array.Of(1, 2)

	v, err := a.Pop()
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, []int{1}, contents(a))
}

func TestClearKeepsCapacity(t *testing.T) {
	a := newCounting(20)
	capacity := a.Capacity()

	a.Clear()
	assert.Equal(t, 0, a.Count())
	assert.Equal(t, capacity, a.Capacity())
}
