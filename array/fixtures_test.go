package array_test

import (
	"slices"

	"github.com/plus3/contig/array"
)

// Common test element types
type Point struct {
	X, Y int
}

type Labeled struct {
	Label string
	Tags  []string
}

func contents[T any](a *array.Array[T]) []T {
	return slices.Collect(a.Values())
}

func newCounting(n int) *array.Array[int] {
	a := array.New[int](0)
	for i := 0; i < n; i++ {
		a.Add(i)
	}
	return a
}
