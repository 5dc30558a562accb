package array

import "sort"

type byLess[T any] struct {
	elems []T
	less  func(x, y T) bool
}

func (s byLess[T]) Len() int           { return len(s.elems) }
func (s byLess[T]) Swap(i, j int)      { s.elems[i], s.elems[j] = s.elems[j], s.elems[i] }
func (s byLess[T]) Less(i, j int) bool { return s.less(s.elems[i], s.elems[j]) }

// Sort orders the elements in place using less as a strict weak ordering.
// The sort is not stable.
func (a *Array[T]) Sort(less func(x, y T) bool) {
	sort.Sort(byLess[T]{elems: a.live(), less: less})
}
