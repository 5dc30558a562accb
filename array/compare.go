package array

import "cmp"

// Equal reports whether a and b hold the same number of elements and the
// elements are pairwise equal in order.
func Equal[T comparable](a, b *Array[T]) bool {
	if a.count != b.count {
		return false
	}
	for i, v := range a.live() {
		if v != b.data.slots[i] {
			return false
		}
	}
	return true
}

// EqualFunc is Equal using eq to compare elements.
func EqualFunc[T any](a, b *Array[T], eq func(x, y T) bool) bool {
	if a.count != b.count {
		return false
	}
	for i, v := range a.live() {
		if !eq(v, b.data.slots[i]) {
			return false
		}
	}
	return true
}

// Compare orders a and b lexicographically. The result is 0 if a == b, -1
// if a < b and +1 if a > b. A sequence that is a prefix of the other orders
// first.
func Compare[T cmp.Ordered](a, b *Array[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is Compare using compare as the element three-way comparison.
func CompareFunc[T any](a, b *Array[T], compare func(x, y T) int) int {
	n := min(a.count, b.count)
	for i := 0; i < n; i++ {
		if c := compare(a.data.slots[i], b.data.slots[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.count, b.count)
}
