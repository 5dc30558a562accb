package array

import "iter"

// All returns an iterator over index/value pairs from front to back.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.count; i++ {
			if !yield(i, a.data.slots[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements from front to back.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < a.count; i++ {
			if !yield(a.data.slots[i]) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/value pairs from back to front.
func (a *Array[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := a.count - 1; i >= 0; i-- {
			if !yield(i, a.data.slots[i]) {
				return
			}
		}
	}
}
