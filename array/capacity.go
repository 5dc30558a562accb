package array

// Reserve grows the storage to hold at least capacity elements. It never
// shrinks.
func (a *Array[T]) Reserve(capacity int) {
	if capacity > a.data.capacity() {
		a.reallocate(capacity)
	}
}

// Shrink reallocates the storage down to exactly Count() slots. An empty
// Array releases its storage.
func (a *Array[T]) Shrink() {
	if a.data.capacity() > a.count {
		a.reallocate(a.count)
	}
}

// Resize sets the count to n, filling new slots with the zero value or
// destroying the truncated tail.
func (a *Array[T]) Resize(n int) {
	var zero T
	a.ResizeWith(n, zero)
}

// ResizeWith sets the count to n, filling new slots with value or
// destroying the truncated tail.
func (a *Array[T]) ResizeWith(n int, value T) {
	if n < 0 {
		panic("array: negative count")
	}
	if n > a.count {
		a.ensureCapacity(n)
		a.data.fill(a.count, n-a.count, value)
	} else if n < a.count {
		a.data.destroyRange(n, a.count)
	}
	a.count = n
}
