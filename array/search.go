package array

// FindIf returns the index of the first element satisfying pred, or
// IndexNone.
func (a *Array[T]) FindIf(pred func(T) bool) int {
	for i, v := range a.live() {
		if pred(v) {
			return i
		}
	}
	return IndexNone
}

// FindLastIf returns the index of the last element satisfying pred, or
// IndexNone.
func (a *Array[T]) FindLastIf(pred func(T) bool) int {
	for i := a.count - 1; i >= 0; i-- {
		if pred(a.data.slots[i]) {
			return i
		}
	}
	return IndexNone
}

// ContainsIf reports whether any element satisfies pred.
func (a *Array[T]) ContainsIf(pred func(T) bool) bool {
	return a.FindIf(pred) != IndexNone
}

// Find returns the index of the first element equal to value, or IndexNone.
func Find[T comparable](a *Array[T], value T) int {
	for i, v := range a.live() {
		if v == value {
			return i
		}
	}
	return IndexNone
}

// FindLast returns the index of the last element equal to value, or
// IndexNone.
func FindLast[T comparable](a *Array[T], value T) int {
	for i := a.count - 1; i >= 0; i-- {
		if a.data.slots[i] == value {
			return i
		}
	}
	return IndexNone
}

// Contains reports whether a holds an element equal to value.
func Contains[T comparable](a *Array[T], value T) bool {
	return Find(a, value) != IndexNone
}
