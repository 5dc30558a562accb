package array

// RemoveAt destroys the element at index and closes the gap by shifting
// the tail one slot to the left.
func (a *Array[T]) RemoveAt(index int) error {
	if err := a.checkRange("remove", index, false); err != nil {
		return err
	}
	a.data.destroy(index)
	if index < a.count-1 {
		a.data.moveForward(index+1, a.count, index)
	}
	a.count--
	a.data.destroy(a.count)
	return nil
}

// RemoveAll removes every element for which pred returns true and reports
// how many were removed. Kept elements retain their relative order.
func (a *Array[T]) RemoveAll(pred func(T) bool) int {
	kept := 0
	for i := 0; i < a.count; i++ {
		if pred(a.data.slots[i]) {
			continue
		}
		if kept != i {
			a.data.slots[kept] = a.data.slots[i]
		}
		kept++
	}
	if kept == a.count {
		return 0
	}

	removed := a.count - kept
	a.data.destroyRange(kept, a.count)
	a.count = kept
	return removed
}

// Pop removes and returns the last element.
func (a *Array[T]) Pop() (T, error) {
	value, err := a.Last()
	if err != nil {
		return value, &RangeError{Op: "pop", Index: -1, Count: 0}
	}
	a.count--
	a.data.destroy(a.count)
	return value, nil
}

// Clear destroys every element. Capacity is unchanged.
func (a *Array[T]) Clear() {
	a.data.destroyRange(0, a.count)
	a.count = 0
}

// Remove removes the first element equal to value and reports whether one
// was found.
func Remove[T comparable](a *Array[T], value T) bool {
	index := Find(a, value)
	if index == IndexNone {
		return false
	}
	_ = a.RemoveAt(index)
	return true
}
