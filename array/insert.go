package array

import "slices"

// Add appends value.
func (a *Array[T]) Add(value T) {
	a.Emplace(value)
}

// Emplace appends value and returns the address of the new element.
func (a *Array[T]) Emplace(value T) *T {
	index, _ := a.EmplaceAt(a.count, value)
	return &a.data.slots[index]
}

// EmplaceAt constructs value at index, shifting [index, Count()) one slot to
// the right. index == Count() appends. It returns index.
func (a *Array[T]) EmplaceAt(index int, value T) (int, error) {
	if err := a.checkRange("insert", index, true); err != nil {
		return 0, err
	}
	a.ensureCapacity(a.count + 1)

	if index < a.count {
		moveConstruct(a.data, a.count, a.data, a.count-1, 1)
		a.data.moveBackward(index, a.count-1, a.count)
	}
	a.data.construct(index, value)
	a.count++

	return index, nil
}

// Insert is EmplaceAt.
func (a *Array[T]) Insert(index int, value T) (int, error) {
	return a.EmplaceAt(index, value)
}

// InsertArray inserts a copy of every element of src at index.
// Inserting a into itself inserts the elements it held before the call.
func (a *Array[T]) InsertArray(index int, src *Array[T]) (int, error) {
	return a.insertValues(index, src.live())
}

// InsertMove inserts the elements of src at index and then clears src.
// src keeps its storage. When src is a itself nothing is cleared.
func (a *Array[T]) InsertMove(index int, src *Array[T]) (int, error) {
	if src == a {
		return a.InsertArray(index, src)
	}
	index, err := a.insertValues(index, src.live())
	if err != nil {
		return 0, err
	}
	src.Clear()
	return index, nil
}

// InsertValues inserts copies of values at index, in order.
func (a *Array[T]) InsertValues(index int, values ...T) (int, error) {
	return a.insertValues(index, values)
}

// Append appends a copy of every element of src.
func (a *Array[T]) Append(src *Array[T]) {
	_, _ = a.InsertArray(a.count, src)
}

// AppendMove appends the elements of src and then clears src.
func (a *Array[T]) AppendMove(src *Array[T]) {
	_, _ = a.InsertMove(a.count, src)
}

// AppendValues appends copies of values.
func (a *Array[T]) AppendValues(values ...T) {
	_, _ = a.insertValues(a.count, values)
}

func (a *Array[T]) insertValues(index int, values []T) (int, error) {
	if err := a.checkRange("insert", index, true); err != nil {
		return 0, err
	}

	n := len(values)
	if n == 0 {
		return index, nil
	}
	if a.data.aliases(values) {
		values = slices.Clone(values)
	}

	a.ensureCapacity(a.count + n)

	if index < a.count {
		// Tail elements landing past the old count go into unconstructed
		// slots, the rest overwrite live ones.
		split := max(index, a.count-n)
		moveConstruct(a.data, split+n, a.data, split, a.count-split)
		a.data.moveBackward(index, split, split+n)
	}
	a.data.copyConstruct(index, values)
	a.count += n

	return index, nil
}
