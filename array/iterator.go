package array

import "unsafe"

// Iterator is a mutable cursor into an Array's storage. It does not own
// the storage and performs no validation: it becomes stale once the Array
// reallocates, shifts elements at or before its position, or is released.
// A stale Iterator keeps reading the block it was taken from.
type Iterator[T any] struct {
	slots []T
	pos   int
}

// Value returns the element under the cursor.
func (it Iterator[T]) Value() T {
	return it.slots[it.pos]
}

// Ptr returns the address of the element under the cursor.
func (it Iterator[T]) Ptr() *T {
	return &it.slots[it.pos]
}

// At returns the element n positions away from the cursor.
func (it Iterator[T]) At(n int) T {
	return it.slots[it.pos+n]
}

// Set overwrites the element under the cursor.
func (it Iterator[T]) Set(value T) {
	it.slots[it.pos] = value
}

// Inc advances the cursor by one and returns it.
func (it *Iterator[T]) Inc() *Iterator[T] {
	it.pos++
	return it
}

// Dec moves the cursor back by one and returns it.
func (it *Iterator[T]) Dec() *Iterator[T] {
	it.pos--
	return it
}

// PostInc advances the cursor by one and returns its previous position.
func (it *Iterator[T]) PostInc() Iterator[T] {
	prev := *it
	it.pos++
	return prev
}

// PostDec moves the cursor back by one and returns its previous position.
func (it *Iterator[T]) PostDec() Iterator[T] {
	prev := *it
	it.pos--
	return prev
}

func (it Iterator[T]) Add(n int) Iterator[T] {
	return Iterator[T]{slots: it.slots, pos: it.pos + n}
}

func (it Iterator[T]) Sub(n int) Iterator[T] {
	return Iterator[T]{slots: it.slots, pos: it.pos - n}
}

// Diff returns the signed number of elements from other to it. Both must
// come from the same storage.
func (it Iterator[T]) Diff(other Iterator[T]) int {
	return it.pos - other.pos
}

// Equal reports whether both cursors sit at the same position of the same
// storage block.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return sameBlock(it.slots, other.slots) && it.pos == other.pos
}

// Const returns a read-only cursor at the same position.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{slots: it.slots, pos: it.pos}
}

// ConstIterator is the read-only counterpart of Iterator. It can be
// obtained from an Iterator but never converted back.
type ConstIterator[T any] struct {
	slots []T
	pos   int
}

func (it ConstIterator[T]) Value() T {
	return it.slots[it.pos]
}

func (it ConstIterator[T]) At(n int) T {
	return it.slots[it.pos+n]
}

func (it *ConstIterator[T]) Inc() *ConstIterator[T] {
	it.pos++
	return it
}

func (it *ConstIterator[T]) Dec() *ConstIterator[T] {
	it.pos--
	return it
}

func (it *ConstIterator[T]) PostInc() ConstIterator[T] {
	prev := *it
	it.pos++
	return prev
}

func (it *ConstIterator[T]) PostDec() ConstIterator[T] {
	prev := *it
	it.pos--
	return prev
}

func (it ConstIterator[T]) Add(n int) ConstIterator[T] {
	return ConstIterator[T]{slots: it.slots, pos: it.pos + n}
}

func (it ConstIterator[T]) Sub(n int) ConstIterator[T] {
	return ConstIterator[T]{slots: it.slots, pos: it.pos - n}
}

func (it ConstIterator[T]) Diff(other ConstIterator[T]) int {
	return it.pos - other.pos
}

func (it ConstIterator[T]) Equal(other ConstIterator[T]) bool {
	return sameBlock(it.slots, other.slots) && it.pos == other.pos
}

func sameBlock[T any](x, y []T) bool {
	return len(x) == len(y) && unsafe.SliceData(x) == unsafe.SliceData(y)
}

// Begin returns a cursor at the first element.
func (a *Array[T]) Begin() Iterator[T] {
	return Iterator[T]{slots: a.data.slots, pos: 0}
}

// End returns a cursor one past the last element.
func (a *Array[T]) End() Iterator[T] {
	return Iterator[T]{slots: a.data.slots, pos: a.count}
}

func (a *Array[T]) CBegin() ConstIterator[T] {
	return a.Begin().Const()
}

func (a *Array[T]) CEnd() ConstIterator[T] {
	return a.End().Const()
}
