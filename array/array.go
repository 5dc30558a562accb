// Package array implements Array, a contiguous growable sequence built on an
// explicitly managed storage block, together with random-access cursors
// over that storage.
package array

import (
	"fmt"
	"math"
	"strings"
)

// IndexNone is returned by the search operations when nothing matches.
const IndexNone = math.MaxInt

const (
	minGrowCapacity = 8
)

// Array is a contiguous, growable sequence of T backed by a single owned
// storage block. Slots [0, Count()) hold live elements; the remaining
// Capacity()-Count() slots are allocated but unconstructed.
//
// Any operation that reallocates the block (growth, Reserve, Shrink) or
// shifts elements (insertion, removal) invalidates iterators, Ref pointers
// and Data views taken before it. Array is not safe for concurrent use.
//
// The zero value is an empty Array with no allocation.
type Array[T any] struct {
	data  block[T]
	count int
}

// New creates an empty Array with room for capacity elements. No element is
// constructed.
func New[T any](capacity int) *Array[T] {
	if capacity < 0 {
		panic("array: negative capacity")
	}
	return &Array[T]{data: allocBlock[T](capacity)}
}

// Of creates an Array holding a copy of values, with capacity equal to
// len(values).
func Of[T any](values ...T) *Array[T] {
	a := New[T](len(values))
	a.data.copyConstruct(0, values)
	a.count = len(values)
	return a
}

// Clone returns a copy of a with independent storage. The copy's capacity
// equals a.Count(); spare capacity is not carried over.
func (a *Array[T]) Clone() *Array[T] {
	return Of(a.live()...)
}

// Move transfers a's storage into a new Array and leaves a empty with no
// allocation.
func (a *Array[T]) Move() *Array[T] {
	moved := &Array[T]{}
	moved.Swap(a)
	return moved
}

// Assign replaces the contents of a with a copy of src. The copy is built
// completely before it is swapped in.
func (a *Array[T]) Assign(src *Array[T]) {
	if a == src {
		return
	}
	tmp := src.Clone()
	a.Swap(tmp)
}

// AssignValues replaces the contents of a with a copy of values.
func (a *Array[T]) AssignValues(values ...T) {
	tmp := Of(values...)
	a.Swap(tmp)
}

// MoveAssign releases a's storage and takes over src's, leaving src empty
// with no allocation.
func (a *Array[T]) MoveAssign(src *Array[T]) {
	if a == src {
		return
	}
	a.Release()
	a.Swap(src)
}

// Swap exchanges the storage, count and capacity of a and other.
func (a *Array[T]) Swap(other *Array[T]) {
	a.data, other.data = other.data, a.data
	a.count, other.count = other.count, a.count
}

// Release destroys every element and drops the storage block.
func (a *Array[T]) Release() {
	if a.data.slots == nil {
		return
	}
	a.data.destroyRange(0, a.count)
	a.data = block[T]{}
	a.count = 0
}

// Count returns the number of live elements.
func (a *Array[T]) Count() int {
	return a.count
}

// Capacity returns the number of allocated slots.
func (a *Array[T]) Capacity() int {
	return a.data.capacity()
}

// IsEmpty reports whether the Array holds no elements.
func (a *Array[T]) IsEmpty() bool {
	return a.count == 0
}

// Data returns the live elements as a slice sharing a's storage. Writes
// through the slice are visible to a. The slice is invalidated by the same
// operations that invalidate iterators.
func (a *Array[T]) Data() []T {
	if a.count == 0 {
		return nil
	}
	return a.live()
}

// Get returns the element at index.
func (a *Array[T]) Get(index int) (T, error) {
	if err := a.checkRange("get", index, false); err != nil {
		var zero T
		return zero, err
	}
	return a.data.slots[index], nil
}

// Ref returns the address of the element at index.
func (a *Array[T]) Ref(index int) (*T, error) {
	if err := a.checkRange("ref", index, false); err != nil {
		return nil, err
	}
	return &a.data.slots[index], nil
}

// Set overwrites the element at index.
func (a *Array[T]) Set(index int, value T) error {
	if err := a.checkRange("set", index, false); err != nil {
		return err
	}
	a.data.slots[index] = value
	return nil
}

// First returns the first element.
func (a *Array[T]) First() (T, error) {
	return a.Get(0)
}

// Last returns the last element.
func (a *Array[T]) Last() (T, error) {
	if a.count == 0 {
		var zero T
		return zero, &RangeError{Op: "last", Index: -1, Count: 0}
	}
	return a.data.slots[a.count-1], nil
}

func (a *Array[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a.live() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')
	return sb.String()
}

func (a *Array[T]) live() []T {
	return a.data.slots[:a.count:a.count]
}

func (a *Array[T]) checkRange(op string, index int, allowEnd bool) error {
	bound := a.count
	if allowEnd {
		bound++
	}
	if index < 0 || index >= bound {
		return &RangeError{Op: op, Index: index, Count: a.count, AllowEnd: allowEnd}
	}
	return nil
}

// ensureCapacity grows the block so it can hold at least required
// elements: never below 8 slots, then by half again each time.
func (a *Array[T]) ensureCapacity(required int) {
	capacity := a.data.capacity()
	if required <= capacity {
		return
	}
	grow := capacity + capacity>>1
	if capacity == 0 {
		grow = minGrowCapacity
	}
	a.reallocate(max(required, grow))
}

// reallocate moves the live elements into a fresh block of newCapacity
// slots, truncating to newCapacity if needed. The new block is allocated
// before anything in the old one is touched.
func (a *Array[T]) reallocate(newCapacity int) {
	if newCapacity == a.data.capacity() {
		return
	}
	if newCapacity == 0 {
		a.Release()
		return
	}

	next := allocBlock[T](newCapacity)
	newCount := min(a.count, newCapacity)

	if a.data.slots != nil {
		moveConstruct(next, 0, a.data, 0, newCount)
		a.data.destroyRange(newCount, a.count)
	}

	a.data = next
	a.count = newCount
}
