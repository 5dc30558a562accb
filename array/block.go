package array

import "unsafe"

// block is the raw storage owned by an Array. Every slot is allocated up
// front; a slot only holds a live element between construct and destroy.
// Destroyed slots are reset to the zero value so the block never keeps
// references alive for the collector.
type block[T any] struct {
	slots []T
}

// allocBlock returns a block with n unconstructed slots. A zero-sized
// request yields the empty block with no backing allocation.
func allocBlock[T any](n int) block[T] {
	if n == 0 {
		return block[T]{}
	}
	return block[T]{slots: make([]T, n)}
}

func (b block[T]) capacity() int {
	return len(b.slots)
}

// construct places v into slot i.
func (b block[T]) construct(i int, v T) {
	b.slots[i] = v
}

// destroy ends the lifetime of the element in slot i.
func (b block[T]) destroy(i int) {
	var zero T
	b.slots[i] = zero
}

// destroyRange ends the lifetime of the elements in [from, to).
func (b block[T]) destroyRange(from, to int) {
	if from < to {
		clear(b.slots[from:to])
	}
}

// fill constructs n copies of v starting at slot from.
func (b block[T]) fill(from, n int, v T) {
	for i := from; i < from+n; i++ {
		b.slots[i] = v
	}
}

// copyConstruct constructs copies of src into slots starting at from.
func (b block[T]) copyConstruct(from int, src []T) {
	copy(b.slots[from:from+len(src)], src)
}

// moveConstruct moves n elements starting at srcFrom in src into the
// unconstructed slots of dst starting at dstFrom. The source slots are left
// destroyed, so the two ranges must not overlap.
func moveConstruct[T any](dst block[T], dstFrom int, src block[T], srcFrom, n int) {
	copy(dst.slots[dstFrom:dstFrom+n], src.slots[srcFrom:srcFrom+n])
	src.destroyRange(srcFrom, srcFrom+n)
}

// moveBackward move-assigns [first, last) so that it ends at dLast, walking
// from the back so overlapping ranges shifted right stay intact.
func (b block[T]) moveBackward(first, last, dLast int) {
	for last > first {
		last--
		dLast--
		b.slots[dLast] = b.slots[last]
	}
}

// moveForward move-assigns [first, last) so that it starts at dFirst,
// walking from the front so overlapping ranges shifted left stay intact.
func (b block[T]) moveForward(first, last, dFirst int) {
	for ; first < last; first++ {
		b.slots[dFirst] = b.slots[first]
		dFirst++
	}
}

// aliases reports whether s points into b's slots.
func (b block[T]) aliases(s []T) bool {
	if len(s) == 0 || len(b.slots) == 0 {
		return false
	}
	size := unsafe.Sizeof(b.slots[0])
	if size == 0 {
		return false
	}
	lo := uintptr(unsafe.Pointer(unsafe.SliceData(b.slots)))
	hi := lo + uintptr(len(b.slots))*size
	p := uintptr(unsafe.Pointer(unsafe.SliceData(s)))
	return p >= lo && p < hi
}
