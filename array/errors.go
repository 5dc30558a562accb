package array

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is wrapped by every RangeError.
var ErrOutOfRange = errors.New("array: index out of range")

// RangeError reports an index that violated the bound of the operation Op.
// Access and removal require Index < Count, insertion positions allow
// Index == Count.
type RangeError struct {
	Op       string
	Index    int
	Count    int
	AllowEnd bool
}

func (e *RangeError) Error() string {
	if e.AllowEnd {
		return fmt.Sprintf("array: %s: index %d out of range [0,%d]", e.Op, e.Index, e.Count)
	}
	return fmt.Sprintf("array: %s: index %d out of range [0,%d)", e.Op, e.Index, e.Count)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}
