package array

// Cursor is the random-access cursor shape shared by Iterator,
// ConstIterator and ReverseIterator.
type Cursor[I any, V any] interface {
	Value() V
	At(n int) V
	Add(n int) I
	Sub(n int) I
	Diff(other I) int
	Equal(other I) bool
}

// ReverseIterator walks a forward cursor backwards. It refers to the
// element just before its base, so the reverse of End is the last element
// and the reverse of Begin is one past the front.
type ReverseIterator[I Cursor[I, V], V any] struct {
	base I
}

// Reverse wraps base.
func Reverse[I Cursor[I, V], V any](base I) ReverseIterator[I, V] {
	return ReverseIterator[I, V]{base: base}
}

// Base returns the wrapped forward cursor.
func (r ReverseIterator[I, V]) Base() I {
	return r.base
}

func (r ReverseIterator[I, V]) Value() V {
	return r.base.Sub(1).Value()
}

func (r ReverseIterator[I, V]) At(n int) V {
	return r.base.At(-n - 1)
}

func (r *ReverseIterator[I, V]) Inc() *ReverseIterator[I, V] {
	r.base = r.base.Sub(1)
	return r
}

func (r *ReverseIterator[I, V]) Dec() *ReverseIterator[I, V] {
	r.base = r.base.Add(1)
	return r
}

func (r *ReverseIterator[I, V]) PostInc() ReverseIterator[I, V] {
	prev := *r
	r.base = r.base.Sub(1)
	return prev
}

func (r *ReverseIterator[I, V]) PostDec() ReverseIterator[I, V] {
	prev := *r
	r.base = r.base.Add(1)
	return prev
}

func (r ReverseIterator[I, V]) Add(n int) ReverseIterator[I, V] {
	return ReverseIterator[I, V]{base: r.base.Sub(n)}
}

func (r ReverseIterator[I, V]) Sub(n int) ReverseIterator[I, V] {
	return ReverseIterator[I, V]{base: r.base.Add(n)}
}

func (r ReverseIterator[I, V]) Diff(other ReverseIterator[I, V]) int {
	return other.base.Diff(r.base)
}

func (r ReverseIterator[I, V]) Equal(other ReverseIterator[I, V]) bool {
	return r.base.Equal(other.base)
}

// RBegin returns a reverse cursor at the last element.
func (a *Array[T]) RBegin() ReverseIterator[Iterator[T], T] {
	return Reverse[Iterator[T], T](a.End())
}

// REnd returns a reverse cursor one before the first element.
func (a *Array[T]) REnd() ReverseIterator[Iterator[T], T] {
	return Reverse[Iterator[T], T](a.Begin())
}

func (a *Array[T]) CRBegin() ReverseIterator[ConstIterator[T], T] {
	return Reverse[ConstIterator[T], T](a.CEnd())
}

func (a *Array[T]) CREnd() ReverseIterator[ConstIterator[T], T] {
	return Reverse[ConstIterator[T], T](a.CBegin())
}
