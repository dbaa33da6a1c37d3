package vector

import (
	"iter"

	"github.com/pkg/errors"
)

// Iter is a position handle into an Array. Handles are plain values; moving
// one never touches the array.
//
// A handle is invalidated by every operation that reallocates the storage or
// shifts elements (growth, InsertAt, RemoveAt, Resize down, Clear, Take,
// MoveFrom, Swap). Dereferencing an invalidated handle panics with
// ErrStaleIterator.
//
// PushBack within capacity and PopBack move only the end: other handles stay
// valid, and a handle to the popped element fails its range check.
type Iter[T any] struct {
	arr *Array[T]
	pos int
	gen uint64
}

// Begin returns a handle to the first element.
func (a *Array[T]) Begin() Iter[T] {
	return a.iterAt(0)
}

// End returns the past-the-end handle.
func (a *Array[T]) End() Iter[T] {
	return a.iterAt(a.length)
}

// IterAt returns a handle to position i, which may be Len().
func (a *Array[T]) IterAt(i int) (Iter[T], error) {
	if i < 0 || i > a.Len() {
		return Iter[T]{}, indexError(i, a.Len())
	}
	return a.iterAt(i), nil
}

func (a *Array[T]) iterAt(i int) Iter[T] {
	return Iter[T]{arr: a, pos: i, gen: a.gen}
}

// Next returns the handle one position forward.
func (it Iter[T]) Next() Iter[T] {
	it.pos++
	return it
}

// Prev returns the handle one position back.
func (it Iter[T]) Prev() Iter[T] {
	it.pos--
	return it
}

// Add returns the handle n positions forward.
func (it Iter[T]) Add(n int) Iter[T] {
	it.pos += n
	return it
}

// Sub returns the handle n positions back.
func (it Iter[T]) Sub(n int) Iter[T] {
	it.pos -= n
	return it
}

// Index returns the position the handle refers to.
func (it Iter[T]) Index() int {
	return it.pos
}

// Equal reports whether both handles refer to the same position of the same array.
func (it Iter[T]) Equal(o Iter[T]) bool {
	return it.arr == o.arr && it.pos == o.pos
}

// Distance returns the number of steps from it to last. Both handles must
// come from the same array.
func (it Iter[T]) Distance(last Iter[T]) int {
	if it.arr != last.arr {
		panic(ErrForeignIterator)
	}
	return last.pos - it.pos
}

// Valid reports whether the handle is current and refers to a live element.
func (it Iter[T]) Valid() bool {
	return it.arr != nil && it.gen == it.arr.gen && it.pos >= 0 && it.pos < it.arr.length
}

// Get returns the element the handle refers to.
func (it Iter[T]) Get() T {
	return *it.Ptr()
}

// Ptr returns the address of the element the handle refers to.
func (it Iter[T]) Ptr() *T {
	if it.arr == nil || it.gen != it.arr.gen {
		panic(errors.WithStack(ErrStaleIterator))
	}
	if it.pos < 0 || it.pos >= it.arr.length {
		panic(indexError(it.pos, it.arr.length))
	}
	return it.arr.storage.At(it.pos)
}

// Set replaces the element the handle refers to.
func (it Iter[T]) Set(v T) {
	p := it.Ptr()
	it.arr.traits.destroy(p)
	*p = v
}

// All yields the live elements front to back with their indexes.
// The array must not be modified during iteration.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.view() {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Backward yields the live elements back to front with their indexes.
func (a *Array[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		view := a.view()
		for i := len(view) - 1; i >= 0; i-- {
			if !yield(i, view[i]) {
				return
			}
		}
	}
}
