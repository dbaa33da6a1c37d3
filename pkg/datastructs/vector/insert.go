package vector

import "github.com/pkg/errors"

// InsertAt places v at pos, shifting [pos, Len()) one slot toward the end,
// and returns a handle to the inserted element. pos == Len() appends.
//
// When the storage is full a larger block is built aside and adopted only
// after every element landed, so a failed insertion leaves the array as it
// was. Without growth elements are shifted in place; a failure during the
// shift leaves the array valid but with unspecified contents.
func (a *Array[T]) InsertAt(pos int, v T) (Iter[T], error) {
	a.init()
	if pos < 0 || pos > a.length {
		return Iter[T]{}, indexError(pos, a.length)
	}
	if pos == a.length {
		if _, err := a.Append(v); err != nil {
			return Iter[T]{}, err
		}
		return a.iterAt(pos), nil
	}
	if a.length == a.storage.Cap() {
		if err := a.insertGrow(pos, &v); err != nil {
			return Iter[T]{}, err
		}
		return a.iterAt(pos), nil
	}
	if err := a.insertShift(pos, &v); err != nil {
		return Iter[T]{}, err
	}
	return a.iterAt(pos), nil
}

// Insert places v before the element it refers to. See InsertAt.
func (a *Array[T]) Insert(it Iter[T], v T) (Iter[T], error) {
	if err := a.own(it); err != nil {
		return Iter[T]{}, err
	}
	return a.InsertAt(it.pos, v)
}

// insertGrow builds prefix, gap and shifted suffix in a new block.
func (a *Array[T]) insertGrow(pos int, v *T) error {
	newCap, err := growCapacity(a.length)
	if err != nil {
		return err
	}
	fresh, err := a.allocate(newCap)
	if err != nil {
		return err
	}

	slot := fresh.At(pos)
	if err := a.place(slot, v); err != nil {
		fresh.Release()
		return a.elementError(pos, true, err).recoverable()
	}
	byMove := a.caps.RelocateByMove()
	if err := a.relocate(fresh, 0, pos, 0, byMove); err != nil {
		a.traits.destroy(slot)
		fresh.Release()
		return err
	}
	if err := a.relocate(fresh, pos, a.length, 1, byMove); err != nil {
		a.destroyRange(fresh, 0, pos+1)
		fresh.Release()
		return err
	}
	a.adopt(fresh, byMove)
	a.length++
	return nil
}

// insertShift opens a gap at pos inside the current block, highest slot first.
func (a *Array[T]) insertShift(pos int, v *T) error {
	byMove := a.caps.RelocateByMove()
	n := a.length

	if err := a.transfer(a.storage.At(n), a.storage.At(n-1), byMove); err != nil {
		return a.elementError(n-1, byMove, err)
	}
	a.length++
	a.gen++

	for i := n - 1; i > pos; i-- {
		dst := a.storage.At(i)
		if !byMove {
			a.traits.destroy(dst)
		}
		if err := a.transfer(dst, a.storage.At(i-1), byMove); err != nil {
			e := a.elementError(i-1, byMove, err)
			e.Recoverable = false
			return e
		}
	}

	dst := a.storage.At(pos)
	if !byMove {
		a.traits.destroy(dst)
	}
	if err := a.place(dst, v); err != nil {
		e := a.elementError(pos, true, err)
		e.Recoverable = false
		return e
	}
	return nil
}

// RemoveAt destroys the element at pos, shifts the rest one slot toward the
// front and returns a handle to the element that followed it (End() when it
// was the last). The storage is never reallocated.
func (a *Array[T]) RemoveAt(pos int) (Iter[T], error) {
	a.init()
	if pos < 0 || pos >= a.length {
		return Iter[T]{}, indexError(pos, a.length)
	}
	byMove := a.caps.RelocateByMove()
	n := a.length

	a.traits.destroy(a.storage.At(pos))
	for i := pos; i < n-1; i++ {
		dst := a.storage.At(i)
		if !byMove && i > pos {
			a.traits.destroy(dst)
		}
		if err := a.transfer(dst, a.storage.At(i+1), byMove); err != nil {
			a.gen++
			e := a.elementError(i+1, byMove, err)
			e.Recoverable = false
			return Iter[T]{}, e
		}
	}
	if !byMove && pos < n-1 {
		a.traits.destroy(a.storage.At(n - 1))
	}
	a.length--
	a.gen++
	return a.iterAt(pos), nil
}

// Erase removes the element it refers to. See RemoveAt.
func (a *Array[T]) Erase(it Iter[T]) (Iter[T], error) {
	if err := a.own(it); err != nil {
		return Iter[T]{}, err
	}
	return a.RemoveAt(it.pos)
}

// PopBack moves the last element out of the array and returns it.
func (a *Array[T]) PopBack() (T, error) {
	a.init()
	var out T
	if a.length == 0 {
		return out, ErrEmpty
	}
	last := a.storage.At(a.length - 1)
	if err := a.traits.moveTo(&out, last); err != nil {
		var zero T
		return zero, a.elementError(a.length-1, true, err).recoverable()
	}
	a.traits.retire(last)
	a.length--
	return out, nil
}

// own checks that it is a live handle into a.
func (a *Array[T]) own(it Iter[T]) error {
	if it.arr != a {
		return ErrForeignIterator
	}
	if it.gen != a.gen {
		return errors.WithStack(ErrStaleIterator)
	}
	return nil
}
