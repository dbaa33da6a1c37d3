package vector

import "github.com/huynhanx03/go-vector/pkg/datastructs/vector/internal/rawbuf"

// Resize sets the length to n. Shrinking destroys the trailing elements and
// keeps the capacity. Growing fills the new slots with default values,
// reallocating to max(n, 2*Len()) slots when n exceeds the capacity. On
// failure the array is unchanged.
func (a *Array[T]) Resize(n int) error {
	a.init()
	if n < 0 {
		return ErrNegativeSize
	}
	if n <= a.length {
		a.destroyRange(&a.storage, n, a.length)
		if n < a.length {
			a.gen++
		}
		a.length = n
		return nil
	}
	if n <= a.storage.Cap() {
		if err := a.fillDefault(&a.storage, a.length, n); err != nil {
			return err
		}
		a.length = n
		return nil
	}

	newCap, err := growCapacity(a.length)
	if err != nil {
		return err
	}
	fresh, err := a.allocate(max(n, newCap))
	if err != nil {
		return err
	}
	if err := a.fillDefault(fresh, a.length, n); err != nil {
		fresh.Release()
		return err
	}
	byMove := a.caps.RelocateByMove()
	if err := a.relocate(fresh, 0, a.length, 0, byMove); err != nil {
		a.destroyRange(fresh, a.length, n)
		fresh.Release()
		return err
	}
	a.adopt(fresh, byMove)
	a.length = n
	return nil
}

// fillDefault constructs default values into the empty slots [lo, hi) of buf.
// On failure it destroys what it built.
func (a *Array[T]) fillDefault(buf *rawbuf.Buffer[T], lo, hi int) error {
	for i := lo; i < hi; i++ {
		v, err := a.traits.defaultValue()
		if err != nil {
			a.destroyRange(buf, lo, i)
			return &ElementError{Op: OpDefault, Index: i, Recoverable: true, Err: err}
		}
		*buf.At(i) = v
	}
	return nil
}

// Clear destroys every element and sets the length to zero. The capacity is kept.
func (a *Array[T]) Clear() {
	a.init()
	if a.length == 0 {
		return
	}
	a.destroyRange(&a.storage, 0, a.length)
	a.length = 0
	a.gen++
}
