package vector

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-vector/pkg/datastructs/vector/internal/rawbuf"
	"github.com/huynhanx03/go-vector/pkg/utils"
)

// growCapacity returns the capacity to use when an insertion finds the array full.
func growCapacity(length int) (int, error) {
	n, ok := utils.MulOverflowSafe(length, growFactor)
	if !ok {
		return 0, errors.Wrapf(ErrOutOfMemory, "cannot grow past length %d", length)
	}
	return max(minGrowCapacity, n), nil
}

// Reserve grows the storage to exactly n slots when n exceeds the current
// capacity. Smaller requests are a no-op. On failure the array is unchanged.
func (a *Array[T]) Reserve(n int) error {
	a.init()
	if n < 0 {
		return ErrNegativeSize
	}
	if n <= a.storage.Cap() {
		return nil
	}
	fresh, err := a.allocate(n)
	if err != nil {
		return err
	}
	byMove := a.caps.RelocateByMove()
	if err := a.relocate(fresh, 0, a.length, 0, byMove); err != nil {
		fresh.Release()
		return err
	}
	a.adopt(fresh, byMove)
	return nil
}

// Append places v after the last element, growing the storage when it is
// full, and returns the address of the new element. The array takes
// ownership of v. On failure the array is unchanged unless the error is a
// non-recoverable *ElementError.
func (a *Array[T]) Append(v T) (*T, error) {
	a.init()
	if a.length < a.storage.Cap() {
		slot := a.storage.At(a.length)
		if err := a.place(slot, &v); err != nil {
			return nil, a.elementError(a.length, true, err).recoverable()
		}
		a.length++
		return slot, nil
	}

	newCap, err := growCapacity(a.length)
	if err != nil {
		return nil, err
	}
	fresh, err := a.allocate(newCap)
	if err != nil {
		return nil, err
	}

	slot := fresh.At(a.length)
	if err := a.place(slot, &v); err != nil {
		fresh.Release()
		return nil, a.elementError(a.length, true, err).recoverable()
	}
	byMove := a.caps.RelocateByMove()
	if err := a.relocate(fresh, 0, a.length, 0, byMove); err != nil {
		a.traits.destroy(slot)
		fresh.Release()
		return nil, err
	}
	a.adopt(fresh, byMove)
	a.length++
	return slot, nil
}

// PushBack is Append without the element address.
func (a *Array[T]) PushBack(v T) error {
	_, err := a.Append(v)
	return err
}

// allocate returns a block of n slots charged to the array's allocator.
// Allocation failures are returned unchanged.
func (a *Array[T]) allocate(n int) (*rawbuf.Buffer[T], error) {
	return rawbuf.New[T](a.alloc, n)
}

// adopt installs fresh as the storage. Copied-from elements in the old block
// are destroyed; moved-from ones were already retired by transfer.
func (a *Array[T]) adopt(fresh *rawbuf.Buffer[T], byMove bool) {
	oldCap := a.storage.Cap()
	if !byMove {
		a.destroyRange(&a.storage, 0, a.length)
	}
	a.storage.Swap(fresh)
	fresh.Release()
	a.gen++

	a.log.Debug("vector: reallocated",
		zap.Int("from", oldCap),
		zap.Int("to", a.storage.Cap()),
		zap.Int("length", a.length),
		zap.Bool("move", byMove),
	)
}

// relocate transfers the live elements [lo, hi) into dst starting at lo+shift.
// On failure it destroys everything it built in dst.
func (a *Array[T]) relocate(dst *rawbuf.Buffer[T], lo, hi, shift int, byMove bool) error {
	for i := lo; i < hi; i++ {
		if err := a.transfer(dst.At(i+shift), a.storage.At(i), byMove); err != nil {
			a.destroyRange(dst, lo+shift, i+shift)
			return a.elementError(i, byMove, err)
		}
	}
	return nil
}

// transfer constructs *dst from *src, by move (retiring src) or by copy.
// dst must be empty; it is left empty on failure.
func (a *Array[T]) transfer(dst, src *T, byMove bool) error {
	if byMove {
		if err := a.traits.moveTo(dst, src); err != nil {
			discard(dst)
			return err
		}
		a.traits.retire(src)
		return nil
	}
	if err := a.traits.copyTo(dst, src); err != nil {
		discard(dst)
		return err
	}
	return nil
}

// place moves a caller-owned value into the empty slot dst.
func (a *Array[T]) place(dst, v *T) error {
	if err := a.traits.moveTo(dst, v); err != nil {
		discard(dst)
		return err
	}
	a.traits.retire(v)
	return nil
}

// destroyRange destroys slots [lo, hi) of buf.
func (a *Array[T]) destroyRange(buf *rawbuf.Buffer[T], lo, hi int) {
	for i := lo; i < hi; i++ {
		a.traits.destroy(buf.At(i))
	}
}

// elementError describes a failed transfer of element i. Copy failures are
// always unwound; move failures are only recoverable when nothing was moved
// yet, which callers mark explicitly.
func (a *Array[T]) elementError(i int, byMove bool, err error) *ElementError {
	op := OpCopy
	if byMove {
		op = OpMove
	}
	return &ElementError{Op: op, Index: i, Recoverable: !byMove, Err: err}
}

func (e *ElementError) recoverable() *ElementError {
	e.Recoverable = true
	return e
}
