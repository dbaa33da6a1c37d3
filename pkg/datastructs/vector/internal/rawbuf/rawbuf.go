// Package rawbuf provides typed blocks of element slots whose lifetimes are
// managed entirely by the owner. A Buffer never constructs or destroys the
// values it holds; it only hands out slots and transfers whole blocks.
package rawbuf

import (
	"fmt"
	"unsafe"

	"github.com/pkg/errors"

	"github.com/huynhanx03/go-vector/pkg/utils"
)

// noCopy makes go vet's copylocks check reject copies of a Buffer.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Buffer is a fixed-capacity block of slots for elements of type T.
// Slots outside the owner's live range hold the zero value of T.
// A Buffer must not be copied; ownership moves through Take, MoveFrom and Swap.
// It is NOT thread-safe.
type Buffer[T any] struct {
	noCopy noCopy
	slots  []T // len == cap == capacity, nil iff capacity is 0
	alloc  *Allocator
}

// SlotSize returns the number of bytes a single slot of T occupies.
func SlotSize[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// New allocates a block of exactly n slots charged to a.
// For n == 0 no allocation is performed and the buffer is empty.
func New[T any](a *Allocator, n int) (*Buffer[T], error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrNegativeCapacity, "capacity %d", n)
	}
	b := &Buffer[T]{alloc: a}
	if n == 0 {
		return b, nil
	}

	size, ok := utils.MulOverflowSafe(n, SlotSize[T]())
	if !ok {
		return nil, errors.Wrapf(ErrOutOfMemory, "%d slots of %d bytes overflow", n, SlotSize[T]())
	}
	if err := a.charge(size); err != nil {
		return nil, err
	}

	slots, err := makeSlots[T](n)
	if err != nil {
		a.credit(size)
		return nil, err
	}
	b.slots = slots
	return b, nil
}

// makeSlots turns a refused allocation into ErrOutOfMemory.
func makeSlots[T any](n int) (slots []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			slots = nil
			err = errors.Wrapf(ErrOutOfMemory, "allocate %d slots: %v", n, r)
		}
	}()
	return make([]T, n), nil
}

// Cap returns the number of slots in the block.
func (b *Buffer[T]) Cap() int {
	return len(b.slots)
}

// Size returns the number of bytes the block is charged for.
func (b *Buffer[T]) Size() int {
	return len(b.slots) * SlotSize[T]()
}

// Allocator returns the allocator the block is charged to.
func (b *Buffer[T]) Allocator() *Allocator {
	return b.alloc
}

// At returns the address of slot i. The caller guarantees 0 <= i < Cap().
func (b *Buffer[T]) At(i int) *T {
	if debug && uint(i) >= uint(len(b.slots)) {
		panic(fmt.Sprintf("rawbuf: slot %d out of capacity %d", i, len(b.slots)))
	}
	return &b.slots[i]
}

// Slice returns slots [lo, hi) without copying. The result must not outlive
// the block and must not be appended to.
func (b *Buffer[T]) Slice(lo, hi int) []T {
	return b.slots[lo:hi:hi]
}

// Release frees the block. Values still held in the slots are dropped without
// being destroyed. Releasing an empty buffer is a no-op.
func (b *Buffer[T]) Release() {
	if b.slots == nil {
		return
	}
	b.alloc.credit(b.Size())
	b.slots = nil
}

// Swap exchanges the blocks held by b and o.
func (b *Buffer[T]) Swap(o *Buffer[T]) {
	b.slots, o.slots = o.slots, b.slots
	b.alloc, o.alloc = o.alloc, b.alloc
}

// Take transfers the block into a new Buffer and leaves b empty.
func (b *Buffer[T]) Take() *Buffer[T] {
	nb := &Buffer[T]{slots: b.slots, alloc: b.alloc}
	b.slots = nil
	return nb
}

// MoveFrom releases b's block and takes over o's, leaving o empty.
func (b *Buffer[T]) MoveFrom(o *Buffer[T]) {
	if b == o {
		return
	}
	b.Release()
	b.slots, b.alloc = o.slots, o.alloc
	o.slots = nil
}
