package rawbuf

import (
	"github.com/pkg/errors"

	"github.com/huynhanx03/go-vector/pkg/utils"
)

var (
	// ErrOutOfMemory is returned when a block of the requested size cannot be provided.
	ErrOutOfMemory = errors.New("rawbuf: out of memory")

	// ErrNegativeCapacity is returned when a block is requested for a negative slot count.
	ErrNegativeCapacity = errors.New("rawbuf: negative capacity")
)

// Allocator charges raw blocks against an optional byte budget.
// Blocks themselves come from the Go heap; the budget makes exhaustion
// observable as ErrOutOfMemory instead of a fatal runtime error.
// A nil *Allocator allocates without a limit.
// It is NOT thread-safe.
type Allocator struct {
	limit int // bytes, 0 means unlimited
	inUse int
	peak  int
}

// NewAllocator creates an Allocator that refuses to hold more than limit bytes.
// A limit <= 0 disables the budget.
func NewAllocator(limit int) *Allocator {
	if limit < 0 {
		limit = 0
	}
	return &Allocator{limit: limit}
}

// Limit returns the byte budget, or 0 when unlimited.
func (a *Allocator) Limit() int {
	if a == nil {
		return 0
	}
	return a.limit
}

// InUse returns the number of bytes currently charged.
func (a *Allocator) InUse() int {
	if a == nil {
		return 0
	}
	return a.inUse
}

// Peak returns the highest number of bytes ever charged at once.
func (a *Allocator) Peak() int {
	if a == nil {
		return 0
	}
	return a.peak
}

func (a *Allocator) charge(size int) error {
	if a == nil {
		return nil
	}
	total, ok := utils.AddOverflowSafe(a.inUse, size)
	if !ok || (a.limit > 0 && total > a.limit) {
		return errors.Wrapf(ErrOutOfMemory, "request %d bytes, in use %d, limit %d", size, a.inUse, a.limit)
	}
	a.inUse = total
	if total > a.peak {
		a.peak = total
	}
	return nil
}

func (a *Allocator) credit(size int) {
	if a == nil {
		return
	}
	if size > a.inUse {
		panic("rawbuf: allocator credited more than it charged")
	}
	a.inUse -= size
}
