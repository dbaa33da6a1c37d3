package vector

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/huynhanx03/go-vector/pkg/datastructs/vector/internal/rawbuf"
)

var (
	// ErrOutOfMemory is returned unchanged from the allocator when a block cannot be provided.
	ErrOutOfMemory = rawbuf.ErrOutOfMemory

	// ErrIndexOutOfRange is returned by checked access and positional mutators.
	ErrIndexOutOfRange = errors.New("vector: index out of range")

	// ErrEmpty is returned when an operation needs at least one element.
	ErrEmpty = errors.New("vector: array is empty")

	// ErrNegativeSize is returned when a negative length or capacity is requested.
	ErrNegativeSize = errors.New("vector: negative size is not allowed")

	// ErrNotCopyable is returned when a copy is requested for an element type without a copy operation.
	ErrNotCopyable = errors.New("vector: element type cannot be copied")

	// ErrElementOperation matches every *ElementError through errors.Is.
	ErrElementOperation = errors.New("vector: element operation failed")

	// ErrStaleIterator is the panic value when a handle is used after a reallocation or shift.
	ErrStaleIterator = errors.New("vector: iterator used after the array was modified")

	// ErrForeignIterator is returned when a handle from another array is passed in.
	ErrForeignIterator = errors.New("vector: iterator belongs to another array")
)

// Op names the element operation that failed.
type Op string

const (
	OpCopy    Op = "copy"
	OpMove    Op = "move"
	OpDefault Op = "default"
)

// ElementError reports a failure raised by an element's own copy, move or
// default operation.
//
// Recoverable is true when the array was left exactly as it was before the
// call. It is false when the failure hit a move the traits declared
// non-failing, or an in-place shift; the array is then valid (length and
// storage agree) but its contents are unspecified.
type ElementError struct {
	Op          Op
	Index       int
	Recoverable bool
	Err         error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("vector: %s element %d: %v", e.Op, e.Index, e.Err)
}

func (e *ElementError) Unwrap() error { return e.Err }

// Is reports whether target is ErrElementOperation.
func (e *ElementError) Is(target error) bool {
	return target == ErrElementOperation
}

func indexError(i, length int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "index %d, length %d", i, length)
}
