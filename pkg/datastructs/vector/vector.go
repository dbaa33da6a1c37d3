// Package vector implements Array, a contiguous growable sequence that owns
// its storage block and manages element lifetimes through Traits.
//
// An Array is NOT thread-safe. Callers sharing one across goroutines must
// synchronize all access, reads included. Independent arrays share no state.
package vector

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/huynhanx03/go-vector/pkg/datastructs/vector/internal/rawbuf"
)

// Array is a growable sequence of T. Elements [0, Len()) are live; the rest
// of the storage is never observable. The zero value is an empty array of
// plain values.
//
// An Array must not be copied; use Clone, Take or MoveFrom.
type Array[T any] struct {
	storage rawbuf.Buffer[T]
	length  int
	traits  Traits[T]
	caps    Capabilities
	alloc   *rawbuf.Allocator
	log     *zap.Logger
	gen     uint64 // bumped whenever handles are invalidated
	ready   bool
}

// Option configures a new Array.
type Option func(*options)

type options struct {
	log    *zap.Logger
	limit  int
	traits any
}

// WithLogger traces reallocations at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

// WithMemoryLimit caps the bytes the array's storage may hold at once,
// counting both blocks while a reallocation is in flight.
func WithMemoryLimit(bytes int) Option {
	return func(o *options) {
		o.limit = bytes
	}
}

// WithTraits sets the element traits. The element type of t must match the
// element type of the array being built.
func WithTraits[T any](t Traits[T]) Option {
	return func(o *options) {
		o.traits = t
	}
}

// New creates an empty Array with no storage.
func New[T any](opts ...Option) *Array[T] {
	var cfg options
	for _, opt := range opts {
		opt(&cfg)
	}
	a := &Array[T]{}
	a.configure(cfg)
	return a
}

// NewWithSize creates an Array of n default values with capacity n.
func NewWithSize[T any](n int, opts ...Option) (*Array[T], error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	a := New[T](opts...)
	if err := a.Resize(n); err != nil {
		return nil, err
	}
	return a, nil
}

// Of creates an Array of plain values holding exactly values.
func Of[T any](values ...T) *Array[T] {
	a := New[T]()
	if len(values) == 0 {
		return a
	}
	// Plain values never fail to copy; only allocation can fail here.
	if err := a.Reserve(len(values)); err != nil {
		panic(err)
	}
	copy(a.storage.Slice(0, len(values)), values)
	a.length = len(values)
	return a
}

// FromSlice creates an Array holding the elements of values, copying each
// one in with the element traits. Types without a copy operation are moved
// out of values instead.
func FromSlice[T any](values []T, opts ...Option) (*Array[T], error) {
	a := New[T](opts...)
	if err := a.Reserve(len(values)); err != nil {
		return nil, err
	}
	for i := range values {
		var err error
		dst := a.storage.At(i)
		if a.caps.HasCopy {
			err = a.traits.copyTo(dst, &values[i])
		} else {
			err = a.place(dst, &values[i])
		}
		if err != nil {
			discard(dst)
			a.Destroy()
			return nil, a.elementError(i, !a.caps.HasCopy, err)
		}
		a.length++
	}
	return a, nil
}

func (a *Array[T]) configure(cfg options) {
	a.traits = Plain[T]()
	if cfg.traits != nil {
		t, ok := cfg.traits.(Traits[T])
		if !ok {
			panic(fmt.Sprintf("vector: %T does not describe elements of %T", cfg.traits, a))
		}
		a.traits = t
	}
	a.caps = a.traits.Capabilities()

	a.log = cfg.log
	if a.log == nil {
		a.log = zap.NewNop()
	}
	if cfg.limit > 0 {
		a.alloc = rawbuf.NewAllocator(cfg.limit)
	}
	a.ready = true
}

// init makes the zero value usable.
func (a *Array[T]) init() {
	if !a.ready {
		a.configure(options{})
	}
}

// sibling returns an empty Array with the same traits, logger and memory limit.
func (a *Array[T]) sibling() *Array[T] {
	a.init()
	b := &Array[T]{
		traits: a.traits,
		caps:   a.caps,
		log:    a.log,
		ready:  true,
	}
	if a.alloc != nil {
		b.alloc = rawbuf.NewAllocator(a.alloc.Limit())
	}
	return b
}

// Clone returns a deep copy of a whose capacity equals its length.
// The copy shares nothing with a.
func (a *Array[T]) Clone() (*Array[T], error) {
	b := a.sibling()
	if !a.caps.HasCopy {
		return nil, ErrNotCopyable
	}
	if err := b.Reserve(a.length); err != nil {
		return nil, err
	}
	for i := 0; i < a.length; i++ {
		dst := b.storage.At(i)
		if err := a.traits.copyTo(dst, a.storage.At(i)); err != nil {
			discard(dst)
			b.Destroy()
			return nil, a.elementError(i, false, err)
		}
		b.length++
	}
	return b, nil
}

// Assign replaces the contents of a with copies of o's elements, copied with
// a's traits. Storage is reused when it is large enough; otherwise a block of
// o.Len() slots is built aside, which leaves a untouched on failure.
func (a *Array[T]) Assign(o *Array[T]) error {
	a.init()
	if a == o {
		return nil
	}
	if !a.caps.HasCopy {
		return ErrNotCopyable
	}
	if o.length > a.storage.Cap() {
		return a.assignGrow(o)
	}

	common := min(a.length, o.length)
	for i := 0; i < o.length; i++ {
		dst := a.storage.At(i)
		if i < common {
			a.traits.destroy(dst)
		}
		if err := a.traits.copyTo(dst, o.storage.At(i)); err != nil {
			discard(dst)
			// Slots up to i are consistent; anything past the failure is dropped.
			a.destroyRange(&a.storage, i+1, a.length)
			a.length = i
			a.gen++
			return &ElementError{Op: OpCopy, Index: i, Err: err}
		}
	}
	a.destroyRange(&a.storage, o.length, a.length)
	a.length = o.length
	a.gen++
	return nil
}

// assignGrow copies o into a new block charged to a's allocator and adopts it
// only when every copy succeeded. a keeps its traits, logger and limit.
func (a *Array[T]) assignGrow(o *Array[T]) error {
	fresh, err := a.allocate(o.length)
	if err != nil {
		return err
	}
	for i := 0; i < o.length; i++ {
		dst := fresh.At(i)
		if err := a.traits.copyTo(dst, o.storage.At(i)); err != nil {
			discard(dst)
			a.destroyRange(fresh, 0, i)
			fresh.Release()
			return a.elementError(i, false, err)
		}
	}
	a.adopt(fresh, false)
	a.length = o.length
	return nil
}

// Take moves a's storage and elements into a new Array and leaves a empty.
func (a *Array[T]) Take() *Array[T] {
	b := a.sibling()
	b.alloc = a.alloc
	b.storage.MoveFrom(&a.storage)
	b.length = a.length
	a.length = 0
	if a.alloc != nil {
		a.alloc = rawbuf.NewAllocator(a.alloc.Limit())
	}
	a.gen++
	return b
}

// MoveFrom destroys a's elements, takes over o's storage, elements and
// traits, and leaves o empty.
func (a *Array[T]) MoveFrom(o *Array[T]) {
	if a == o {
		return
	}
	a.init()
	o.init()
	a.destroyRange(&a.storage, 0, a.length)
	a.storage.MoveFrom(&o.storage)
	a.length = o.length
	a.traits, a.caps, a.alloc, a.log = o.traits, o.caps, o.alloc, o.log
	o.length = 0
	if o.alloc != nil {
		o.alloc = rawbuf.NewAllocator(o.alloc.Limit())
	}
	a.gen++
	o.gen++
}

// Swap exchanges the contents of a and o in constant time.
func (a *Array[T]) Swap(o *Array[T]) {
	if a == o {
		return
	}
	a.init()
	o.init()
	a.storage.Swap(&o.storage)
	a.length, o.length = o.length, a.length
	a.traits, o.traits = o.traits, a.traits
	a.caps, o.caps = o.caps, a.caps
	a.alloc, o.alloc = o.alloc, a.alloc
	a.log, o.log = o.log, a.log
	a.gen++
	o.gen++
}

// Destroy destroys every live element and releases the storage.
// The array stays usable and empty.
func (a *Array[T]) Destroy() {
	a.init()
	a.destroyRange(&a.storage, 0, a.length)
	a.length = 0
	a.storage.Release()
	a.gen++
}

// Len returns the number of live elements.
func (a *Array[T]) Len() int {
	if a == nil {
		return 0
	}
	return a.length
}

// Cap returns the number of slots in the storage.
func (a *Array[T]) Cap() int {
	if a == nil {
		return 0
	}
	return a.storage.Cap()
}

// IsEmpty reports whether the array has no live elements.
func (a *Array[T]) IsEmpty() bool {
	return a.Len() == 0
}

// Capabilities returns the descriptor resolved from the element traits.
func (a *Array[T]) Capabilities() Capabilities {
	a.init()
	return a.caps
}

// Allocated returns the bytes held by the storage block.
func (a *Array[T]) Allocated() int {
	return a.storage.Size()
}

// Get returns element i without checking it against Len.
func (a *Array[T]) Get(i int) T {
	return *a.storage.At(i)
}

// Ptr returns the address of element i without checking it against Len.
// The pointer is invalidated by any reallocation or shift.
func (a *Array[T]) Ptr(i int) *T {
	return a.storage.At(i)
}

// Set replaces element i without checking it against Len.
func (a *Array[T]) Set(i int, v T) {
	a.init()
	p := a.storage.At(i)
	a.traits.destroy(p)
	*p = v
}

// At returns element i, or ErrIndexOutOfRange when i is not in [0, Len()).
func (a *Array[T]) At(i int) (T, error) {
	p, err := a.AtPtr(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// AtPtr returns the address of element i, or ErrIndexOutOfRange.
func (a *Array[T]) AtPtr(i int) (*T, error) {
	if i < 0 || i >= a.Len() {
		return nil, indexError(i, a.Len())
	}
	return a.storage.At(i), nil
}

// SetAt replaces element i, or returns ErrIndexOutOfRange.
func (a *Array[T]) SetAt(i int, v T) error {
	if i < 0 || i >= a.Len() {
		return indexError(i, a.Len())
	}
	a.Set(i, v)
	return nil
}

// Front returns the first element.
func (a *Array[T]) Front() (T, error) {
	if a.IsEmpty() {
		var zero T
		return zero, ErrEmpty
	}
	return a.Get(0), nil
}

// Back returns the last element.
func (a *Array[T]) Back() (T, error) {
	if a.IsEmpty() {
		var zero T
		return zero, ErrEmpty
	}
	return a.Get(a.length - 1), nil
}

// Values returns a shallow copy of the live elements.
func (a *Array[T]) Values() []T {
	view := a.view()
	if view == nil {
		return nil
	}
	out := make([]T, len(view))
	copy(out, view)
	return out
}

// view returns the live elements without copying.
func (a *Array[T]) view() []T {
	if a == nil || a.length == 0 {
		return nil
	}
	return a.storage.Slice(0, a.length)
}
