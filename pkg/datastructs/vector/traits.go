package vector

// Traits is the dispatch table describing what an element type can do.
// It replaces per-type construction, copy, move and destruction hooks.
//
// Every function receives slot addresses inside the array's storage. A
// destination slot passed to Copy, Move or returned by Default is empty
// (holds the zero value) before the call.
type Traits[T any] struct {
	// Copy duplicates *src into *dst. Nil means the type cannot be copied.
	Copy func(dst, src *T) error

	// Move transfers *src into *dst and leaves *src in a destroyable state;
	// the array destroys *src afterwards. Nil means plain assignment, which
	// never fails, and the source slot is then dropped without Destroy.
	Move func(dst, src *T) error

	// NoFailMove declares that moving never returns an error.
	NoFailMove bool

	// Default produces the value for a newly grown slot. Nil means the zero value.
	Default func() (T, error)

	// Destroy ends the lifetime of a live element before its slot is zeroed.
	Destroy func(*T)
}

// Capabilities is the capability descriptor resolved once from Traits.
type Capabilities struct {
	HasNonFailingMove bool
	HasCopy           bool
	HasDefaultValue   bool
}

// RelocateByMove reports whether growth moves elements instead of copying them.
func (c Capabilities) RelocateByMove() bool {
	return c.HasNonFailingMove || !c.HasCopy
}

// Plain returns the traits of ordinary Go values: copy and move are
// assignments and the default is the zero value.
func Plain[T any]() Traits[T] {
	return Traits[T]{
		Copy:       assign[T],
		NoFailMove: true,
	}
}

// Capabilities resolves the capability descriptor of t.
func (t Traits[T]) Capabilities() Capabilities {
	return Capabilities{
		HasNonFailingMove: t.NoFailMove,
		HasCopy:           t.Copy != nil,
		HasDefaultValue:   t.Default != nil,
	}
}

func assign[T any](dst, src *T) error {
	*dst = *src
	return nil
}

func (t *Traits[T]) copyTo(dst, src *T) error {
	if t.Copy == nil {
		return ErrNotCopyable
	}
	return t.Copy(dst, src)
}

func (t *Traits[T]) moveTo(dst, src *T) error {
	if t.Move != nil {
		return t.Move(dst, src)
	}
	*dst = *src
	return nil
}

func (t *Traits[T]) defaultValue() (T, error) {
	if t.Default == nil {
		var zero T
		return zero, nil
	}
	return t.Default()
}

func (t *Traits[T]) destroy(p *T) {
	if t.Destroy != nil {
		t.Destroy(p)
	}
	var zero T
	*p = zero
}

// retire ends the lifetime of a slot whose value was moved out.
func (t *Traits[T]) retire(p *T) {
	if t.Move != nil {
		t.destroy(p)
		return
	}
	discard(p)
}

// discard zeroes a slot whose construction failed; it never held a live value.
func discard[T any](p *T) {
	var zero T
	*p = zero
}
