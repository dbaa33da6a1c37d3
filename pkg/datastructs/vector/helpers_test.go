package vector

import (
	"github.com/pkg/errors"
)

var errBoom = errors.New("boom")

// counters instruments element traits over int. The fail* fields make the
// n-th call of an operation fail (1-based); zero never fails.
type counters struct {
	copies   int
	moves    int
	defaults int
	destroys int

	failCopyOn    int
	failMoveOn    int
	failDefaultOn int
}

func (c *counters) copy(dst, src *int) error {
	c.copies++
	if c.failCopyOn > 0 && c.copies == c.failCopyOn {
		return errBoom
	}
	*dst = *src
	return nil
}

func (c *counters) move(dst, src *int) error {
	c.moves++
	if c.failMoveOn > 0 && c.moves == c.failMoveOn {
		return errBoom
	}
	*dst = *src
	*src = 0
	return nil
}

func (c *counters) def() (int, error) {
	c.defaults++
	if c.failDefaultOn > 0 && c.defaults == c.failDefaultOn {
		return 0, errBoom
	}
	return 7, nil
}

func (c *counters) destroy(*int) {
	c.destroys++
}

// copyRelocated describes a type whose move may fail, so growth copies.
func (c *counters) copyRelocated() Traits[int] {
	return Traits[int]{
		Copy:    c.copy,
		Move:    c.move,
		Default: c.def,
		Destroy: c.destroy,
	}
}

// copyOnly describes a copyable type with plain moves that may fail.
func (c *counters) copyOnly() Traits[int] {
	return Traits[int]{
		Copy:    c.copy,
		Destroy: c.destroy,
	}
}

// moveOnly describes a type that cannot be copied.
func (c *counters) moveOnly() Traits[int] {
	return Traits[int]{
		Move:    c.move,
		Destroy: c.destroy,
	}
}

// plainDestroy describes plain values with a destructor.
func (c *counters) plainDestroy() Traits[int] {
	t := Plain[int]()
	t.Destroy = c.destroy
	return t
}

func appendAll[T any](a *Array[T], values ...T) error {
	for _, v := range values {
		if err := a.PushBack(v); err != nil {
			return err
		}
	}
	return nil
}

// recoverError runs f and returns the error it panicked with, if any.
func recoverError(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	f()
	return nil
}
