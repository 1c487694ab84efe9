package entity

import (
	"fmt"
	"sync/atomic"
)

const exclusive = -1

// Ref is a shared handle to a value of T.
// Copy the pointer to share it, every holder observes and mutates the same value.
//
// Access to the value is scoped to the function given to View or Update and checked at run time:
// any number of Views can be active at the same time, but an Update excludes every other access.
// A conflicting access is never silently interleaved. The panicking methods panic with an error
// wrapping ErrBorrowConflict, the Try methods return it.
//
// The check is atomic, so a conflict between goroutines is detected as well.
// Ref does not block or wait for the conflicting access to finish.
type Ref[T any] struct {
	value T

	// borrows is the number of active Views, or exclusive while an Update is active.
	borrows atomic.Int32
}

// NewRef returns a Ref holding v.
func NewRef[T any](v T) *Ref[T] {
	return &Ref[T]{value: v}
}

// Get returns a copy of the value.
func (r *Ref[T]) Get() T { //nolint:ireturn // generic
	var v T

	r.View(func(e T) {
		v = e
	})

	return v
}

// View calls fn with a copy of the value.
// It panics, if an Update is active.
func (r *Ref[T]) View(fn func(e T)) {
	if err := r.TryView(fn); err != nil {
		panic(err)
	}
}

// Update calls fn with the value to change it in place.
// It panics, if a View or an Update is active, e.g. if Update is called from within View.
func (r *Ref[T]) Update(fn func(e *T)) {
	if err := r.TryUpdate(fn); err != nil {
		panic(err)
	}
}

func (r *Ref[T]) TryView(fn func(e T)) error {
	for {
		n := r.borrows.Load()
		if n == exclusive {
			return fmt.Errorf("%w: cannot view, the entity is being updated", ErrBorrowConflict)
		}

		if r.borrows.CompareAndSwap(n, n+1) {
			break
		}
	}

	defer r.borrows.Add(-1)

	fn(r.value)

	return nil
}

func (r *Ref[T]) TryUpdate(fn func(e *T)) error {
	if !r.borrows.CompareAndSwap(0, exclusive) {
		return fmt.Errorf("%w: cannot update, the entity is borrowed already", ErrBorrowConflict)
	}

	defer r.borrows.Store(0)

	fn(&r.value)

	return nil
}
