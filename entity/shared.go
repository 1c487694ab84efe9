package entity

import (
	"github.com/go-arrower/entities/eid"
	"github.com/go-arrower/entities/internal/ordmap"
)

// NewSharedCollection returns an empty SharedCollection of T.
func NewSharedCollection[T Entity[T]](opts ...Option) *SharedCollection[T] {
	c := &SharedCollection[T]{}
	c.init(opts...)

	return c
}

// SharedCollection stores entities of type T behind a shared Ref, ordered by their ID.
// Every caller of Get receives the same Ref and observes changes made through it by others.
//
// An entity is inserted at most once per ID: inserting a second entity with the same ID is rejected.
//
// The zero value is an empty collection ready to use, without logging and metrics.
type SharedCollection[T Entity[T]] struct {
	items *ordmap.Map[eid.ID[T], *Ref[T]]

	telemetry
}

func (c *SharedCollection[T]) init(opts ...Option) {
	c.items = ordmap.New[eid.ID[T], *Ref[T]](eid.Compare[T])
	c.telemetry = newTelemetry[T](opts...)
}

func (c *SharedCollection[T]) ensureInitialised() {
	if c.items == nil {
		c.init()
	}
}

// Insert wraps e in a new Ref, stores and returns it.
//
// If an entity with the same ID is stored already, nothing changes and
// a *CollisionError is returned, handing e back unmodified.
func (c *SharedCollection[T]) Insert(e T) (*Ref[T], error) {
	c.ensureInitialised()

	id := e.EntityID()

	if c.items.Has(id) {
		c.record(outcomeRejected, id)
		return nil, &CollisionError[T]{Entity: e}
	}

	ref := NewRef(e)

	if _, replaced := c.items.Set(id, ref); replaced {
		// Has reported the id as absent, so there is no Ref to replace.
		// A holder of the dropped Ref would be left with a detached entity.
		panic("entity: shared collection replaced the stored Ref of " + entityName[T]() + " " + id.String())
	}

	c.record(outcomeInserted, id)

	return ref, nil
}

// Get returns the shared Ref of the entity with the given id.
func (c *SharedCollection[T]) Get(id eid.ID[T]) (*Ref[T], bool) {
	c.ensureInitialised()

	return c.items.Get(id)
}

func (c *SharedCollection[T]) Has(id eid.ID[T]) bool {
	c.ensureInitialised()

	return c.items.Has(id)
}

// Len returns the number of stored entities.
func (c *SharedCollection[T]) Len() int {
	c.ensureInitialised()

	return c.items.Len()
}
