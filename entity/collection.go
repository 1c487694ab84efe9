package entity

import (
	"github.com/go-arrower/entities/eid"
	"github.com/go-arrower/entities/internal/ordmap"
)

// NewCollection returns an empty Collection of T.
func NewCollection[T Entity[T]](opts ...Option) *Collection[T] {
	c := &Collection[T]{}
	c.init(opts...)

	return c
}

// Collection owns entities of type T, ordered by their ID.
// There is at most one entity per ID.
//
// The zero value is an empty collection ready to use, without logging and metrics.
type Collection[T Entity[T]] struct {
	items *ordmap.Map[eid.ID[T], *T]

	telemetry
}

func (c *Collection[T]) init(opts ...Option) {
	c.items = ordmap.New[eid.ID[T], *T](eid.Compare[T])
	c.telemetry = newTelemetry[T](opts...)
}

func (c *Collection[T]) ensureInitialised() {
	if c.items == nil {
		c.init()
	}
}

// Insert stores e under its ID. It always succeeds.
// If an entity with the same ID was stored already, it is overwritten and
// returned as prev, with replaced true.
func (c *Collection[T]) Insert(e T) (prev T, replaced bool) { //nolint:ireturn,nonamedreturns // generic, names document the result
	c.ensureInitialised()

	id := e.EntityID()

	old, replaced := c.items.Set(id, &e)
	if replaced {
		c.record(outcomeReplaced, id)
		return *old, true
	}

	c.record(outcomeInserted, id)

	return *new(T), false
}

// Get returns a copy of the entity with the given id.
func (c *Collection[T]) Get(id eid.ID[T]) (T, bool) { //nolint:ireturn // generic
	c.ensureInitialised()

	e, found := c.items.Get(id)
	if !found {
		return *new(T), false
	}

	return *e, true
}

// GetMut returns the stored entity with the given id, for it to be changed in place.
//
// The caller must not change the entity such, that its EntityID changes.
// The collection is not re-keyed and the entity would stay stored under its old ID.
// A pointer obtained before the entity is overwritten by Insert does not point to the stored entity anymore.
func (c *Collection[T]) GetMut(id eid.ID[T]) (*T, bool) {
	c.ensureInitialised()

	return c.items.Get(id)
}

func (c *Collection[T]) Has(id eid.ID[T]) bool {
	c.ensureInitialised()

	return c.items.Has(id)
}

// Len returns the number of stored entities.
func (c *Collection[T]) Len() int {
	c.ensureInitialised()

	return c.items.Len()
}
