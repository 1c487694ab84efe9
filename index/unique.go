package index

import (
	"cmp"
	"context"
	"log/slog"

	"github.com/go-arrower/entities/alog"
	"github.com/go-arrower/entities/eid"
	"github.com/go-arrower/entities/entity"
	"github.com/go-arrower/entities/internal/ordmap"
)

// NewUnique returns an empty Unique index with keys in their natural order.
func NewUnique[K cmp.Ordered, T entity.Entity[T]](opts ...Option) *Unique[K, T] {
	return NewUniqueFunc[K, T](cmp.Compare[K], opts...)
}

// NewUniqueFunc returns an empty Unique index with keys ordered by compare.
// compare has to define a total order, as cmp.Compare does.
func NewUniqueFunc[K any, T entity.Entity[T]](compare func(a, b K) int, opts ...Option) *Unique[K, T] {
	return &Unique[K, T]{
		ids:         ordmap.New[K, eid.ID[T]](compare),
		indexConfig: newConfig(opts...),
	}
}

// Unique maps a key to a single ID of T. Use it to look up entities by a unique attribute.
// Use NewUnique or NewUniqueFunc to create one.
type Unique[K any, T entity.Entity[T]] struct {
	ids *ordmap.Map[K, eid.ID[T]]

	indexConfig
}

// Insert maps key to id, no matter if key is mapped already.
// If so, the previously mapped ID is returned as prev, with replaced true.
func (idx *Unique[K, T]) Insert(key K, id eid.ID[T]) (prev eid.ID[T], replaced bool) { //nolint:nonamedreturns // names document the result
	prev, replaced = idx.ids.Set(key, id)
	if replaced && prev != id {
		idx.logger.LogAttrs(context.Background(), alog.LevelDebug, "unique key remapped",
			slog.Any("key", key),
			slog.Any("prev", prev),
			slog.Any("id", id),
		)
	}

	return prev, replaced
}

// Get returns the ID mapped to key.
func (idx *Unique[K, T]) Get(key K) (eid.ID[T], bool) {
	return idx.ids.Get(key)
}

func (idx *Unique[K, T]) Has(key K) bool {
	return idx.ids.Has(key)
}

// Len returns the number of keys.
func (idx *Unique[K, T]) Len() int {
	return idx.ids.Len()
}
