package index

import (
	"cmp"
	"context"
	"log/slog"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/go-arrower/entities/alog"
	"github.com/go-arrower/entities/eid"
	"github.com/go-arrower/entities/entity"
	"github.com/go-arrower/entities/internal/ordmap"
)

// NewReverse returns an empty Reverse index with keys in their natural order.
func NewReverse[K cmp.Ordered, T entity.Entity[T]](opts ...Option) *Reverse[K, T] {
	return NewReverseFunc[K, T](cmp.Compare[K], opts...)
}

// NewReverseFunc returns an empty Reverse index with keys ordered by compare.
// compare has to define a total order, as cmp.Compare does.
func NewReverseFunc[K any, T entity.Entity[T]](compare func(a, b K) int, opts ...Option) *Reverse[K, T] {
	return &Reverse[K, T]{
		buckets:     ordmap.New[K, *roaring64.Bitmap](compare),
		indexConfig: newConfig(opts...),
	}
}

// Reverse maps a key to a set of IDs of T. Use it to look up all entities sharing an attribute.
// Use NewReverse or NewReverseFunc to create one.
//
// Every key has a bucket holding its IDs. Insert only adds to existing buckets,
// it never creates one: a bucket has to be created with Seed first.
type Reverse[K any, T entity.Entity[T]] struct {
	buckets *ordmap.Map[K, *roaring64.Bitmap]

	indexConfig
}

// Seed creates an empty bucket for key, so that IDs can be inserted.
// It returns false, if the bucket exists already. An existing bucket is not changed.
func (idx *Reverse[K, T]) Seed(key K) bool {
	if idx.buckets.Has(key) {
		return false
	}

	idx.buckets.Set(key, roaring64.New())

	return true
}

// Insert adds id to the bucket of key.
// It returns true, if id was added, and false, if id is in the bucket already.
//
// If there is no bucket for key, Insert does nothing and returns false as well.
// Use Has to tell both cases apart.
func (idx *Reverse[K, T]) Insert(key K, id eid.ID[T]) bool {
	bucket, found := idx.buckets.Get(key)
	if !found {
		idx.logger.LogAttrs(context.Background(), alog.LevelDebug, "reverse key has no bucket, id dropped",
			slog.Any("key", key),
			slog.Any("id", id),
		)

		return false
	}

	return bucket.CheckedAdd(id.Uint64())
}

// IDs returns the IDs in the bucket of key, in ascending order and without duplicates.
// It returns false, if there is no bucket for key. A seeded bucket without IDs returns an empty slice and true.
func (idx *Reverse[K, T]) IDs(key K) ([]eid.ID[T], bool) {
	bucket, found := idx.buckets.Get(key)
	if !found {
		return nil, false
	}

	ids := make([]eid.ID[T], 0, bucket.GetCardinality())

	it := bucket.Iterator()
	for it.HasNext() {
		ids = append(ids, eid.New[T](it.Next()))
	}

	return ids, true
}

// Has reports whether there is a bucket for key.
func (idx *Reverse[K, T]) Has(key K) bool {
	return idx.buckets.Has(key)
}

// Len returns the number of buckets.
func (idx *Reverse[K, T]) Len() int {
	return idx.buckets.Len()
}
