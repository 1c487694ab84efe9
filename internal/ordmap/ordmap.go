// Package ordmap provides an ordered map, backed by a B-tree.
package ordmap

import (
	"github.com/google/btree"
)

// degree of the B-tree. Every node holds up to 2*degree-1 entries.
const degree = 16

// Map is an ordered map from K to V.
// Keys are ordered by the compare function given to New.
// Map is not safe for concurrent use.
type Map[K, V any] struct {
	tree *btree.BTreeG[entry[K, V]]
}

type entry[K, V any] struct {
	key   K
	value V
}

// New returns an empty Map.
// compare has to define a total order over K, as cmp.Compare does.
func New[K, V any](compare func(a, b K) int) *Map[K, V] {
	return &Map[K, V]{
		tree: btree.NewG(degree, func(a, b entry[K, V]) bool {
			return compare(a.key, b.key) < 0
		}),
	}
}

// Set stores value under key. If key was present, the previous value is returned with replaced true.
func (m *Map[K, V]) Set(key K, value V) (V, bool) { //nolint:ireturn // generic
	prev, replaced := m.tree.ReplaceOrInsert(entry[K, V]{key: key, value: value})

	return prev.value, replaced
}

func (m *Map[K, V]) Get(key K) (V, bool) { //nolint:ireturn // generic
	e, found := m.tree.Get(entry[K, V]{key: key})

	return e.value, found
}

func (m *Map[K, V]) Has(key K) bool {
	return m.tree.Has(entry[K, V]{key: key})
}

func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}
