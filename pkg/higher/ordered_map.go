package higher

import (
	"cmp"
	"iter"

	"github.com/google/btree"
)

type entry[K cmp.Ordered, V any] struct {
	key   K
	value V
}

func lessEntry[K cmp.Ordered, V any](a, b entry[K, V]) bool {
	return cmp.Less(a.key, b.key)
}

// OrderedMap is a mapping kept in ascending key order. Setting an existing
// key overwrites its value. The zero value is an empty map ready to use.
type OrderedMap[K cmp.Ordered, V any] struct {
	t *btree.BTreeG[entry[K, V]]
}

func NewOrderedMap[K cmp.Ordered, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{}
}

// tree builds the b-tree on first use so the zero value is an empty map.
func (m *OrderedMap[K, V]) tree() *btree.BTreeG[entry[K, V]] {
	if m.t == nil {
		m.t = btree.NewG[entry[K, V]](btreeDegree, lessEntry[K, V])
	}
	return m.t
}

func OrderedMapOf[K cmp.Ordered, V any](pairs ...Pair[K, V]) *OrderedMap[K, V] {
	m := NewOrderedMap[K, V]()
	for _, p := range pairs {
		m.Set(p.Left, p.Right)
	}
	return m
}

// Set reports whether key was not already present.
func (m *OrderedMap[K, V]) Set(key K, value V) bool {
	_, replaced := m.tree().ReplaceOrInsert(entry[K, V]{key: key, value: value})
	return !replaced
}

func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	e, ok := m.tree().Get(entry[K, V]{key: key})
	return e.value, ok
}

func (m *OrderedMap[K, V]) Delete(key K) bool {
	_, ok := m.tree().Delete(entry[K, V]{key: key})
	return ok
}

func (m *OrderedMap[K, V]) Len() int {
	return m.tree().Len()
}

// All yields the entries in ascending key order.
func (m *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.tree().Ascend(func(e entry[K, V]) bool {
			return yield(e.key, e.value)
		})
	}
}

func (m *OrderedMap[K, V]) Keys() []K {
	out := make([]K, 0, m.tree().Len())
	for k := range m.All() {
		out = append(out, k)
	}
	return out
}

func (m *OrderedMap[K, V]) Pairs() []Pair[K, V] {
	out := make([]Pair[K, V], 0, m.tree().Len())
	for k, v := range m.All() {
		out = append(out, PairOf(k, v))
	}
	return out
}
