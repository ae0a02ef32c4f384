package higher

import (
	"cmp"
	"iter"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/btree"
)

// btreeDegree is the node degree of the b-trees behind the ordered containers.
const btreeDegree = 16

// NewHashSet returns an unordered set of comparable values.
func NewHashSet[T comparable](items ...T) mapset.Set[T] {
	return mapset.NewThreadUnsafeSet[T](items...)
}

// OrderedSet keeps its values in ascending order. The zero value is an
// empty set ready to use.
type OrderedSet[T cmp.Ordered] struct {
	t *btree.BTreeG[T]
}

func NewOrderedSet[T cmp.Ordered]() *OrderedSet[T] {
	return &OrderedSet[T]{}
}

// tree builds the b-tree on first use so the zero value is an empty set.
func (s *OrderedSet[T]) tree() *btree.BTreeG[T] {
	if s.t == nil {
		s.t = btree.NewG[T](btreeDegree, cmp.Less[T])
	}
	return s.t
}

func OrderedSetOf[T cmp.Ordered](items ...T) *OrderedSet[T] {
	s := NewOrderedSet[T]()
	for _, v := range items {
		s.Add(v)
	}
	return s
}

// Add reports whether v was not already present.
func (s *OrderedSet[T]) Add(v T) bool {
	_, replaced := s.tree().ReplaceOrInsert(v)
	return !replaced
}

func (s *OrderedSet[T]) Contains(v T) bool {
	return s.tree().Has(v)
}

func (s *OrderedSet[T]) Len() int {
	return s.tree().Len()
}

// All yields the values in ascending order.
func (s *OrderedSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.tree().Ascend(func(v T) bool {
			return yield(v)
		})
	}
}

func (s *OrderedSet[T]) Slice() []T {
	out := make([]T, 0, s.tree().Len())
	for v := range s.All() {
		out = append(out, v)
	}
	return out
}
