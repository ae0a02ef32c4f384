package pure

import (
	"cmp"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/ib-77/higher/pkg/higher"
)

// Pure builds a container FA holding exactly a.
type Pure[A, FA any] interface {
	Pure(a A) FA
}

func Of[A, FA any](p Pure[A, FA], a A) FA {
	return p.Pure(a)
}

type option[A any] struct{}

func (option[A]) Pure(a A) higher.Option[A] { return higher.Some(a) }

func Option[A any]() Pure[A, higher.Option[A]] { return option[A]{} }

type result[A, E any] struct{}

func (result[A, E]) Pure(a A) higher.Result[A, E] { return higher.Success[A, E](a) }

// Result lifts into the success variant.
func Result[A, E any]() Pure[A, higher.Result[A, E]] { return result[A, E]{} }

type slice[A any] struct{}

func (slice[A]) Pure(a A) []A { return []A{a} }

func Slice[A any]() Pure[A, []A] { return slice[A]{} }

type deque[A any] struct{}

func (deque[A]) Pure(a A) *higher.Deque[A] { return higher.DequeOf(a) }

func Deque[A any]() Pure[A, *higher.Deque[A]] { return deque[A]{} }

type list[A any] struct{}

func (list[A]) Pure(a A) *higher.List[A] { return higher.ListOf(a) }

func List[A any]() Pure[A, *higher.List[A]] { return list[A]{} }

type priorityQueue[A cmp.Ordered] struct{}

func (priorityQueue[A]) Pure(a A) *higher.PriorityQueue[A] { return higher.PriorityQueueOf(a) }

func PriorityQueue[A cmp.Ordered]() Pure[A, *higher.PriorityQueue[A]] { return priorityQueue[A]{} }

type hashSet[A comparable] struct{}

func (hashSet[A]) Pure(a A) mapset.Set[A] { return higher.NewHashSet(a) }

func HashSet[A comparable]() Pure[A, mapset.Set[A]] { return hashSet[A]{} }

type orderedSet[A cmp.Ordered] struct{}

func (orderedSet[A]) Pure(a A) *higher.OrderedSet[A] { return higher.OrderedSetOf(a) }

func OrderedSet[A cmp.Ordered]() Pure[A, *higher.OrderedSet[A]] { return orderedSet[A]{} }

type hashMap[K comparable, V any] struct{}

func (hashMap[K, V]) Pure(p higher.Pair[K, V]) map[K]V { return map[K]V{p.Left: p.Right} }

// Map lifts a key/value pair into a one-entry Go map.
func Map[K comparable, V any]() Pure[higher.Pair[K, V], map[K]V] { return hashMap[K, V]{} }

type orderedMap[K cmp.Ordered, V any] struct{}

func (orderedMap[K, V]) Pure(p higher.Pair[K, V]) *higher.OrderedMap[K, V] {
	return higher.OrderedMapOf(p)
}

func OrderedMap[K cmp.Ordered, V any]() Pure[higher.Pair[K, V], *higher.OrderedMap[K, V]] {
	return orderedMap[K, V]{}
}
