package bifunctor

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/ib-77/higher/pkg/higher"
	"github.com/ib-77/higher/pkg/higher/solo"
)

type result[A, B, C, D any] struct{}

func (result[A, B, C, D]) Bimap(fab higher.Result[A, B], left func(A) C, right func(B) D) higher.Result[C, D] {
	return solo.DoubleMap(fab, left, right)
}

// Result treats the success payload as the first parameter and the error
// payload as the second.
func Result[A, B, C, D any]() Bifunctor[higher.Result[A, B], higher.Result[C, D], A, B, C, D] {
	return result[A, B, C, D]{}
}

type hashMap[A comparable, B any, C comparable, D any] struct{}

func (hashMap[A, B, C, D]) Bimap(fab map[A]B, left func(A) C, right func(B) D) map[C]D {
	if fab == nil {
		return nil
	}
	out := make(map[C]D, len(fab))
	for _, e := range stableEntries(fab) {
		out[left(e.key)] = right(e.value)
	}
	return out
}

// Map maps the keys and values of a Go map.
func Map[A comparable, B any, C comparable, D any]() Bifunctor[map[A]B, map[C]D, A, B, C, D] {
	return hashMap[A, B, C, D]{}
}

type orderedMap[A cmp.Ordered, B any, C cmp.Ordered, D any] struct{}

func (orderedMap[A, B, C, D]) Bimap(fab *higher.OrderedMap[A, B], left func(A) C, right func(B) D) *higher.OrderedMap[C, D] {
	if fab == nil {
		return nil
	}
	out := higher.NewOrderedMap[C, D]()
	for k, v := range fab.All() {
		out.Set(left(k), right(v))
	}
	return out
}

func OrderedMap[A cmp.Ordered, B any, C cmp.Ordered, D any]() Bifunctor[*higher.OrderedMap[A, B], *higher.OrderedMap[C, D], A, B, C, D] {
	return orderedMap[A, B, C, D]{}
}

type hashedEntry[K comparable, V any] struct {
	key       K
	value     V
	keyRepr   string
	valueRepr string
	sum       uint64
}

// stableEntries orders the entries of m by the hash of their key's rendering,
// then by the rendering itself, then by the value's rendering. The order
// carries no meaning but is the same for equal inputs. Keys that still tie
// (several NaN keys holding equal values) are indistinguishable in the output.
func stableEntries[K comparable, V any](m map[K]V) []hashedEntry[K, V] {
	entries := make([]hashedEntry[K, V], 0, len(m))
	for k, v := range m {
		repr := render(k)
		entries = append(entries, hashedEntry[K, V]{
			key:       k,
			value:     v,
			keyRepr:   repr,
			valueRepr: render(v),
			sum:       xxhash.Sum64String(repr),
		})
	}
	slices.SortStableFunc(entries, func(a, b hashedEntry[K, V]) int {
		if c := cmp.Compare(a.sum, b.sum); c != 0 {
			return c
		}
		if c := cmp.Compare(a.keyRepr, b.keyRepr); c != 0 {
			return c
		}
		return cmp.Compare(a.valueRepr, b.valueRepr)
	})
	return entries
}

// render prints v with its dynamic type, and with its address when v is a
// reference, since %#v prints a pointer to a struct by content.
func render(v any) string {
	repr := fmt.Sprintf("%T %#v", v, v)
	switch reflect.ValueOf(v).Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Chan, reflect.Func, reflect.Map, reflect.Slice:
		repr += fmt.Sprintf(" %p", v)
	}
	return repr
}
