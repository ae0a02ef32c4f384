package bifunctor_test

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/higher/pkg/higher"
	"github.com/ib-77/higher/pkg/higher/bifunctor"
)

func TestResult_BimapRunsOneSide(t *testing.T) {
	t.Parallel()

	var lefts, rights int
	left := func(x int) string { lefts++; return strconv.Itoa(x) }
	right := func(e string) int { rights++; return len(e) }
	bf := bifunctor.Result[int, string, string, int]()

	ok := bifunctor.Bimap(bf, higher.Success[int, string](7), left, right)
	assert.True(t, ok.IsSuccess())
	assert.Equal(t, "7", ok.Value())
	assert.Equal(t, 1, lefts)
	assert.Zero(t, rights)

	bad := bifunctor.Bimap(bf, higher.Fail[int, string]("boom"), left, right)
	assert.True(t, bad.IsFailure())
	assert.Equal(t, 4, bad.Err())
	assert.Equal(t, 1, lefts)
	assert.Equal(t, 1, rights)
}

func TestResult_LmapRmap(t *testing.T) {
	t.Parallel()

	show := func(x int) string { return "n" + strconv.Itoa(x) }
	upper := strings.ToUpper

	for _, r := range []higher.Result[int, string]{higher.Success[int, string](3), higher.Fail[int, string]("bad")} {
		assert.Equal(t,
			bifunctor.Bimap(bifunctor.Result[int, string, string, string](), r, show, higher.Identity[string]),
			bifunctor.Lmap(bifunctor.Result[int, string, string, string](), r, show))
		assert.Equal(t,
			bifunctor.Bimap(bifunctor.Result[int, string, int, string](), r, higher.Identity[int], upper),
			bifunctor.Rmap(bifunctor.Result[int, string, int, string](), r, upper))
	}

	failed := bifunctor.Rmap(bifunctor.Result[int, string, int, string](), higher.Fail[int, string]("bad"), upper)
	assert.Equal(t, "BAD", failed.Err())
}

func TestMap_Bimap(t *testing.T) {
	t.Parallel()

	in := map[string]int{"a": 1, "bb": 2, "ccc": 3}
	out := bifunctor.Bimap(bifunctor.Map[string, int, string, string](), in, strings.ToUpper, strconv.Itoa)
	assert.Equal(t, map[string]string{"A": "1", "BB": "2", "CCC": "3"}, out)

	keys := bifunctor.Lmap(bifunctor.Map[string, int, int, int](), in, func(k string) int { return len(k) })
	assert.Equal(t, map[int]int{1: 1, 2: 2, 3: 3}, keys)

	values := bifunctor.Rmap(bifunctor.Map[string, int, string, int](), in, func(v int) int { return v * v })
	assert.Equal(t, map[string]int{"a": 1, "bb": 4, "ccc": 9}, values)

	assert.Nil(t, bifunctor.Bimap(bifunctor.Map[string, int, string, string](), nil, strings.ToUpper, strconv.Itoa))
}

func TestMap_CollisionsAreStable(t *testing.T) {
	t.Parallel()

	in := map[int]string{}
	for i := range 64 {
		in[i] = strconv.Itoa(i)
	}
	bucket := func(k int) int { return k % 4 }

	first := bifunctor.Lmap(bifunctor.Map[int, string, int, string](), in, bucket)
	assert.Len(t, first, 4)
	for range 20 {
		assert.Equal(t, first, bifunctor.Lmap(bifunctor.Map[int, string, int, string](), in, bucket))
	}
	for k, v := range first {
		n, err := strconv.Atoi(v)
		assert.NoError(t, err)
		assert.Equal(t, k, bucket(n))
	}
}

func TestOrderedMap_Bimap(t *testing.T) {
	t.Parallel()

	in := higher.OrderedMapOf(higher.PairOf(1, "one"), higher.PairOf(2, "two"), higher.PairOf(3, "three"))
	out := bifunctor.Bimap(bifunctor.OrderedMap[int, string, int, int](), in,
		func(k int) int { return -k }, func(v string) int { return len(v) })

	assert.Equal(t, []higher.Pair[int, int]{{Left: -3, Right: 5}, {Left: -2, Right: 3}, {Left: -1, Right: 3}}, out.Pairs())
}

func TestOrderedMap_CollisionsFollowSourceOrder(t *testing.T) {
	t.Parallel()

	in := higher.OrderedMapOf(higher.PairOf("b", 2), higher.PairOf("a", 1), higher.PairOf("c", 3))
	out := bifunctor.Lmap(bifunctor.OrderedMap[string, int, int, int](), in, func(string) int { return 0 })

	v, ok := out.Get(0)
	assert.True(t, ok)
	assert.Equal(t, 3, v, "last key in source order wins")
	assert.Equal(t, 1, out.Len())

	rm := bifunctor.Rmap(bifunctor.OrderedMap[string, int, string, string](), in, strconv.Itoa)
	assert.Equal(t, []string{"a", "b", "c"}, rm.Keys())
	got, _ := rm.Get("b")
	assert.Equal(t, "2", got)
}

type node struct{ N int }

func winnerOver[K comparable](t *testing.T, in map[K]string) string {
	t.Helper()

	collapse := func(K) int { return 0 }
	first := bifunctor.Lmap(bifunctor.Map[K, string, int, string](), in, collapse)
	for range 50 {
		assert.Equal(t, first, bifunctor.Lmap(bifunctor.Map[K, string, int, string](), in, collapse))
	}
	return first[0]
}

func TestMap_CollisionsStableForLookalikeKeys(t *testing.T) {
	t.Parallel()

	t.Run("pointers to equal structs", func(t *testing.T) {
		winner := winnerOver(t, map[*node]string{{N: 1}: "a", {N: 1}: "b"})
		assert.Contains(t, []string{"a", "b"}, winner)
	})

	t.Run("nan keys", func(t *testing.T) {
		assert.Equal(t, "y", winnerOver(t, map[float64]string{math.NaN(): "x", math.NaN(): "y"}))
	})

	t.Run("same value different types", func(t *testing.T) {
		winner := winnerOver(t, map[any]string{int(1): "int", int64(1): "int64"})
		assert.Contains(t, []string{"int", "int64"}, winner)
	})
}

func TestMap_LmapRmapMatchBimap(t *testing.T) {
	t.Parallel()

	in := map[string]int{"a": 1, "bb": 2, "ccc": 3}
	length := func(k string) int { return len(k) }
	square := func(v int) int { return v * v }

	assert.Equal(t,
		bifunctor.Bimap(bifunctor.Map[string, int, int, int](), in, length, higher.Identity[int]),
		bifunctor.Lmap(bifunctor.Map[string, int, int, int](), in, length))
	assert.Equal(t,
		bifunctor.Bimap(bifunctor.Map[string, int, string, int](), in, higher.Identity[string], square),
		bifunctor.Rmap(bifunctor.Map[string, int, string, int](), in, square))
}

func TestOrderedMap_LmapRmapMatchBimap(t *testing.T) {
	t.Parallel()

	in := higher.OrderedMapOf(higher.PairOf(1, "one"), higher.PairOf(2, "two"), higher.PairOf(3, "three"))
	negate := func(k int) int { return -k }

	assert.Equal(t,
		bifunctor.Bimap(bifunctor.OrderedMap[int, string, int, string](), in, negate, higher.Identity[string]).Pairs(),
		bifunctor.Lmap(bifunctor.OrderedMap[int, string, int, string](), in, negate).Pairs())
	assert.Equal(t,
		bifunctor.Bimap(bifunctor.OrderedMap[int, string, int, string](), in, higher.Identity[int], strings.ToUpper).Pairs(),
		bifunctor.Rmap(bifunctor.OrderedMap[int, string, int, string](), in, strings.ToUpper).Pairs())
}

func TestOrderedMap_ZeroValue(t *testing.T) {
	t.Parallel()

	var m higher.OrderedMap[int, string]
	out := bifunctor.Rmap(bifunctor.OrderedMap[int, string, int, int](), &m, func(v string) int { return len(v) })
	assert.Equal(t, 0, out.Len())
	assert.Empty(t, out.Pairs())
}
