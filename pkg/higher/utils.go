package higher

// Unit is the content-free element used when only a container's shape matters.
type Unit = struct{}

type Pair[L, R any] struct {
	Left  L
	Right R
}

func PairOf[L, R any](l L, r R) Pair[L, R] {
	return Pair[L, R]{Left: l, Right: r}
}

// Split is the identity decomposition of a Pair.
func Split[L, R any](p Pair[L, R]) (L, R) {
	return p.Left, p.Right
}

func Identity[T any](v T) T {
	return v
}

// Compose returns g after f.
func Compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Const returns a function ignoring its argument and always returning v.
func Const[A, B any](v B) func(A) B {
	return func(A) B {
		return v
	}
}
