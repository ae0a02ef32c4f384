package bifunctor

import (
	"github.com/ib-77/higher/pkg/higher"
)

// Bifunctor maps FAB, holding A and B, to FCD, holding C and D.
type Bifunctor[FAB, FCD, A, B, C, D any] interface {
	Bimap(fab FAB, left func(A) C, right func(B) D) FCD
}

func Bimap[FAB, FCD, A, B, C, D any](bf Bifunctor[FAB, FCD, A, B, C, D],
	fab FAB, left func(A) C, right func(B) D) FCD {
	return bf.Bimap(fab, left, right)
}

func Lmap[FAB, FCB, A, B, C any](bf Bifunctor[FAB, FCB, A, B, C, B], fab FAB, f func(A) C) FCB {
	return bf.Bimap(fab, f, higher.Identity[B])
}

func Rmap[FAB, FAC, A, B, C any](bf Bifunctor[FAB, FAC, A, B, A, C], fab FAB, f func(B) C) FAC {
	return bf.Bimap(fab, higher.Identity[A], f)
}
