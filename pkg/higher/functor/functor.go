package functor

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/ib-77/higher/pkg/higher"
)

var ErrUnzipMismatch = errors.New("unzip: passes visited a different number of elements")

// Functor maps a container FA holding A into the same-shaped container FB
// holding B. Fmap must call f exactly once per element, in an order that is
// the same every time it is called on the same value.
type Functor[FA, FB, A, B any] interface {
	Fmap(fa FA, f func(A) B) FB
}

func Fmap[FA, FB, A, B any](fn Functor[FA, FB, A, B], fa FA, f func(A) B) FB {
	return fn.Fmap(fa, f)
}

// Fconst replaces every element of fa with b.
func Fconst[FA, FB, A, B any](fn Functor[FA, FB, A, B], fa FA, b B) FB {
	return fn.Fmap(fa, higher.Const[A](b))
}

// Void keeps only the shape of fa.
func Void[FA, FU, A any](fn Functor[FA, FU, A, higher.Unit], fa FA) FU {
	return Fconst(fn, fa, higher.Unit{})
}

// Drain returns the elements of fa in iteration order. The sequence is
// one-shot: fa is walked on the first range, and any later range yields
// nothing, including after an early break.
func Drain[FA, FU, A any](fn Functor[FA, FU, A, higher.Unit], fa FA) iter.Seq[A] {
	drained := false
	return func(yield func(A) bool) {
		if drained {
			return
		}
		drained = true

		var store []A
		fn.Fmap(fa, func(a A) higher.Unit {
			store = append(store, a)
			return higher.Unit{}
		})
		for _, a := range store {
			if !yield(a) {
				return
			}
		}
	}
}

func Collect[FA, FU, A any](fn Functor[FA, FU, A, higher.Unit], fa FA) []A {
	return slices.Collect(Drain(fn, fa))
}

// Unzip splits every element of fa with split and returns the left and the
// right halves in two containers shaped like fa. split runs once per element.
func Unzip[FA, FL, FR, A, L, R any](left Functor[FA, FL, A, L], right Functor[FA, FR, A, R],
	fa FA, split func(A) (L, R)) (FL, FR) {

	var rights []R
	fl := left.Fmap(fa, func(a A) L {
		l, r := split(a)
		rights = append(rights, r)
		return l
	})

	next := 0
	fr := right.Fmap(fa, func(A) R {
		if next >= len(rights) {
			panic(fmt.Errorf("%w: more than %d", ErrUnzipMismatch, len(rights)))
		}
		r := rights[next]
		next++
		return r
	})
	if next != len(rights) {
		panic(fmt.Errorf("%w: %d of %d", ErrUnzipMismatch, next, len(rights)))
	}

	return fl, fr
}
