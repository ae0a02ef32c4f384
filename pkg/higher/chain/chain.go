package chain

import (
	"github.com/ib-77/higher/pkg/higher"
	"github.com/ib-77/higher/pkg/higher/bifunctor"
	"github.com/ib-77/higher/pkg/higher/functor"
	"github.com/ib-77/higher/pkg/higher/solo"
)

type Chain[T, E any] struct {
	res higher.Result[T, E]
}

func Start[T, E any](r higher.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: r}
}

func FromValue[T, E any](v T) Chain[T, E] {
	return Start(higher.Success[T, E](v))
}

func (c Chain[T, E]) Result() higher.Result[T, E] {
	return c.res
}

// Then composes functions that already return a Result.
func (c Chain[T, E]) Then(onSuccess func(t T) higher.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: solo.Switch(c.res, onSuccess)}
}

// Map transforms the successful value.
func (c Chain[T, E]) Map(onSuccess func(t T) T) Chain[T, E] {
	return Chain[T, E]{res: functor.Fmap(functor.Result[T, T, E](), c.res, onSuccess)}
}

// MapErr transforms the error of a failed chain.
func (c Chain[T, E]) MapErr(onFailure func(err E) E) Chain[T, E] {
	return Chain[T, E]{res: bifunctor.Rmap(bifunctor.Result[T, E, T, E](), c.res, onFailure)}
}

// Ensure triggers side effects for success/failure without changing the result.
func (c Chain[T, E]) Ensure(onSuccess func(T), onFailure func(E)) Chain[T, E] {
	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.res.Err())
		}
		return c
	}
	if onSuccess != nil {
		onSuccess(c.res.Value())
	}
	return c
}

// Or returns the first successful chain, or the first failure when none
// succeeded.
func (c Chain[T, E]) Or(alternatives ...Chain[T, E]) Chain[T, E] {
	if c.res.IsSuccess() {
		return c
	}
	for _, alt := range alternatives {
		if alt.res.IsSuccess() {
			return alt
		}
	}
	return c
}

func (c Chain[T, E]) While(onSuccess func(t T) higher.Result[T, E], while func(t T) bool) Chain[T, E] {
	for c.res.IsSuccess() && while(c.res.Value()) {
		c = c.Then(onSuccess)
	}
	return c
}

// Finally collapses the chain to a final value, delegating to solo.Finally.
func (c Chain[T, E]) Finally(onSuccess func(T) T, onFailure func(E) T) T {
	return solo.Finally(c.res, onSuccess, onFailure)
}
