package functor

import (
	"github.com/ib-77/higher/pkg/higher"
	"github.com/ib-77/higher/pkg/higher/solo"
)

type option[A, B any] struct{}

func (option[A, B]) Fmap(fa higher.Option[A], f func(A) B) higher.Option[B] {
	if v, ok := fa.Get(); ok {
		return higher.Some(f(v))
	}
	return higher.None[B]()
}

func Option[A, B any]() Functor[higher.Option[A], higher.Option[B], A, B] {
	return option[A, B]{}
}

type result[A, B, E any] struct{}

func (result[A, B, E]) Fmap(fa higher.Result[A, E], f func(A) B) higher.Result[B, E] {
	return solo.Map(fa, f)
}

// Result maps the success payload only; the error type E is left as is.
func Result[A, B, E any]() Functor[higher.Result[A, E], higher.Result[B, E], A, B] {
	return result[A, B, E]{}
}

type array[A, B any] struct{}

func (array[A, B]) Fmap(fa higher.Array[A], f func(A) B) higher.Array[B] {
	b := higher.NewArrayBuilder[B](fa.Len())
	for _, v := range fa.All() {
		b.Put(f(v))
	}
	return b.MustFinish()
}

// Array keeps the length of the source array.
func Array[A, B any]() Functor[higher.Array[A], higher.Array[B], A, B] {
	return array[A, B]{}
}

type slice[A, B any] struct{}

func (slice[A, B]) Fmap(fa []A, f func(A) B) []B {
	if fa == nil {
		return nil
	}
	out := make([]B, len(fa))
	for i, v := range fa {
		out[i] = f(v)
	}
	return out
}

func Slice[A, B any]() Functor[[]A, []B, A, B] {
	return slice[A, B]{}
}

type deque[A, B any] struct{}

func (deque[A, B]) Fmap(fa *higher.Deque[A], f func(A) B) *higher.Deque[B] {
	if fa == nil {
		return nil
	}
	out := higher.NewDeque[B]()
	for v := range fa.All() {
		out.PushBack(f(v))
	}
	return out
}

func Deque[A, B any]() Functor[*higher.Deque[A], *higher.Deque[B], A, B] {
	return deque[A, B]{}
}

type list[A, B any] struct{}

func (list[A, B]) Fmap(fa *higher.List[A], f func(A) B) *higher.List[B] {
	if fa == nil {
		return nil
	}
	out := higher.NewList[B]()
	for v := range fa.All() {
		out.PushBack(f(v))
	}
	return out
}

func List[A, B any]() Functor[*higher.List[A], *higher.List[B], A, B] {
	return list[A, B]{}
}
