package solo

import (
	"github.com/ib-77/higher/pkg/higher"
)

func Succeed[T, E any](input T) higher.Result[T, E] {
	return higher.Success[T, E](input)
}

func Fail[T, E any](err E) higher.Result[T, E] {
	return higher.Fail[T, E](err)
}

func Switch[In, Out, E any](input higher.Result[In, E],
	onSuccess func(r In) higher.Result[Out, E]) higher.Result[Out, E] {

	if input.IsSuccess() {
		return onSuccess(input.Value())
	}
	return higher.FailFrom[Out, E](input, input.Err())
}

// Map transforms the success payload; a failure passes through untouched.
func Map[In, Out, E any](input higher.Result[In, E],
	onSuccess func(r In) Out) higher.Result[Out, E] {

	if input.IsSuccess() {
		return higher.SuccessFrom[Out, E](input, onSuccess(input.Value()))
	}
	return higher.FailFrom[Out, E](input, input.Err())
}

// MapErr transforms the error payload; a success passes through untouched.
func MapErr[T, In, Out any](input higher.Result[T, In],
	onError func(err In) Out) higher.Result[T, Out] {

	if input.IsSuccess() {
		return higher.SuccessFrom[T, Out](input, input.Value())
	}
	return higher.FailFrom[T, Out](input, onError(input.Err()))
}

// DoubleMap runs exactly one of onSuccess and onError, the one matching the
// variant input holds.
func DoubleMap[In, Out, InE, OutE any](input higher.Result[In, InE],
	onSuccess func(r In) Out,
	onError func(err InE) OutE) higher.Result[Out, OutE] {

	if input.IsSuccess() {
		return higher.SuccessFrom[Out, OutE](input, onSuccess(input.Value()))
	}
	return higher.FailFrom[Out, OutE](input, onError(input.Err()))
}

func Try[In, Out any](input higher.Result[In, error],
	onTryExecute func(r In) (Out, error)) higher.Result[Out, error] {

	if input.IsSuccess() {
		out, err := onTryExecute(input.Value())
		if err != nil {
			return higher.FailFrom[Out, error](input, err)
		}
		return higher.SuccessFrom[Out, error](input, out)
	}
	return higher.FailFrom[Out, error](input, input.Err())
}

func Tee[T, E any](input higher.Result[T, E], onSuccess func(r T)) higher.Result[T, E] {
	if input.IsSuccess() {
		onSuccess(input.Value())
	}
	return input
}

func DoubleTee[T, E any](input higher.Result[T, E],
	onSuccess func(r T),
	onError func(err E)) higher.Result[T, E] {

	if input.IsSuccess() {
		onSuccess(input.Value())
	} else {
		onError(input.Err())
	}
	return input
}

func Finally[In, E, Out any](input higher.Result[In, E],
	onSuccess func(r In) Out,
	onError func(err E) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Value())
	}
	return onError(input.Err())
}
