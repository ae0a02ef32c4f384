package higher

import (
	"iter"

	"github.com/gammazero/deque"
)

// Deque is a double-ended queue backed by a ring buffer.
type Deque[T any] struct {
	q deque.Deque[T]
}

func NewDeque[T any]() *Deque[T] {
	return &Deque[T]{}
}

func DequeOf[T any](items ...T) *Deque[T] {
	d := NewDeque[T]()
	for _, v := range items {
		d.q.PushBack(v)
	}
	return d
}

func (d *Deque[T]) PushBack(v T) {
	d.q.PushBack(v)
}

func (d *Deque[T]) PushFront(v T) {
	d.q.PushFront(v)
}

// PopFront removes the front element. It panics on an empty deque.
func (d *Deque[T]) PopFront() T {
	return d.q.PopFront()
}

// PopBack removes the back element. It panics on an empty deque.
func (d *Deque[T]) PopBack() T {
	return d.q.PopBack()
}

func (d *Deque[T]) Front() T {
	return d.q.Front()
}

func (d *Deque[T]) Back() T {
	return d.q.Back()
}

func (d *Deque[T]) At(i int) T {
	return d.q.At(i)
}

func (d *Deque[T]) Len() int {
	return d.q.Len()
}

// All yields the elements front to back.
func (d *Deque[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < d.q.Len(); i++ {
			if !yield(d.q.At(i)) {
				return
			}
		}
	}
}

// Slice copies the elements front to back.
func (d *Deque[T]) Slice() []T {
	out := make([]T, 0, d.q.Len())
	for v := range d.All() {
		out = append(out, v)
	}
	return out
}
