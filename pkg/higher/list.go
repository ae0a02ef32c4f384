package higher

import (
	"container/list"
	"iter"
)

// List is a doubly linked list holding values of T.
type List[T any] struct {
	l list.List
}

func NewList[T any]() *List[T] {
	return &List[T]{}
}

func ListOf[T any](items ...T) *List[T] {
	l := NewList[T]()
	for _, v := range items {
		l.PushBack(v)
	}
	return l
}

func (l *List[T]) PushBack(v T) {
	l.l.PushBack(v)
}

func (l *List[T]) PushFront(v T) {
	l.l.PushFront(v)
}

func (l *List[T]) Front() (T, bool) {
	return value[T](l.l.Front())
}

func (l *List[T]) Back() (T, bool) {
	return value[T](l.l.Back())
}

func (l *List[T]) Len() int {
	return l.l.Len()
}

// All yields the elements front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := l.l.Front(); e != nil; e = e.Next() {
			if !yield(e.Value.(T)) {
				return
			}
		}
	}
}

func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.l.Len())
	for v := range l.All() {
		out = append(out, v)
	}
	return out
}

func value[T any](e *list.Element) (T, bool) {
	if e == nil {
		var zero T
		return zero, false
	}
	return e.Value.(T), true
}
