package higher

import (
	"cmp"
	"container/heap"
)

// PriorityQueue hands out its greatest element first.
type PriorityQueue[T cmp.Ordered] struct {
	h maxHeap[T]
}

func NewPriorityQueue[T cmp.Ordered]() *PriorityQueue[T] {
	return &PriorityQueue[T]{}
}

func PriorityQueueOf[T cmp.Ordered](items ...T) *PriorityQueue[T] {
	pq := &PriorityQueue[T]{h: append(maxHeap[T](nil), items...)}
	heap.Init(&pq.h)
	return pq
}

func (pq *PriorityQueue[T]) Push(v T) {
	heap.Push(&pq.h, v)
}

// Pop removes and returns the greatest element.
func (pq *PriorityQueue[T]) Pop() (T, bool) {
	if len(pq.h) == 0 {
		var zero T
		return zero, false
	}
	return heap.Pop(&pq.h).(T), true
}

func (pq *PriorityQueue[T]) Peek() (T, bool) {
	if len(pq.h) == 0 {
		var zero T
		return zero, false
	}
	return pq.h[0], true
}

func (pq *PriorityQueue[T]) Len() int {
	return len(pq.h)
}

type maxHeap[T cmp.Ordered] []T

func (h maxHeap[T]) Len() int           { return len(h) }
func (h maxHeap[T]) Less(i, j int) bool { return cmp.Less(h[j], h[i]) }
func (h maxHeap[T]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *maxHeap[T]) Push(x any) {
	*h = append(*h, x.(T))
}

func (h *maxHeap[T]) Pop() any {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}
