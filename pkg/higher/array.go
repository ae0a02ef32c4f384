package higher

import (
	"errors"
	"fmt"
	"iter"
)

var ErrIncompleteArray = errors.New("array slots left uninitialized")

// Array is a fixed-length sequence. Its length is set at construction and
// never changes.
type Array[T any] struct {
	items []T
}

// NewArray copies items into a new Array of len(items).
func NewArray[T any](items []T) Array[T] {
	out := make([]T, len(items))
	copy(out, items)
	return Array[T]{items: out}
}

func ArrayOf[T any](items ...T) Array[T] {
	return NewArray(items)
}

func (a Array[T]) Len() int {
	return len(a.items)
}

// At panics when i is out of range, like indexing a Go array.
func (a Array[T]) At(i int) T {
	return a.items[i]
}

// Items returns a copy of the elements.
func (a Array[T]) Items() []T {
	out := make([]T, len(a.items))
	copy(out, a.items)
	return out
}

func (a Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.items {
			if !yield(i, v) {
				return
			}
		}
	}
}

// ArrayBuilder fills the slots of an Array of a fixed size. Each slot is
// written once, in order, and the Array is only handed out once all of them
// are.
type ArrayBuilder[T any] struct {
	slots   []T
	written int
}

func NewArrayBuilder[T any](size int) *ArrayBuilder[T] {
	return &ArrayBuilder[T]{slots: make([]T, size)}
}

// Put writes the next slot. It panics when every slot is already written.
func (b *ArrayBuilder[T]) Put(v T) {
	if b.written >= len(b.slots) {
		panic(fmt.Errorf("array of %d slots: write past the end", len(b.slots)))
	}
	b.slots[b.written] = v
	b.written++
}

// Finish returns the Array, or ErrIncompleteArray when fewer than size slots
// were written.
func (b *ArrayBuilder[T]) Finish() (Array[T], error) {
	if b.written != len(b.slots) {
		return Array[T]{}, fmt.Errorf("%w: %d of %d written", ErrIncompleteArray, b.written, len(b.slots))
	}
	out := Array[T]{items: b.slots}
	b.slots = nil
	return out, nil
}

// MustFinish is Finish that panics on an incomplete array.
func (b *ArrayBuilder[T]) MustFinish() Array[T] {
	out, err := b.Finish()
	if err != nil {
		panic(err)
	}
	return out
}
