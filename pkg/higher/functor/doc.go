// Package functor maps the element type of a container while keeping its
// shape.
//
// Go cannot abstract over a type constructor, so a Functor is a witness
// value naming both the source and the target container type. The
// constructors in this package (Option, Result, Array, Slice, Deque, List)
// return the Functor interface itself, which lets the derived operations
// infer every type argument from the witness:
//
//	doubled := functor.Fmap(functor.Slice[int, int](), []int{1, 2, 3}, func(x int) int { return x * 2 })
//	shape := functor.Void(functor.Option[string, higher.Unit](), higher.Some("x"))
//
// Key operations:
// - Fmap: apply f to every element once, in the container's natural order
// - Fconst/Void: replace every element with one value, or with higher.Unit
// - Drain/Collect: hand the elements out as a one-shot iter.Seq or a slice
// - Unzip: split a container of pairs into two containers of the same shape
package functor
