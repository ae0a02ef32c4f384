// Package higher holds the container value types that the functor, bifunctor
// and pure packages transform: Option, Result, Array, Deque, List,
// PriorityQueue, OrderedSet and OrderedMap, plus the Unit and Pair helpers.
// Plain slices and maps are used directly as the sequence and hash mapping
// shapes.
//
// Every value here is treated as consumed by the transformation it is passed
// to: a mapped container never shares element storage with its source.
package higher
