// Package pure lifts a single value into the smallest instance of a
// container: Some(x), a success, a one-element sequence or set, or a
// one-entry map.
//
//	xs := pure.Of(pure.Slice[int](), 31337) // []int{31337}
//	m := pure.Of(pure.Map[string, int](), higher.PairOf("a", 1))
package pure
