// Package bifunctor maps containers with two type parameters, such as a
// Result's success and error payloads or a map's keys and values.
//
// As in package functor, a Bifunctor is a witness value naming the source
// and target container types. Lmap and Rmap are derived from Bimap by
// passing the identity function on the untouched side.
//
// Key operations:
// - Bimap: transform both parameters
// - Lmap: transform the first parameter only
// - Rmap: transform the second parameter only
//
// Witnesses: Result, Map (Go maps) and OrderedMap. For both mapping
// witnesses colliding output keys are resolved last-written-wins, walking the
// source in a fixed order: ascending key order for OrderedMap, and a
// hash-derived order that is stable across runs for Map.
package bifunctor
