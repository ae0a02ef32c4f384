// Package chain provides a minimal fluent Chain[T, E] over higher.Result for
// steps that keep the success and error types. Each step is one of the
// solo, functor or bifunctor operations.
//
// - Start/FromValue: create a Chain
// - Then: compose result-returning functions
// - Map/MapErr: transform the success or the error payload
// - Ensure: trigger side effects without changing the result
// - Or/While: pick the first success, repeat a step while a predicate holds
// - Finally: reduce to a concrete value via handlers
package chain
