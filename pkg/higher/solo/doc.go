// Package solo contains single-value, synchronous primitives that operate on
// higher.Result[T, E]. The functor and bifunctor witnesses for Result are
// built on them.
//
// Highlights:
// - Succeed/Fail: construct Result[T, E]
// - Switch: move from Result[In, E] to Result[Out, E]
// - Map/MapErr/DoubleMap: transform the success side, the error side, or both
// - Try: call a function (Out, error) and convert error to failure
// - Tee/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/error handlers
//
// Every derived result keeps the id and creation time of its input.
package solo
