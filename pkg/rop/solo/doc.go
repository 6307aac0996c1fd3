// Package solo contains single-value, synchronous primitives over
// Result[T], including the bridge between Result and Option.
//
// Highlights:
// - Succeed/Fail/Cancel: construct Result[T]
// - Switch/Map/Try: move from Result[In] to Result[Out]
// - Finally: reduce any rop.WithCancel value to a concrete value
// - ToOption: drop the error of a failed result
// - Collapse: turn Result[Option[T]] into Result[T]
// - MapSwitch/ThenSwitch: dispatch Result[Option[T]] on presence
//
// Failures short-circuit every combinator: branches are never invoked and
// the error, cancel flag and id of the failure are carried over unchanged.
package solo
