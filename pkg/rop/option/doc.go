// Package option provides Option[T], a value that is either present or
// absent, and the combinators that move it onto the railway of Result[T].
//
// Highlights:
// - Some/None/From/FromPtr/FromOk: construct Option[T]
// - Map/Bind: transform a present value, absence propagates untouched
// - Switch/SwitchIf/Do: exhaustive case analysis
// - OrElse/GetValueOrDefault: lazy fallbacks
// - ToResult: convert absence into a failure
//
// The zero value of Option[T] is None. Functions passed as error producers,
// alternatives or branches are only called when their branch is taken.
package option
