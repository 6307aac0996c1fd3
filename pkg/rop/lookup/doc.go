// Package lookup reads keyed containers, casts untyped values and parses
// text without panicking or returning sentinel values. Every Try function
// returns an option.Option; the matching function without the prefix
// returns an rop.Result whose failure explains why nothing was found.
package lookup
