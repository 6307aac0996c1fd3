// Package core contains the plumbing for in-flight computations: a
// computation is a receive channel delivering at most one value. It offers
// helpers to start, feed and await such channels, and the await options
// carried on the context. It does not define combinators; package mass
// builds on it.
package core
