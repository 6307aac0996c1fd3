// Package mass lifts the option and solo conversions over in-flight
// computations. Each function awaits the single value of its input channel
// and then applies the synchronous rule; error producers and branches only
// run after that value has arrived.
package mass
