// Package seq lifts Option semantics over iter.Seq.
//
// Choose, Map and MapSwitch are lazy and keep the order of their source.
// Pick and the Try functions consume their source only as far as needed.
// TrySingle is the one function that can fail: more than one match is an
// error, not an absence.
package seq
