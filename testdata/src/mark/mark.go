// Package mark contains fixtures for the marker assertion generator on
// non-generic types.
package mark

//ifacemark:marker
type Array interface{} // want Array:"marker"

//ifacemark:marker
type Uniform interface{} // want Uniform:"marker"

//ifacemark:marker
type V interface{} // want V:"marker"

//ifacemark:mark Array, Uniform, V
type EmptyStruct struct{} // want `type EmptyStruct is missing marker assertions: Array, Uniform, V`

//ifacemark:mark Array, Uniform, V
type EmptyEnum int // want `type EmptyEnum is missing marker assertions: Array, Uniform, V`

// Asserted already carries its assertion; nothing to report.
//ifacemark:mark Array
type Asserted struct{}

var _ Array = (*Asserted)(nil)

// Partial still misses Uniform.
//ifacemark:mark Array, Uniform
type Partial struct{} // want `type Partial is missing marker assertions: Uniform`

var _ Array = (*Partial)(nil)

// A trailing comma is tolerated; duplicates are preserved as requested.
//ifacemark:mark Array, Array,
type Doubled struct{} // want `type Doubled is missing marker assertions: Array, Array`
