// Package markgeneric contains fixtures for the marker assertion generator
// on generic types: the generated assertion must re-declare the target's
// type parameter list verbatim.
package markgeneric

import "fmt"

//ifacemark:marker
type Array interface{} // want Array:"marker"

//ifacemark:marker
type Uniform interface{} // want Uniform:"marker"

//ifacemark:mark Array
type Single[T any] struct { // want `type Single is missing marker assertions: Array`
	value T
}

//ifacemark:mark Array, Uniform
type Many[T, B, C any] struct { // want `type Many is missing marker assertions: Array, Uniform`
	t T
	b B
	c C
}

//ifacemark:mark Array
type Bounded[T fmt.Stringer] struct { // want `type Bounded is missing marker assertions: Array`
	value T
}

//ifacemark:mark Array
type MixedBounds[T fmt.Stringer, U comparable] struct { // want `type MixedBounds is missing marker assertions: Array`
	t T
	u U
}

// Done already carries its assertion in generic form.
//ifacemark:mark Array
type Done[T any] struct {
	value T
}

func _[T any](v Done[T]) { var _ Array = v }
