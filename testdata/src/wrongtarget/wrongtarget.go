// Package wrongtarget contains fixtures for directives applied to the wrong
// declaration kind.
package wrongtarget

//ifacemark:marker
type Tag interface{} // want Tag:"marker"

//ifacemark:mark Tag // want `ifacemark:mark cannot be applied to interface type Marked`
type Marked interface{}

//ifacemark:marker // want `ifacemark:marker can only be applied to an interface type, Point is not one`
type Point struct {
	X, Y int
}

//ifacemark:mark Tag // want `ifacemark:mark directive must be attached to a type declaration`
func doWork() {}

//ifacemark:mark NoSuchInterface // want `cannot resolve interface NoSuchInterface`
type Missing struct{}

//ifacemark:mark Point // want `Point is not an interface type`
type NotIface struct{}
