// Package parseerrors contains fixtures for malformed directive payloads.
// A malformed directive fails as a whole; the annotated type is untouched.
package parseerrors

//ifacemark:marker
type Tag interface{} // want Tag:"marker"

//ifacemark:mark // want `ifacemark:mark requires at least one interface name`
type NoNames struct{}

//ifacemark:mark Tag, not a path // want `invalid interface name "not a path" in ifacemark:mark directive`
type BadName struct{}

//ifacemark:mark Tag,,Tag // want `invalid interface name "" in ifacemark:mark directive`
type EmptyToken struct{}

//ifacemark:marker with arguments // want `ifacemark:marker does not take arguments`
type Validated interface{}
