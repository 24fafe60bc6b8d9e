// Package markerinvalid contains fixtures for interfaces that violate the
// marker contract.
package markerinvalid

import "fmt"

//ifacemark:marker
type Tag interface{} // want Tag:"marker"

//ifacemark:marker
type HasMethod interface { // want HasMethod:"marker"
	Size() int // want `HasMethod is not a marker interface: declares method Size`
}

//ifacemark:marker
type EmbedsOrdinary interface { // want EmbedsOrdinary:"marker"
	fmt.Stringer // want `EmbedsOrdinary is not a marker interface: embeds non-marker interface fmt\.Stringer`
}

// The method check runs before the embed check.
//ifacemark:marker
type MethodBeforeEmbed interface { // want MethodBeforeEmbed:"marker"
	fmt.Stringer
	Close() error // want `MethodBeforeEmbed is not a marker interface: declares method Close`
}

// Only the first method in declaration order is reported.
//ifacemark:marker
type TwoMethods interface { // want TwoMethods:"marker"
	First() // want `TwoMethods is not a marker interface: declares method First`
	Second()
}

// Only the first ordinary embed in declaration order is reported.
//ifacemark:marker
type FirstOrdinaryWins interface { // want FirstOrdinaryWins:"marker"
	Tag
	fmt.Stringer // want `FirstOrdinaryWins is not a marker interface: embeds non-marker interface fmt\.Stringer`
	error
}
