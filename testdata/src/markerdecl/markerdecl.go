// Package markerdecl contains fixtures for interfaces that satisfy the
// marker contract.
package markerdecl

//ifacemark:marker
type Tag interface{} // want Tag:"marker"

//ifacemark:marker
type Keyed interface { // want Keyed:"marker"
	comparable
}

//ifacemark:marker
type Anything interface { // want Anything:"marker"
	any
}

// Composite embeds only declared markers and auto-qualified interfaces.
//ifacemark:marker
type Composite interface { // want Composite:"marker"
	Tag
	Keyed
}

// Declaration order within the package does not matter.
//ifacemark:marker
type UsesLater interface { // want UsesLater:"marker"
	Later
}

//ifacemark:marker
type Later interface{} // want Later:"marker"
