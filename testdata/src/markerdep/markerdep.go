// Package markerdep contains fixtures exercising markers imported from a
// dependency package via exported facts.
package markerdep

import "markerbase"

//ifacemark:marker
type Derived interface { // want Derived:"marker"
	markerbase.Base
}

//ifacemark:mark markerbase.Base, markerbase.Extra
type Node struct { // want `type Node is missing marker assertions: markerbase\.Base, markerbase\.Extra`
	next *Node
}
