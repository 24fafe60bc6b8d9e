// Package markerbase declares markers consumed by the markerdep fixtures.
package markerbase

//ifacemark:marker
type Base interface{}

//ifacemark:marker
type Extra interface{}
