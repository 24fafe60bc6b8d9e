// Package automarker contains fixtures for the -auto-marker flag.
package automarker

import "example.com/caps"

//ifacemark:marker
type Shared interface { // want Shared:"marker"
	caps.Capability
}

//ifacemark:marker
type NotQualified interface { // want NotQualified:"marker"
	caps.Sendable // want `NotQualified is not a marker interface: embeds non-marker interface caps\.Sendable`
}

//ifacemark:mark caps.Capability
type Buffer struct { // want `type Buffer is missing marker assertions: caps\.Capability`
	data []byte
}
