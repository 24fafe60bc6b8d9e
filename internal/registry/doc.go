// Package registry classifies interface references for marker analysis.
//
// # Overview
//
// The registry answers one question: is a referenced interface
// marker-qualified? It is the analyzer's only piece of cross-declaration
// knowledge, and it is queried, never recomputed — the validator does not
// chase a transitive closure of embeds.
//
// # Classification
//
// Every reference classifies as exactly one of:
//
//	Ordinary    an interface with no marker qualification
//	UserMarker  declared as a marker with //ifacemark:marker
//	Auto        marker-qualified by definition (any, comparable, -auto-marker)
//	Unresolved  does not name an interface type at all
//
// Unresolved is a fatal input error for the caller, not a lenient
// fallthrough to Ordinary.
//
// # Sources
//
// UserMarker knowledge comes from three places, checked in order:
//
//  1. Interfaces annotated //ifacemark:marker in the current pass,
//     collected before any validation runs so declaration order within a
//     package does not matter.
//  2. A [Fact] exported by the pass over a dependency package. This is how
//     a marker declared in one package qualifies as an embed in another.
//  3. Nothing else. The registry never marks an interface on its own.
//
// Auto knowledge is the universe interfaces any and comparable plus the
// -auto-marker flag:
//
//	-auto-marker=example.com/caps.Capability,example.com/caps.Tag
//
// # Resolution
//
// Embedded elements are resolved through the pass's types.Info. Directive
// payload names are comment text, invisible to the type checker, so
// [Registry.ResolveName] resolves them by hand: package scope for bare
// names, the file's imports for qualified names, then the universe scope.
package registry
