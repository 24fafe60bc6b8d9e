// Package caps is a stand-in for a third-party capability library.
package caps

// Capability is configured as auto-qualified through -auto-marker in tests.
type Capability interface{}

// Sendable is deliberately left unconfigured.
type Sendable interface{}
