// Package resource defines the identity of catalog content and the compact address grammar used to
// refer to it:
//
//	[version@][component:[module:]][family$]relative
//
// An address is always read against a Context (the identity of the referring content) so that
// partially-qualified addresses resolve to the same component, version, and module.
package resource
