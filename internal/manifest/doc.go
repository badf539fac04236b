// Package manifest implements the addon capability document: the manifest
// data model, its wire encoding, and the matching predicate that decides
// whether an installed addon can answer a resource request.
//
// The decoder accepts two generations of the wire notation transparently:
// resource entries may be bare strings or structured objects, and catalog
// extra declarations may use the modern per-property list or the legacy
// flat name lists. Decoded values are immutable and the matching predicate
// is pure, so both are safe for concurrent use.
package manifest
