// Package schema provides the record type registry backing the conversion
// engines.
//
// A Registry holds Type descriptors (declared field names, per-field
// defaults, and which fields are mandatory on construction) and the symbol
// interner. Field names are interned as value.Symbol at registration time;
// Resolve turns a textual key into an existing Symbol and fails, never
// creating, when no such Symbol was interned. Both interning and resolution
// normalize to NFC so that visually identical keys with different code-point
// sequences compare equal.
//
// Required fields are declared directly on the descriptor rather than
// recovered from construction failures, so the strict engine can introspect
// them without constructing anything.
package schema
