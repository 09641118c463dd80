// Package strict implements the validating conversion engine.
//
// Strict follows the same traversal as the convert engine but performs
// exhaustive key-set validation before constructing any record. Per
// mapping-to-record conversion the checks run in a fixed order, and the
// first failing check wins:
//
//  1. keys that are neither symbolic nor textual fail with
//     structerrors.ErrInvalidKeys
//  2. textual keys that resolve to no interned symbol fail with
//     structerrors.ErrUnresolvableKeys
//  3. resolved keys not declared on the target record fail with
//     structerrors.ErrUnknownKeys
//  4. required fields (mandatory on construction with a nil default) absent
//     from the input fail with structerrors.ErrMissingKeys; a required field
//     with a non-nil default silently falls back to that default instead
//
// Only after all four checks pass does the engine recurse into nested fields
// and construct the record. Failures from nested conversions propagate up
// unchanged; ancestors never re-categorize them.
//
// Sequence policy matches the convert engine: nil elements are preserved.
package strict
