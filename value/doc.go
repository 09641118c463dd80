// Package value defines the universal datum the conversion engines operate
// on, plus the Destructure cleanup utility.
//
// A value is one of:
//
//   - *Record: a named-type tag plus named fields, constructed through a
//     schema.Registry so declared defaults apply
//   - Mapping: map[any]any (map[string]any inputs are accepted everywhere a
//     Mapping is; their keys are treated as textual)
//   - Sequence: []any, processed element-wise
//   - a pass-through value: member of a fixed allow-list of opaque types that
//     no engine will restructure
//   - any other scalar: returned unchanged by every engine
//
// Mapping keys carry conversion semantics by kind: Symbol keys are symbolic,
// plain strings are textual, and every other key type is inert.
package value
