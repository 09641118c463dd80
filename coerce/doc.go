// Package coerce implements the lossy conversion engine.
//
// Coercion never fails visibly: a target that does not denote a registered
// record type degrades to returning the resolved field pairs as a plain
// mapping, unresolvable textual keys are dropped silently, and keys that are
// neither symbolic nor textual are dropped when targeting a record.
//
// Sequence policy: nil elements are dropped by default (a nil has no
// structural identity to coerce); set Coercer.DropNilElements to false to
// preserve them. The convert and strict engines always preserve nil
// elements.
package coerce
