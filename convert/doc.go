// Package convert implements the lossless conversion engine.
//
// Convert follows the same traversal as the coerce engine but reports an
// explicit Outcome instead of degrading on failure: a target that does not
// denote a registered record type produces a Failure carrying a
// structerrors.TargetError, and the first failure short-circuits the
// remaining siblings of the enclosing sequence or mapping pass.
//
// Subtrees that required no restructuring are reported as Unchanged, letting
// ancestors return their original input instead of rebuilding equal
// structures. Unchanged is semantically a success; it differs only in
// signaling that Outcome.Value is the original input.
//
// Sequence policy: nil elements are preserved in place, keeping the output
// shape identical to the input (the coerce engine drops them by default).
package convert
