// Package rules models the nested conversion configuration consumed by the
// coerce, convert, and strict engines.
//
// A Rule is keyed by field name and may carry three reserved directives:
//
//   - "to": the Target for this level — a record type name, or null for a
//     plain mapping. When absent, the current level's shape is preserved
//     while its children may still be transformed.
//   - "skip": record type tags whose values pass through unchanged at this
//     level only.
//   - "skip-recursive": like "skip", but propagated into every descendant
//     rule derived from this one (union-accumulated, deduplicated).
//
// Any other key holds either a nested Rule or a bare type name, which is
// shorthand for a Rule whose "to" is that type and which carries no further
// directives.
//
// Rules can be built programmatically, from a dynamic map[string]any via
// FromMap, or from YAML via ParseYAML:
//
//	to: User
//	skip-recursive: [AuditStamp]
//	address: Address          # shorthand for {to: Address}
//	settings:
//	  to: ~                   # produce a plain mapping
//	  theme: Theme
package rules
