// Package structify provides recursive, configuration-driven structural
// conversion between records, mappings, and sequences.
//
// structify reshapes arbitrarily nested values against a registered record
// schema and a nested conversion configuration. Three engines implement the
// same traversal with different strictness policies, plus one cleanup
// utility:
//
//   - coerce: lossy conversion that never fails; structural problems degrade
//     to best-effort plain mappings
//   - convert: lossless conversion returning an explicit Outcome
//     (Success / Unchanged / Failure); errors are surfaced, not swallowed
//   - strict: like convert, but with exhaustive key-set validation against
//     the target record's declared fields, producing categorized errors
//   - value.Destructure: recursively strips record type tags and meta keys,
//     producing plain mappings
//
// # Quick Start
//
// Declare record types in a registry, then convert:
//
//	reg := schema.NewRegistry()
//	reg.MustRegister(schema.Type{
//		Name: "User",
//		Fields: []schema.Field{
//			{Name: "name", Required: true},
//			{Name: "email"},
//		},
//	})
//
//	c := coerce.New(reg)
//	got := c.Apply(map[string]any{"name": "Ada"}, rules.To("User"), rules.Rule{})
//	rec := got.(*value.Record) // User record, email filled from its default
//
// Nested configuration directs per-field conversion, including the "to",
// "skip", and "skip-recursive" directives and the bare-type shorthand. It can
// be built programmatically or loaded from YAML:
//
//	cfg, err := rules.ParseYAML([]byte(`
//	to: User
//	address: Address
//	tags:
//	  to: ~
//	  skip-recursive: [Label]
//	`))
//
// # Engines and Outcomes
//
// Coerce returns a bare value and never signals failure. Convert and Strict
// return an Outcome the caller must branch on:
//
//	v := convert.New(reg)
//	out := v.Apply(input, rules.To("User"), cfg)
//	switch out.State {
//	case convert.StateSuccess, convert.StateUnchanged:
//		use(out.Value)
//	case convert.StateFailure:
//		log.Fatal(out.Err)
//	}
//
// The MustApply variants unwrap Success/Unchanged and panic on Failure.
// Failures are categorized error values from the structerrors package and
// support errors.Is / errors.As matching.
//
// # Pass-Through Types
//
// Values whose internal invariants forbid generic restructuring (time.Time,
// time.Duration, uuid.UUID, *regexp.Regexp, URLs, netip addresses, sets,
// spans, open files, reflect.Type values) are returned unchanged by every
// engine regardless of target or configuration. The allow-list can be
// extended at startup via value.RegisterPassthrough.
//
// # Concurrency
//
// All conversion is purely functional over its inputs. A Registry is safe
// for concurrent readers once registration is complete, and the engines keep
// no per-call state, so a single engine instance may be shared freely.
package structify
