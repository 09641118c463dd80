package rules

// Reserved configuration keys. All other keys in a configuration name fields
// of the value under conversion.
const (
	// KeyTo selects the target shape for the current level.
	KeyTo = "to"

	// KeySkip lists record type tags passed through unchanged at the
	// current level only.
	KeySkip = "skip"

	// KeySkipRecursive lists record type tags passed through unchanged at
	// the current level and in every descendant rule.
	KeySkipRecursive = "skip-recursive"
)

type targetKind int

const (
	targetPreserve targetKind = iota
	targetMap
	targetType
)

// Target is the declared output shape for one conversion level. The zero
// Target preserves the input's shape while still applying field rules to its
// children.
type Target struct {
	kind targetKind
	name string
}

// AsMap returns the Target that produces a plain mapping.
func AsMap() Target {
	return Target{kind: targetMap}
}

// To returns the Target that produces a record of the named registered type.
func To(name string) Target {
	return Target{kind: targetType, name: name}
}

// IsPreserve reports whether the target preserves the input's shape.
func (t Target) IsPreserve() bool {
	return t.kind == targetPreserve
}

// IsMap reports whether the target is a plain mapping.
func (t Target) IsMap() bool {
	return t.kind == targetMap
}

// TypeName returns the target record type name, if the target is a record
// type.
func (t Target) TypeName() (string, bool) {
	if t.kind != targetType {
		return "", false
	}
	return t.name, true
}

// String returns a human-readable form of the target.
func (t Target) String() string {
	switch t.kind {
	case targetMap:
		return "map"
	case targetType:
		return t.name
	default:
		return "preserve"
	}
}

// Rule is one level of nested conversion configuration. The zero Rule
// preserves shape and transforms nothing.
type Rule struct {
	// To is the target for this level; nil preserves the current shape.
	To *Target
	// Skip lists record type tags passed through unchanged at this level
	// only; it does not propagate into field rules.
	Skip []string
	// SkipRecursive lists record type tags passed through unchanged at this
	// level and in every descendant rule.
	SkipRecursive []string
	// Fields holds the per-field rules, keyed by field name.
	Fields map[string]Rule
}

// OfType returns the shorthand rule {to: name} with no further directives.
func OfType(name string) Rule {
	t := To(name)
	return Rule{To: &t}
}

// OfMap returns the rule {to: null}, producing a plain mapping.
func OfMap() Rule {
	t := AsMap()
	return Rule{To: &t}
}

// Field returns the rule for the named field.
func (r Rule) Field(name string) (Rule, bool) {
	child, ok := r.Fields[name]
	return child, ok
}

// LevelTarget returns this rule's target, or the preserving Target when the
// rule declares none.
func (r Rule) LevelTarget() Target {
	if r.To != nil {
		return *r.To
	}
	return Target{}
}

// Bare reports whether the rule carries no field rules, i.e. it only selects
// a target and/or skip sets for the current level.
func (r Rule) Bare() bool {
	return len(r.Fields) == 0
}

// SkipsAt returns the effective skip set for the current level: the union of
// this rule's skip and skip-recursive tags with the recursive tags inherited
// from ancestors.
func (r Rule) SkipsAt(inherited []string) map[string]struct{} {
	if len(r.Skip) == 0 && len(r.SkipRecursive) == 0 && len(inherited) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(r.Skip)+len(r.SkipRecursive)+len(inherited))
	for _, tag := range r.Skip {
		set[tag] = struct{}{}
	}
	for _, tag := range r.SkipRecursive {
		set[tag] = struct{}{}
	}
	for _, tag := range inherited {
		set[tag] = struct{}{}
	}
	return set
}

// ChildSkips returns the skip set propagated into field rules: the
// deduplicated union of this rule's skip-recursive tags with the inherited
// set. Plain skip tags never propagate.
func (r Rule) ChildSkips(inherited []string) []string {
	if len(r.SkipRecursive) == 0 {
		return inherited
	}
	seen := make(map[string]struct{}, len(inherited)+len(r.SkipRecursive))
	out := make([]string, 0, len(inherited)+len(r.SkipRecursive))
	for _, tag := range inherited {
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	for _, tag := range r.SkipRecursive {
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
