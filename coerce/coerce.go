package coerce

import (
	"github.com/Morgahl/structify/rules"
	"github.com/Morgahl/structify/schema"
	"github.com/Morgahl/structify/value"
)

// Coercer is the lossy conversion engine.
type Coercer struct {
	// Registry resolves record type names and textual keys.
	Registry *schema.Registry
	// DropNilElements controls the sequence nil policy. When true (the
	// default from New), nil sequence elements are filtered from the
	// output; when false they are preserved in place.
	DropNilElements bool
}

// New creates a Coercer with default settings.
func New(reg *schema.Registry) *Coercer {
	return &Coercer{
		Registry:        reg,
		DropNilElements: true,
	}
}

// Apply converts v toward target under the nested configuration cfg. It
// never fails: structural problems degrade to best-effort plain mappings or
// to the unconverted input.
func (c *Coercer) Apply(v any, target rules.Target, cfg rules.Rule) any {
	return c.apply(v, target, cfg, nil)
}

func (c *Coercer) apply(v any, target rules.Target, cfg rules.Rule, inherited []string) any {
	switch x := v.(type) {
	case nil:
		return nil

	case value.Sequence:
		out := make(value.Sequence, 0, len(x))
		for _, el := range x {
			if el == nil && c.DropNilElements {
				continue
			}
			out = append(out, c.apply(el, target, cfg, inherited))
		}
		return out

	case *value.Record:
		if _, skip := cfg.SkipsAt(inherited)[x.Type]; skip {
			return x
		}
		// identity fast path
		if name, ok := target.TypeName(); ok && name == x.Type && cfg.Bare() {
			return x
		}
		if value.IsPassthrough(v) {
			return v
		}
		if target.IsPreserve() {
			return c.preserveRecord(x, cfg, inherited)
		}
		// strip the type tag and continue as a mapping
		return c.applyMapping(fieldsMapping(x), target, cfg, inherited)

	default:
		if value.IsPassthrough(v) {
			return v
		}
		if m, ok := value.AsMapping(v); ok {
			return c.applyMapping(m, target, cfg, inherited)
		}
		return v
	}
}

func (c *Coercer) applyMapping(m value.Mapping, target rules.Target, cfg rules.Rule, inherited []string) any {
	if name, ok := target.TypeName(); ok {
		return c.toRecord(m, name, cfg, inherited)
	}

	// plain-mapping and preserve targets keep keys in their original form
	childSkips := cfg.ChildSkips(inherited)
	out := make(value.Mapping, len(m))
	for k, mv := range m {
		rule, ok := ruleForKey(cfg, k)
		if !ok {
			out[k] = mv
			continue
		}
		out[k] = c.apply(mv, rule.LevelTarget(), rule, childSkips)
	}
	return out
}

// toRecord resolves m's keys against the registry and constructs a record of
// the named type. An unknown target name degrades to returning the resolved
// pairs as a plain mapping.
func (c *Coercer) toRecord(m value.Mapping, name string, cfg rules.Rule, inherited []string) any {
	childSkips := cfg.ChildSkips(inherited)
	pairs := make(map[value.Symbol]any, len(m))
	for k, mv := range m {
		sym, ok := c.resolveKey(k)
		if !ok {
			continue
		}
		rule, ok := cfg.Field(string(sym))
		if !ok {
			pairs[sym] = mv
			continue
		}
		pairs[sym] = c.apply(mv, rule.LevelTarget(), rule, childSkips)
	}

	if c.Registry != nil {
		if t, ok := c.Registry.Lookup(name); ok {
			return t.New(pairs)
		}
	}
	// unknown target: fall back to the pairs as a plain mapping
	out := make(value.Mapping, len(pairs))
	for sym, pv := range pairs {
		out[sym] = pv
	}
	return out
}

// resolveKey maps a key to a field symbol when targeting a record. Textual
// keys must resolve to an existing symbol; all other key shapes are dropped.
func (c *Coercer) resolveKey(k any) (value.Symbol, bool) {
	switch key := k.(type) {
	case value.Symbol:
		return key, true
	case string:
		if c.Registry == nil {
			return "", false
		}
		return c.Registry.Resolve(key)
	default:
		return "", false
	}
}

func (c *Coercer) preserveRecord(rec *value.Record, cfg rules.Rule, inherited []string) any {
	if cfg.Bare() {
		return rec
	}
	childSkips := cfg.ChildSkips(inherited)
	out := make(map[value.Symbol]any, len(rec.Fields))
	for name, fv := range rec.Fields {
		rule, ok := cfg.Field(string(name))
		if !ok {
			out[name] = fv
			continue
		}
		out[name] = c.apply(fv, rule.LevelTarget(), rule, childSkips)
	}
	return &value.Record{Type: rec.Type, Fields: out}
}

// ruleForKey looks up the field rule for a mapping key. Only symbolic and
// textual keys can carry rules.
func ruleForKey(cfg rules.Rule, k any) (rules.Rule, bool) {
	switch key := k.(type) {
	case value.Symbol:
		return cfg.Field(string(key))
	case string:
		return cfg.Field(key)
	default:
		return rules.Rule{}, false
	}
}

// fieldsMapping views a record's fields as a mapping with symbolic keys.
func fieldsMapping(rec *value.Record) value.Mapping {
	out := make(value.Mapping, len(rec.Fields))
	for name, fv := range rec.Fields {
		out[name] = fv
	}
	return out
}
