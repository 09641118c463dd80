package convert

import (
	"github.com/Morgahl/structify/rules"
	"github.com/Morgahl/structify/schema"
	"github.com/Morgahl/structify/structerrors"
	"github.com/Morgahl/structify/value"
)

// Converter is the lossless conversion engine.
type Converter struct {
	// Registry resolves record type names and textual keys.
	Registry *schema.Registry
}

// New creates a Converter.
func New(reg *schema.Registry) *Converter {
	return &Converter{Registry: reg}
}

// Apply converts v toward target under the nested configuration cfg,
// reporting an explicit Outcome. The first failure short-circuits remaining
// siblings and propagates to the caller.
func (c *Converter) Apply(v any, target rules.Target, cfg rules.Rule) Outcome {
	return c.apply(v, target, cfg, nil)
}

// MustApply is like Apply but unwraps the outcome, panicking with the
// categorized error on failure.
func (c *Converter) MustApply(v any, target rules.Target, cfg rules.Rule) any {
	out := c.Apply(v, target, cfg)
	if out.State == StateFailure {
		panic(out.Err)
	}
	return out.Value
}

func (c *Converter) apply(v any, target rules.Target, cfg rules.Rule, inherited []string) Outcome {
	switch x := v.(type) {
	case nil:
		return Unchanged(nil)

	case value.Sequence:
		out := make(value.Sequence, len(x))
		changed := false
		for i, el := range x {
			got := c.apply(el, target, cfg, inherited)
			if got.State == StateFailure {
				return got
			}
			if got.State == StateSuccess {
				changed = true
			}
			out[i] = got.Value
		}
		if !changed {
			return Unchanged(x)
		}
		return Success(out)

	case *value.Record:
		if _, skip := cfg.SkipsAt(inherited)[x.Type]; skip {
			return Unchanged(x)
		}
		// identity fast path
		if name, ok := target.TypeName(); ok && name == x.Type && cfg.Bare() {
			return Unchanged(x)
		}
		if value.IsPassthrough(v) {
			return Unchanged(v)
		}
		if target.IsPreserve() {
			return c.preserveRecord(x, cfg, inherited)
		}
		// stripping the type tag is itself a restructuring, so the result
		// can never be Unchanged
		return c.applyMapping(fieldsMapping(x), nil, target, cfg, inherited)

	default:
		if value.IsPassthrough(v) {
			return Unchanged(v)
		}
		if m, ok := value.AsMapping(v); ok {
			return c.applyMapping(m, v, target, cfg, inherited)
		}
		return Unchanged(v)
	}
}

// applyMapping converts a mapping. orig is the caller's original value to
// report in an Unchanged outcome; a nil orig marks the mapping as derived
// (a stripped record), which forces reconstruction.
func (c *Converter) applyMapping(m value.Mapping, orig any, target rules.Target, cfg rules.Rule, inherited []string) Outcome {
	if name, ok := target.TypeName(); ok {
		return c.toRecord(m, name, cfg, inherited)
	}

	childSkips := cfg.ChildSkips(inherited)
	out := make(value.Mapping, len(m))
	changed := false
	for k, mv := range m {
		rule, ok := ruleForKey(cfg, k)
		if !ok {
			out[k] = mv
			continue
		}
		got := c.apply(mv, rule.LevelTarget(), rule, childSkips)
		if got.State == StateFailure {
			return got
		}
		if got.State == StateSuccess {
			changed = true
		}
		out[k] = got.Value
	}
	if !changed && orig != nil {
		return Unchanged(orig)
	}
	return Success(out)
}

func (c *Converter) toRecord(m value.Mapping, name string, cfg rules.Rule, inherited []string) Outcome {
	var t *schema.Type
	if c.Registry != nil {
		t, _ = c.Registry.Lookup(name)
	}
	if t == nil {
		return Failure(&structerrors.TargetError{Target: name})
	}

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
		got := c.apply(mv, rule.LevelTarget(), rule, childSkips)
		if got.State == StateFailure {
			return got
		}
		pairs[sym] = got.Value
	}
	return Success(t.New(pairs))
}

// resolveKey mirrors the coerce engine: textual keys must resolve to an
// existing symbol, every other key shape is dropped when targeting a record.
func (c *Converter) resolveKey(k any) (value.Symbol, bool) {
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

func (c *Converter) preserveRecord(rec *value.Record, cfg rules.Rule, inherited []string) Outcome {
	if cfg.Bare() {
		return Unchanged(rec)
	}
	childSkips := cfg.ChildSkips(inherited)
	out := make(map[value.Symbol]any, len(rec.Fields))
	changed := false
	for name, fv := range rec.Fields {
		rule, ok := cfg.Field(string(name))
		if !ok {
			out[name] = fv
			continue
		}
		got := c.apply(fv, rule.LevelTarget(), rule, childSkips)
		if got.State == StateFailure {
			return got
		}
		if got.State == StateSuccess {
			changed = true
		}
		out[name] = got.Value
	}
	if !changed {
		return Unchanged(rec)
	}
	return Success(&value.Record{Type: rec.Type, Fields: out})
}

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

func fieldsMapping(rec *value.Record) value.Mapping {
	out := make(value.Mapping, len(rec.Fields))
	for name, fv := range rec.Fields {
		out[name] = fv
	}
	return out
}
