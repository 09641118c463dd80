package strict

import (
	"fmt"
	"sort"

	"github.com/Morgahl/structify/convert"
	"github.com/Morgahl/structify/internal/maputil"
	"github.com/Morgahl/structify/rules"
	"github.com/Morgahl/structify/schema"
	"github.com/Morgahl/structify/structerrors"
	"github.com/Morgahl/structify/value"
)

// Validator is the validating conversion engine. It shares the convert
// engine's Outcome type, so callers can treat the two interchangeably.
type Validator struct {
	// Registry resolves record type names and textual keys, and exposes the
	// declared and required field sets the validation checks run against.
	Registry *schema.Registry
}

// New creates a Validator.
func New(reg *schema.Registry) *Validator {
	return &Validator{Registry: reg}
}

// Apply converts v toward target under the nested configuration cfg,
// validating every mapping-to-record conversion against the target's
// declared field set. Failures carry categorized structerrors values.
func (s *Validator) Apply(v any, target rules.Target, cfg rules.Rule) convert.Outcome {
	return s.apply(v, target, cfg, nil)
}

// MustApply is like Apply but unwraps the outcome, panicking with the
// categorized error on failure.
func (s *Validator) MustApply(v any, target rules.Target, cfg rules.Rule) any {
	out := s.Apply(v, target, cfg)
	if out.State == convert.StateFailure {
		panic(out.Err)
	}
	return out.Value
}

func (s *Validator) apply(v any, target rules.Target, cfg rules.Rule, inherited []string) convert.Outcome {
	switch x := v.(type) {
	case nil:
		return convert.Unchanged(nil)

	case value.Sequence:
		out := make(value.Sequence, len(x))
		changed := false
		for i, el := range x {
			got := s.apply(el, target, cfg, inherited)
			if got.State == convert.StateFailure {
				return got
			}
			if got.State == convert.StateSuccess {
				changed = true
			}
			out[i] = got.Value
		}
		if !changed {
			return convert.Unchanged(x)
		}
		return convert.Success(out)

	case *value.Record:
		if _, skip := cfg.SkipsAt(inherited)[x.Type]; skip {
			return convert.Unchanged(x)
		}
		// identity fast path
		if name, ok := target.TypeName(); ok && name == x.Type && cfg.Bare() {
			return convert.Unchanged(x)
		}
		if value.IsPassthrough(v) {
			return convert.Unchanged(v)
		}
		if target.IsPreserve() {
			return s.preserveRecord(x, cfg, inherited)
		}
		return s.applyMapping(fieldsMapping(x), nil, target, cfg, inherited)

	default:
		if value.IsPassthrough(v) {
			return convert.Unchanged(v)
		}
		if m, ok := value.AsMapping(v); ok {
			return s.applyMapping(m, v, target, cfg, inherited)
		}
		return convert.Unchanged(v)
	}
}

func (s *Validator) applyMapping(m value.Mapping, orig any, target rules.Target, cfg rules.Rule, inherited []string) convert.Outcome {
	if name, ok := target.TypeName(); ok {
		return s.toRecord(m, name, cfg, inherited)
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
		got := s.apply(mv, rule.LevelTarget(), rule, childSkips)
		if got.State == convert.StateFailure {
			return got
		}
		if got.State == convert.StateSuccess {
			changed = true
		}
		out[k] = got.Value
	}
	if !changed && orig != nil {
		return convert.Unchanged(orig)
	}
	return convert.Success(out)
}

// toRecord validates m's key set against the named type's declared fields
// and constructs the record only after every check passes.
func (s *Validator) toRecord(m value.Mapping, name string, cfg rules.Rule, inherited []string) convert.Outcome {
	var t *schema.Type
	if s.Registry != nil {
		t, _ = s.Registry.Lookup(name)
	}
	if t == nil {
		return convert.Failure(&structerrors.TargetError{Target: name})
	}

	// check 1: keys that are neither symbolic nor textual
	invalid := map[string]struct{}{}
	for k := range m {
		if value.KindOfKey(k) == value.KeyOther {
			invalid[fmt.Sprintf("%v", k)] = struct{}{}
		}
	}
	if len(invalid) > 0 {
		return convert.Failure(&structerrors.KeyError{
			Category: structerrors.KeysInvalid,
			Target:   t.Name,
			Keys:     maputil.SortedKeys(invalid),
		})
	}

	// check 2: textual keys must resolve to existing symbols
	unresolvable := map[string]struct{}{}
	resolved := make(map[value.Symbol]any, len(m))
	for k, mv := range m {
		switch key := k.(type) {
		case value.Symbol:
			resolved[key] = mv
		case string:
			sym, ok := s.Registry.Resolve(key)
			if !ok {
				unresolvable[key] = struct{}{}
				continue
			}
			resolved[sym] = mv
		}
	}
	if len(unresolvable) > 0 {
		return convert.Failure(&structerrors.KeyError{
			Category: structerrors.KeysUnresolvable,
			Target:   t.Name,
			Keys:     maputil.SortedKeys(unresolvable),
		})
	}

	// check 3: every resolved key must be a declared field
	unknown := map[string]struct{}{}
	for sym := range resolved {
		if !t.Has(sym) {
			unknown[string(sym)] = struct{}{}
		}
	}
	if len(unknown) > 0 {
		return convert.Failure(&structerrors.KeyError{
			Category: structerrors.KeysUnknown,
			Target:   t.Name,
			Keys:     maputil.SortedKeys(unknown),
		})
	}

	// check 4: required fields without a usable default must be present
	missing := t.MissingRequired(func(sym value.Symbol) bool {
		_, ok := resolved[sym]
		return ok
	})
	if len(missing) > 0 {
		keys := make([]string, len(missing))
		for i, sym := range missing {
			keys[i] = string(sym)
		}
		sort.Strings(keys)
		return convert.Failure(&structerrors.KeyError{
			Category: structerrors.KeysMissing,
			Target:   t.Name,
			Keys:     keys,
		})
	}

	childSkips := cfg.ChildSkips(inherited)
	pairs := make(map[value.Symbol]any, len(resolved))
	for sym, mv := range resolved {
		rule, ok := cfg.Field(string(sym))
		if !ok {
			pairs[sym] = mv
			continue
		}
		got := s.apply(mv, rule.LevelTarget(), rule, childSkips)
		if got.State == convert.StateFailure {
			// nested failures keep their own category
			return got
		}
		pairs[sym] = got.Value
	}
	return convert.Success(t.New(pairs))
}

func (s *Validator) preserveRecord(rec *value.Record, cfg rules.Rule, inherited []string) convert.Outcome {
	if cfg.Bare() {
		return convert.Unchanged(rec)
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
		got := s.apply(fv, rule.LevelTarget(), rule, childSkips)
		if got.State == convert.StateFailure {
			return got
		}
		if got.State == convert.StateSuccess {
			changed = true
		}
		out[name] = got.Value
	}
	if !changed {
		return convert.Unchanged(rec)
	}
	return convert.Success(&value.Record{Type: rec.Type, Fields: out})
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
