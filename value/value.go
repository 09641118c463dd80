package value

// Symbol is a symbolic mapping key or field name. Symbols are minted by a
// schema.Registry when a record type is registered; textual keys resolve to
// existing Symbols through the registry and never create new ones.
type Symbol string

// Mapping is the associative value form. Keys may be Symbols (symbolic),
// strings (textual), or anything else (inert for conversion purposes).
type Mapping = map[any]any

// Sequence is the ordered value form, processed element-wise by the engines.
type Sequence = []any

// Record is a named-type aggregate. Type is the registered type name and
// Fields holds one entry per declared field; field order and defaults live on
// the schema descriptor, not here.
type Record struct {
	Type   string
	Fields map[Symbol]any
}

// Field returns the named field's value, or nil if the record has no such
// field.
func (r *Record) Field(name Symbol) any {
	if r == nil {
		return nil
	}
	return r.Fields[name]
}

// KeyKind classifies a mapping key for conversion purposes.
type KeyKind int

const (
	// KeySymbolic is a Symbol key.
	KeySymbolic KeyKind = iota

	// KeyTextual is a plain string key, resolvable to a Symbol through a
	// registry.
	KeyTextual

	// KeyOther is any other key type (numeric, tuple, ...). Such keys carry
	// no conversion semantics and are invalid when targeting a record.
	KeyOther
)

// String returns the string representation of the key kind.
func (k KeyKind) String() string {
	switch k {
	case KeySymbolic:
		return "symbolic"
	case KeyTextual:
		return "textual"
	case KeyOther:
		return "other"
	default:
		return "unknown"
	}
}

// KindOfKey classifies a mapping key.
func KindOfKey(k any) KeyKind {
	switch k.(type) {
	case Symbol:
		return KeySymbolic
	case string:
		return KeyTextual
	default:
		return KeyOther
	}
}

// AsMapping reports whether v is a mapping form and returns it as a Mapping.
// map[string]any inputs are converted to a Mapping with textual keys so that
// decoded YAML/JSON trees can be fed to the engines directly.
func AsMapping(v any) (Mapping, bool) {
	switch m := v.(type) {
	case Mapping:
		return m, true
	case map[string]any:
		out := make(Mapping, len(m))
		for k, val := range m {
			out[k] = val
		}
		return out, true
	default:
		return nil, false
	}
}
