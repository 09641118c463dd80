package value

// Reserved meta-attribute names stripped during destructuring. The source
// environments this model comes from tag their aggregates with these keys;
// they carry no data.
const (
	MetaStructKey = "__struct__"
	MetaSchemaKey = "__meta__"
)

// DefaultMetaKeys returns the meta-attribute names stripped by Destructure
// when no WithMetaKeys option is supplied.
func DefaultMetaKeys() []string {
	return []string{MetaStructKey, MetaSchemaKey}
}

// Option configures Destructure.
type Option func(*destructureConfig)

type destructureConfig struct {
	metaKeys map[string]struct{}
}

// WithMetaKeys replaces the set of meta-attribute names removed from
// mappings during destructuring. Host applications that know at startup
// which companion frameworks are loaded should compute the set once and
// supply it here rather than detecting it per call.
func WithMetaKeys(keys ...string) Option {
	return func(cfg *destructureConfig) {
		cfg.metaKeys = make(map[string]struct{}, len(keys))
		for _, k := range keys {
			cfg.metaKeys[k] = struct{}{}
		}
	}
}

// Destructure recursively strips record type tags and meta keys, turning
// records into plain mappings. Pass-through values and scalars are returned
// unchanged, and sequence elements are destructured in place with nil
// elements preserved, so the output always has the shape of the input.
//
// Destructure is total and idempotent: it cannot fail, and applying it twice
// yields the same value as applying it once.
func Destructure(v any, opts ...Option) any {
	cfg := destructureConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.metaKeys == nil {
		cfg.metaKeys = map[string]struct{}{
			MetaStructKey: {},
			MetaSchemaKey: {},
		}
	}
	return destructure(v, &cfg)
}

func destructure(v any, cfg *destructureConfig) any {
	switch x := v.(type) {
	case nil:
		return nil
	case Sequence:
		out := make(Sequence, len(x))
		for i, el := range x {
			out[i] = destructure(el, cfg)
		}
		return out
	case *Record:
		if IsPassthrough(v) {
			return v
		}
		out := make(Mapping, len(x.Fields))
		for name, fv := range x.Fields {
			out[name] = destructure(fv, cfg)
		}
		return out
	default:
		if IsPassthrough(v) {
			return v
		}
		m, ok := AsMapping(v)
		if !ok {
			return v
		}
		out := make(Mapping, len(m))
		for k, mv := range m {
			if isMetaKey(k, cfg.metaKeys) {
				continue
			}
			out[k] = destructure(mv, cfg)
		}
		return out
	}
}

// isMetaKey reports whether k names a meta attribute, under either key form.
func isMetaKey(k any, meta map[string]struct{}) bool {
	switch key := k.(type) {
	case Symbol:
		_, ok := meta[string(key)]
		return ok
	case string:
		_, ok := meta[key]
		return ok
	default:
		return false
	}
}
