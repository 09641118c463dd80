package rules

import (
	"fmt"

	yaml "go.yaml.in/yaml/v4"

	"github.com/Morgahl/structify/structerrors"
)

// FromMap builds a Rule from a dynamic configuration map, expanding the
// bare-type shorthand and interpreting the reserved "to", "skip", and
// "skip-recursive" keys. Field values may be a string (shorthand), nil (an
// empty rule), a nested map, or an already-built Rule.
func FromMap(m map[string]any) (Rule, error) {
	var r Rule
	for k, v := range m {
		switch k {
		case KeyTo:
			t, err := targetFrom(v)
			if err != nil {
				return Rule{}, err
			}
			r.To = &t
		case KeySkip:
			tags, err := tagsFrom(k, v)
			if err != nil {
				return Rule{}, err
			}
			r.Skip = tags
		case KeySkipRecursive:
			tags, err := tagsFrom(k, v)
			if err != nil {
				return Rule{}, err
			}
			r.SkipRecursive = tags
		default:
			child, err := ruleFrom(k, v)
			if err != nil {
				return Rule{}, err
			}
			if r.Fields == nil {
				r.Fields = make(map[string]Rule)
			}
			r.Fields[k] = child
		}
	}
	return r, nil
}

// ParseYAML builds a Rule from a YAML document. A null "to" selects a plain
// mapping; a string field value is the bare-type shorthand.
func ParseYAML(data []byte) (Rule, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Rule{}, &structerrors.ConfigError{Message: "invalid YAML", Cause: err}
	}
	if raw == nil {
		return Rule{}, nil
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return Rule{}, &structerrors.ConfigError{
			Value:   raw,
			Message: fmt.Sprintf("configuration must be a mapping, got %T", raw),
		}
	}
	return FromMap(m)
}

func ruleFrom(key string, v any) (Rule, error) {
	switch x := v.(type) {
	case nil:
		return Rule{}, nil
	case string:
		return OfType(x), nil
	case Target:
		return Rule{To: &x}, nil
	case Rule:
		return x, nil
	case map[string]any:
		child, err := FromMap(x)
		if err != nil {
			return Rule{}, &structerrors.ConfigError{Key: key, Cause: err}
		}
		return child, nil
	default:
		return Rule{}, &structerrors.ConfigError{
			Key:     key,
			Value:   v,
			Message: fmt.Sprintf("field rule must be a type name or nested configuration, got %T", v),
		}
	}
}

func targetFrom(v any) (Target, error) {
	switch x := v.(type) {
	case nil:
		return AsMap(), nil
	case string:
		return To(x), nil
	case Target:
		return x, nil
	default:
		return Target{}, &structerrors.ConfigError{
			Key:     KeyTo,
			Value:   v,
			Message: fmt.Sprintf("target must be a type name or null, got %T", v),
		}
	}
}

func tagsFrom(key string, v any) ([]string, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case string:
		return []string{x}, nil
	case []string:
		return x, nil
	case []any:
		tags := make([]string, 0, len(x))
		for _, el := range x {
			s, ok := el.(string)
			if !ok {
				return nil, &structerrors.ConfigError{
					Key:     key,
					Value:   el,
					Message: fmt.Sprintf("skip tags must be type names, got %T", el),
				}
			}
			tags = append(tags, s)
		}
		return tags, nil
	default:
		return nil, &structerrors.ConfigError{
			Key:     key,
			Value:   v,
			Message: fmt.Sprintf("skip tags must be a list of type names, got %T", v),
		}
	}
}
