package schema

import (
	"github.com/Morgahl/structify/value"
)

// Field describes one declared field of a record type.
type Field struct {
	// Name is the field's symbolic name.
	Name value.Symbol
	// Default is the value a constructed record takes when the field is not
	// supplied. May be nil.
	Default any
	// Required marks the field mandatory on construction. A Required field
	// with a non-nil Default is satisfied by falling back to that default; a
	// Required field with a nil Default must be supplied.
	Required bool
}

// Type describes a registered record type: its name and declared fields in
// declaration order.
type Type struct {
	// Name is the record type tag.
	Name string
	// Fields are the declared fields in declaration order.
	Fields []Field

	index map[value.Symbol]int
}

// Field returns the declared field with the given name.
func (t *Type) Field(name value.Symbol) (Field, bool) {
	i, ok := t.index[name]
	if !ok {
		return Field{}, false
	}
	return t.Fields[i], true
}

// Has reports whether name is a declared field.
func (t *Type) Has(name value.Symbol) bool {
	_, ok := t.index[name]
	return ok
}

// FieldNames returns the declared field names in declaration order.
func (t *Type) FieldNames() []value.Symbol {
	names := make([]value.Symbol, len(t.Fields))
	for i, f := range t.Fields {
		names[i] = f.Name
	}
	return names
}

// New constructs a record of this type from the supplied field values.
// Fields not supplied take their declared default; supplied keys that are
// not declared fields are dropped.
func (t *Type) New(fields map[value.Symbol]any) *value.Record {
	out := make(map[value.Symbol]any, len(t.Fields))
	for _, f := range t.Fields {
		if v, ok := fields[f.Name]; ok {
			out[f.Name] = v
			continue
		}
		out[f.Name] = f.Default
	}
	return &value.Record{Type: t.Name, Fields: out}
}

// MissingRequired returns the declared fields that are mandatory on
// construction (Required with a nil Default) and for which present reports
// false, in declaration order. Required fields with a non-nil Default are
// never reported: construction falls back to the default instead.
func (t *Type) MissingRequired(present func(value.Symbol) bool) []value.Symbol {
	var missing []value.Symbol
	for _, f := range t.Fields {
		if !f.Required || f.Default != nil {
			continue
		}
		if !present(f.Name) {
			missing = append(missing, f.Name)
		}
	}
	return missing
}
