package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOfKey(t *testing.T) {
	tests := []struct {
		name     string
		key      any
		expected KeyKind
	}{
		{"symbol key", Symbol("name"), KeySymbolic},
		{"string key", "name", KeyTextual},
		{"int key", 42, KeyOther},
		{"float key", 4.2, KeyOther},
		{"bool key", true, KeyOther},
		{"struct key", struct{ A, B int }{1, 2}, KeyOther},
		{"nil key", nil, KeyOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, KindOfKey(tt.key))
		})
	}
}

func TestKeyKindString(t *testing.T) {
	assert.Equal(t, "symbolic", KeySymbolic.String())
	assert.Equal(t, "textual", KeyTextual.String())
	assert.Equal(t, "other", KeyOther.String())
	assert.Equal(t, "unknown", KeyKind(99).String())
}

func TestAsMapping(t *testing.T) {
	t.Run("mapping passes through as itself", func(t *testing.T) {
		in := Mapping{Symbol("a"): 1}
		got, ok := AsMapping(in)
		require.True(t, ok)
		assert.Equal(t, in, got)
	})

	t.Run("string-keyed map converts with textual keys", func(t *testing.T) {
		got, ok := AsMapping(map[string]any{"a": 1, "b": "x"})
		require.True(t, ok)
		assert.Equal(t, Mapping{"a": 1, "b": "x"}, got)
		for k := range got {
			assert.Equal(t, KeyTextual, KindOfKey(k))
		}
	})

	t.Run("non-mapping values are rejected", func(t *testing.T) {
		for _, v := range []any{nil, 42, "str", []any{1}, map[int]any{1: "x"}} {
			_, ok := AsMapping(v)
			assert.False(t, ok, "AsMapping(%v)", v)
		}
	})
}

func TestRecordField(t *testing.T) {
	rec := &Record{Type: "User", Fields: map[Symbol]any{"name": "Ada"}}
	assert.Equal(t, "Ada", rec.Field("name"))
	assert.Nil(t, rec.Field("missing"))

	var nilRec *Record
	assert.Nil(t, nilRec.Field("name"))
}
