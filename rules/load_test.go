package rules

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Morgahl/structify/structerrors"
)

func TestFromMap(t *testing.T) {
	t.Run("reserved keys", func(t *testing.T) {
		r, err := FromMap(map[string]any{
			"to":             "User",
			"skip":           []any{"A"},
			"skip-recursive": []any{"B", "C"},
		})
		require.NoError(t, err)

		require.NotNil(t, r.To)
		name, ok := r.To.TypeName()
		require.True(t, ok)
		assert.Equal(t, "User", name)
		assert.Equal(t, []string{"A"}, r.Skip)
		assert.Equal(t, []string{"B", "C"}, r.SkipRecursive)
		assert.Empty(t, r.Fields)
	})

	t.Run("null to selects a plain mapping", func(t *testing.T) {
		r, err := FromMap(map[string]any{"to": nil})
		require.NoError(t, err)
		require.NotNil(t, r.To)
		assert.True(t, r.To.IsMap())
	})

	t.Run("absent to preserves", func(t *testing.T) {
		r, err := FromMap(map[string]any{"skip": "A"})
		require.NoError(t, err)
		assert.Nil(t, r.To)
		assert.Equal(t, []string{"A"}, r.Skip, "single tag promotes to a list")
	})

	t.Run("bare string field is shorthand for {to: name}", func(t *testing.T) {
		r, err := FromMap(map[string]any{"address": "Address"})
		require.NoError(t, err)
		child, ok := r.Field("address")
		require.True(t, ok)
		assert.Equal(t, OfType("Address"), child)
	})

	t.Run("nested maps recurse", func(t *testing.T) {
		r, err := FromMap(map[string]any{
			"settings": map[string]any{
				"to":    nil,
				"theme": "Theme",
			},
		})
		require.NoError(t, err)
		child, ok := r.Field("settings")
		require.True(t, ok)
		require.NotNil(t, child.To)
		assert.True(t, child.To.IsMap())
		grand, ok := child.Field("theme")
		require.True(t, ok)
		assert.Equal(t, OfType("Theme"), grand)
	})

	t.Run("nil field value is an empty rule", func(t *testing.T) {
		r, err := FromMap(map[string]any{"address": nil})
		require.NoError(t, err)
		child, ok := r.Field("address")
		require.True(t, ok)
		assert.Equal(t, Rule{}, child)
	})

	t.Run("pre-built rules and targets are accepted", func(t *testing.T) {
		r, err := FromMap(map[string]any{
			"to":      To("User"),
			"address": OfType("Address"),
		})
		require.NoError(t, err)
		child, ok := r.Field("address")
		require.True(t, ok)
		assert.Equal(t, OfType("Address"), child)
	})
}

func TestFromMapErrors(t *testing.T) {
	tests := []struct {
		name  string
		input map[string]any
	}{
		{"numeric target", map[string]any{"to": 42}},
		{"numeric field rule", map[string]any{"address": 42}},
		{"numeric skip tag", map[string]any{"skip": []any{42}}},
		{"mapping as skip", map[string]any{"skip-recursive": map[string]any{}}},
		{"nested error surfaces", map[string]any{"a": map[string]any{"to": 42}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromMap(tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, structerrors.ErrConfig),
				"expected a configuration error, got %v", err)
		})
	}
}

func TestParseYAML(t *testing.T) {
	t.Run("full configuration", func(t *testing.T) {
		r, err := ParseYAML([]byte(`
to: User
skip-recursive: [AuditStamp]
address: Address
settings:
  to: ~
  theme: Theme
`))
		require.NoError(t, err)

		require.NotNil(t, r.To)
		name, ok := r.To.TypeName()
		require.True(t, ok)
		assert.Equal(t, "User", name)
		assert.Equal(t, []string{"AuditStamp"}, r.SkipRecursive)

		addr, ok := r.Field("address")
		require.True(t, ok)
		assert.Equal(t, OfType("Address"), addr)

		settings, ok := r.Field("settings")
		require.True(t, ok)
		require.NotNil(t, settings.To)
		assert.True(t, settings.To.IsMap())
	})

	t.Run("empty document", func(t *testing.T) {
		r, err := ParseYAML([]byte(""))
		require.NoError(t, err)
		assert.Equal(t, Rule{}, r)
	})

	t.Run("invalid YAML", func(t *testing.T) {
		_, err := ParseYAML([]byte("a: [1, 2"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, structerrors.ErrConfig))
	})

	t.Run("non-mapping document", func(t *testing.T) {
		_, err := ParseYAML([]byte("- a\n- b"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, structerrors.ErrConfig))
	})
}
