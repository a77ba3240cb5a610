package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/savevault/lang/pkg/i18n"
)

func TestNewCatalog(t *testing.T) {
	t.Parallel()

	t.Run("builds messages and attributes", func(t *testing.T) {
		t.Parallel()
		c, err := i18n.NewCatalog(i18n.English, map[string]any{
			"hello": "Hello",
			"field": map[string]any{
				"placeholder": "Type here",
				"a.b":         "Dotted attribute",
			},
		})
		require.NoError(t, err)
		require.Equal(t, 2, c.Len())
		require.Equal(t, []string{"field", "hello"}, c.IDs())
		require.Equal(t, []string{"field.a.b", "field.placeholder", "hello"}, c.Keys())

		field, ok := c.Message("field")
		require.True(t, ok)
		require.Equal(t, "field", field.ID())
		attr, ok := field.Attribute("a.b")
		require.True(t, ok)
		require.Equal(t, "field.a.b", attr.Key())

		_, ok = c.Message("missing")
		require.False(t, ok)
	})

	t.Run("records referenced arguments", func(t *testing.T) {
		t.Parallel()
		c, err := i18n.NewCatalog(i18n.English, map[string]any{
			"confirm": `{{if eq .action "merge"}}Merge into{{else}}Create{{end}} {{.path}} {{with .extra}}{{.}}{{end}}`,
		})
		require.NoError(t, err)
		msg, _ := c.Message("confirm")
		p, _ := msg.Value()
		require.Equal(t, []string{"action", "extra", "path"}, p.Arguments())
		require.False(t, p.IsPlural())
	})

	tests := []struct {
		name     string
		data     map[string]any
		expected error
	}{
		{name: "empty catalog", data: map[string]any{}, expected: i18n.ErrEmptyCatalog},
		{name: "empty message table", data: map[string]any{"x": map[string]any{}}, expected: i18n.ErrInvalidMessage},
		{name: "dotted message id", data: map[string]any{"a.b": "x"}, expected: i18n.ErrInvalidMessage},
		{name: "empty message id", data: map[string]any{"": "x"}, expected: i18n.ErrInvalidMessage},
		{name: "non-string message", data: map[string]any{"x": int64(3)}, expected: i18n.ErrInvalidMessage},
		{name: "non-string attribute", data: map[string]any{"x": map[string]any{"attr": true}}, expected: i18n.ErrInvalidPattern},
		{name: "unparsable template", data: map[string]any{"x": "{{.path"}, expected: i18n.ErrInvalidPattern},
		{
			name:     "plural without other",
			data:     map[string]any{"x": map[string]any{"value": map[string]any{"count": "n", "one": "one"}}},
			expected: i18n.ErrInvalidPattern,
		},
		{
			name:     "plural without count",
			data:     map[string]any{"x": map[string]any{"value": map[string]any{"one": "one", "other": "many"}}},
			expected: i18n.ErrInvalidPattern,
		},
		{
			name:     "unknown plural form",
			data:     map[string]any{"x": map[string]any{"value": map[string]any{"count": "n", "several": "a", "other": "b"}}},
			expected: i18n.ErrInvalidPattern,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := i18n.NewCatalog(i18n.English, tt.data)
			require.ErrorIs(t, err, tt.expected)
		})
	}

	t.Run("unsupported locale", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewCatalog(i18n.Locale(42), map[string]any{"x": "y"})
		require.ErrorIs(t, err, i18n.ErrUnsupportedLocale)
	})
}
