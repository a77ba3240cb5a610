package i18n_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/savevault/lang/pkg/i18n"
)

func newTestResolver(t *testing.T, opts ...i18n.ResolverOption) (*i18n.Resolver, *i18n.Registry) {
	t.Helper()
	c, err := i18n.LoadCatalogFS(subFS(t, "toml"), i18n.English)
	require.NoError(t, err)
	reg := i18n.NewRegistryFor(c, nil)
	return i18n.NewResolver(reg, opts...), reg
}

func TestResolver(t *testing.T) {
	t.Parallel()

	r, _ := newTestResolver(t)

	tests := []struct {
		name     string
		id       string
		args     i18n.Args
		expected string
	}{
		{name: "message value", id: "hello", expected: "Hello"},
		{name: "message with argument", id: "welcome", args: i18n.Args{"name": i18n.Str("Ann")}, expected: "Welcome, Ann!"},
		{name: "attribute", id: "button.tooltip", expected: "Click the button"},
		{name: "attribute-only message", id: "field.placeholder", expected: "Type here"},
		{name: "plural", id: "items", args: i18n.Args{"count": i18n.Int(2)}, expected: "2 items"},
		{name: "normalized", id: "wrapped", expected: "This line was wrapped by hand.\n\nA new paragraph."},
		{name: "missing message", id: "nope", expected: "i18n-no-message=nope"},
		{name: "missing message with attribute", id: "nope.attr", expected: "i18n-no-message=nope.attr"},
		{name: "missing attribute", id: "button.nope", expected: "i18n-no-attr=button.nope"},
		{name: "missing nested attribute", id: "button.tooltip.extra", expected: "i18n-no-attr=button.tooltip.extra"},
		{name: "missing value", id: "field", expected: "i18n-no-message-value=field"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, r.Resolve(tt.id, tt.args))
		})
	}
}

func TestResolverLookup(t *testing.T) {
	t.Parallel()

	r, _ := newTestResolver(t)

	t.Run("resolved", func(t *testing.T) {
		t.Parallel()
		res := r.Lookup("hello", nil)
		require.True(t, res.OK())
		require.Equal(t, i18n.Resolved, res.Missing)
		require.Equal(t, "Hello", res.Text)
		require.Equal(t, "hello", res.ID)
		require.False(t, strings.HasPrefix(res.String(), i18n.DiagnosticPrefix))
	})

	t.Run("kinds", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, i18n.MissingMessage, r.Lookup("nope", nil).Missing)
		assert.Equal(t, i18n.MissingAttribute, r.Lookup("button.nope", nil).Missing)
		assert.Equal(t, i18n.MissingValue, r.Lookup("field", nil).Missing)
	})

	t.Run("warnings are kept", func(t *testing.T) {
		t.Parallel()
		res := r.Lookup("welcome", nil)
		require.True(t, res.OK())
		require.Equal(t, "Welcome, {{name}}!", res.String())
		require.Len(t, res.Warnings, 1)
		require.ErrorIs(t, res.Warnings[0], i18n.ErrUnresolvedArgument)
	})

	t.Run("every unregistered id is named", func(t *testing.T) {
		t.Parallel()
		for _, id := range []string{"x", "missing-message", "a.b", "a.b.c"} {
			out := r.Resolve(id, nil)
			require.True(t, strings.HasPrefix(out, i18n.DiagnosticPrefix), out)
			require.Contains(t, out, id)
		}
	})
}

func TestResolverLogging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r, _ := newTestResolver(t, i18n.WithLogger(log))

	r.Resolve("nope", nil)
	require.Contains(t, buf.String(), "id=nope")
	require.Contains(t, buf.String(), "kind=missing_message")

	buf.Reset()
	r.Resolve("welcome", nil)
	require.Contains(t, buf.String(), "level=DEBUG")
	require.Contains(t, buf.String(), "unresolved argument")
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	t.Run("builds lazily and once", func(t *testing.T) {
		t.Parallel()
		var builds atomic.Int32
		fsys := subFS(t, "toml")
		reg := i18n.NewRegistry(func() (*i18n.Catalog, error) {
			builds.Add(1)
			return i18n.LoadCatalogFS(fsys, i18n.English)
		}, nil)
		require.Zero(t, builds.Load())

		r := i18n.NewResolver(reg)

		var g errgroup.Group
		for i := range 32 {
			g.Go(func() error {
				got := r.Resolve("welcome", i18n.Args{"name": i18n.Str(fmt.Sprint(i))})
				if got != fmt.Sprintf("Welcome, %d!", i) {
					return fmt.Errorf("unexpected output %q", got)
				}
				return nil
			})
		}
		require.NoError(t, g.Wait())
		require.Equal(t, int32(1), builds.Load())

		c1, err := reg.Catalog()
		require.NoError(t, err)
		c2, err := reg.Catalog()
		require.NoError(t, err)
		require.Same(t, c1, c2)
	})

	t.Run("build failure is permanent", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		reg := i18n.NewRegistry(func() (*i18n.Catalog, error) { return nil, boom }, nil)

		_, err := reg.Catalog()
		require.ErrorIs(t, err, boom)

		err = reg.Do(func(*i18n.Catalog) {})
		require.ErrorIs(t, err, i18n.ErrCatalogUnavailable)
		require.ErrorIs(t, err, boom)

		r := i18n.NewResolver(reg)
		res := r.Lookup("hello", nil)
		require.Equal(t, i18n.CatalogUnavailable, res.Missing)
		require.Equal(t, i18n.DiagnosticNoCatalog, res.String())
	})

	t.Run("panic poisons the lock", func(t *testing.T) {
		t.Parallel()
		r, reg := newTestResolver(t)
		require.Equal(t, "Hello", r.Resolve("hello", nil))

		err := reg.Do(func(*i18n.Catalog) { panic("formatter exploded") })
		require.ErrorIs(t, err, i18n.ErrLockPoisoned)
		require.True(t, reg.Poisoned())

		res := r.Lookup("hello", nil)
		require.Equal(t, i18n.LockUnavailable, res.Missing)
		require.Equal(t, i18n.DiagnosticCannotLock, res.String())

		require.ErrorIs(t, reg.Do(func(*i18n.Catalog) {}), i18n.ErrLockPoisoned)
	})

	t.Run("nil build panics", func(t *testing.T) {
		t.Parallel()
		require.Panics(t, func() { i18n.NewRegistry(nil, nil) })
		require.Panics(t, func() { i18n.NewRegistryFor(nil, nil) })
		require.Panics(t, func() { i18n.NewResolver(nil) })
	})
}
