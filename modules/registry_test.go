package modules_test

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nounder/fsroute"
	"github.com/nounder/fsroute/modules"
)

func TestRegistry_Load(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()

	mod := fsroute.Module{
		"GET": func(w http.ResponseWriter, r *http.Request) {},
	}

	registry, err := modules.NewRegistry(root)
	require.NoError(t, err)
	registry.Register("api/users/+server.ts", mod)

	t.Run("resolves absolute paths against root", func(t *testing.T) {
		got, err := registry.Load(ctx, filepath.Join(root, "api", "users", "+server.ts"))
		require.NoError(t, err)
		assert.Equal(t, mod, got)
	})

	t.Run("unknown path reports not registered", func(t *testing.T) {
		_, err := registry.Load(ctx, filepath.Join(root, "api", "other", "+server.ts"))
		require.Error(t, err)
		assert.ErrorIs(t, err, modules.ErrNotRegistered)
	})

	t.Run("re-registration replaces", func(t *testing.T) {
		replacement := fsroute.Module{"default": "new"}
		registry.Register("api/users/+server.ts", replacement)

		got, err := registry.Load(ctx, filepath.Join(root, "api", "users", "+server.ts"))
		require.NoError(t, err)
		assert.Equal(t, replacement, got)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := registry.Load(cancelled, filepath.Join(root, "api", "users", "+server.ts"))
		assert.ErrorIs(t, err, context.Canceled)
	})
}
