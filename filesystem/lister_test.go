package filesystem_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nounder/fsroute"
	"github.com/nounder/fsroute/filesystem"
)

func writeFile(t *testing.T, root, rel string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))
}

func TestLister_List(t *testing.T) {
	t.Run("recursive listing in lexical order", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, "b.txt")
		writeFile(t, root, "a/+page.ts")
		writeFile(t, root, "a/nested/+server.ts")
		writeFile(t, root, "c/file")

		files, err := filesystem.NewLister().List(context.Background(), root)
		require.NoError(t, err)

		assert.Equal(t, []string{
			"a/+page.ts",
			"a/nested/+server.ts",
			"b.txt",
			"c/file",
		}, files)
	})

	t.Run("empty directory", func(t *testing.T) {
		files, err := filesystem.NewLister().List(context.Background(), t.TempDir())
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("missing root", func(t *testing.T) {
		_, err := filesystem.NewLister().List(context.Background(), filepath.Join(t.TempDir(), "nope"))
		require.Error(t, err)
		assert.ErrorIs(t, err, fsroute.ErrNotFound)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := filesystem.NewLister().List(ctx, t.TempDir())
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("symlink outside root is not followed", func(t *testing.T) {
		outside := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(outside, "secret"), []byte("x"), 0o644))

		root := t.TempDir()
		writeFile(t, root, "ok.txt")
		require.NoError(t, os.Symlink(outside, filepath.Join(root, "escape")))

		files, err := filesystem.NewLister().List(context.Background(), root)
		if err == nil {
			assert.NotContains(t, files, "escape/secret")
		}
	})
}
