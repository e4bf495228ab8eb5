// Package filesystem provides the production DirLister backed by the local
// file system. Listing is sandboxed with os.Root so symlinks cannot escape
// the scanned directory.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/nounder/fsroute"
)

// Lister walks a directory tree and reports every file in it.
type Lister struct{}

// NewLister creates a new filesystem Lister.
func NewLister() *Lister {
	return &Lister{}
}

// List recursively walks root and returns every file as a slash-separated
// path relative to root, in lexical order. A missing root surfaces as
// fsroute.ErrNotFound. The walk respects context cancellation.
func (l *Lister) List(ctx context.Context, root string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r, err := os.OpenRoot(root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("open %s: %w", root, fsroute.ErrNotFound)
		}
		return nil, fmt.Errorf("open %s: %w", root, err)
	}
	defer func() { _ = r.Close() }()

	var files []string
	if err := walkDir(ctx, r, ".", &files); err != nil {
		return nil, fmt.Errorf("list %s: %w", root, err)
	}

	return files, nil
}

func walkDir(ctx context.Context, root *os.Root, dir string, files *[]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// fs.ReadDir returns entries sorted by name, which keeps the listing
	// order deterministic.
	entries, err := fs.ReadDir(root.FS(), dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		entryPath := path.Join(dir, entry.Name())

		if entry.IsDir() {
			if err := walkDir(ctx, root, entryPath, files); err != nil {
				return err
			}
			continue
		}

		*files = append(*files, entryPath)
	}

	return nil
}
