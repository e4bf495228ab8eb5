package modules

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nounder/fsroute"
)

// PageFiles loads +page modules straight from disk: the file contents become
// the page's default export. Server modules cannot be served this way and
// fall through as unregistered, so PageFiles is usually the last element of
// a Chain behind a Registry.
type PageFiles struct{}

// NewPageFiles creates a new PageFiles loader.
func NewPageFiles() *PageFiles {
	return &PageFiles{}
}

// Load implements fsroute.ModuleLoader.
func (PageFiles) Load(ctx context.Context, absPath string) (fsroute.Module, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !strings.HasPrefix(filepath.Base(absPath), "+page.") {
		return nil, fmt.Errorf("%s: %w", absPath, ErrNotRegistered)
	}

	data, err := os.ReadFile(absPath) //nolint:gosec // Path comes from the scanned routes directory
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", absPath, err)
	}

	return fsroute.Module{fsroute.DefaultExport: string(data)}, nil
}
