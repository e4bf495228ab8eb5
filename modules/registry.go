// Package modules provides ModuleLoader implementations: an in-memory
// registry for programmatic registration, a loader serving +page files
// straight from disk, and chain composition over both.
package modules

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"sync"

	"github.com/nounder/fsroute"
)

// ErrNotRegistered is returned when a loader has no module for a path.
var ErrNotRegistered = errors.New("module not registered")

// Registry is an in-memory ModuleLoader keyed by root-relative paths. Route
// files on disk mark where a route lives; the registry supplies its exports.
// It is safe for concurrent use.
type Registry struct {
	root string

	mu      sync.RWMutex
	modules map[string]fsroute.Module
}

// NewRegistry creates a registry that resolves absolute file paths against
// root before lookup.
func NewRegistry(root string) (*Registry, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve registry root: %w", err)
	}

	return &Registry{
		root:    abs,
		modules: make(map[string]fsroute.Module),
	}, nil
}

// Register associates mod with a slash-separated path relative to the
// registry root, replacing any previous registration for that path.
func (r *Registry) Register(rel string, mod fsroute.Module) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.modules[path.Clean(rel)] = mod
}

// Load implements fsroute.ModuleLoader. Unknown paths report ErrNotRegistered.
func (r *Registry) Load(ctx context.Context, absPath string) (fsroute.Module, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rel, err := filepath.Rel(r.root, absPath)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", absPath, err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	mod, ok := r.modules[filepath.ToSlash(rel)]
	if !ok {
		return nil, fmt.Errorf("%s: %w", absPath, ErrNotRegistered)
	}

	return mod, nil
}
