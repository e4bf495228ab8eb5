package modules

import (
	"context"
	"errors"
	"fmt"

	"github.com/nounder/fsroute"
)

// Chain composes loaders, trying each in order and falling through on
// ErrNotRegistered. Any other error stops the chain immediately.
type Chain []fsroute.ModuleLoader

// Load implements fsroute.ModuleLoader.
func (c Chain) Load(ctx context.Context, absPath string) (fsroute.Module, error) {
	for _, l := range c {
		mod, err := l.Load(ctx, absPath)
		if errors.Is(err, ErrNotRegistered) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return mod, nil
	}

	return nil, fmt.Errorf("%s: %w", absPath, ErrNotRegistered)
}
