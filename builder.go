package fsroute

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
)

// DirLister lists route candidate files under a root directory.
//
// Implementations must list recursively and return slash-separated paths
// relative to root, in a deterministic order. A missing root must surface as
// an error wrapping ErrNotFound.
type DirLister interface {
	List(ctx context.Context, root string) ([]string, error)
}

// ModuleLoader resolves an absolute route file path to the module's exported
// bindings. Loading may execute arbitrary module code; the builder blocks
// until each load completes.
type ModuleLoader interface {
	Load(ctx context.Context, path string) (Module, error)
}

// Registrar collects dispatch entries and assembles them into a dispatchable
// handler. Patterns use the DispatchPattern syntax: literal components,
// ":name", ":name?", and ":name*".
type Registrar interface {
	// Handle registers a method-specific dispatch entry.
	Handle(method, pattern string, h http.Handler) error
	// HandleAll registers a catch-all entry matching every HTTP method.
	HandleAll(pattern string, h http.Handler) error
	// Router returns the assembled dispatchable handler.
	Router() http.Handler
}

// RouteEntry describes one registered dispatch entry. Method is "*" for
// catch-all registrations.
type RouteEntry struct {
	Method  string
	Pattern string
	Source  string
}

// Builder assembles a router from a directory of route files. It walks the
// tree with its DirLister, parses each discovered path, loads route modules
// through its ModuleLoader, validates their exports per handle kind, and
// registers dispatch entries into a Registrar.
//
// Processing is sequential in listing order and stops at the first failure;
// no partial router is returned on error. Files whose paths do not form a
// valid route are skipped silently.
type Builder struct {
	lister  DirLister
	loader  ModuleLoader
	entries []RouteEntry
}

// NewBuilder creates a Builder over the given listing and loading capabilities.
func NewBuilder(lister DirLister, loader ModuleLoader) *Builder {
	return &Builder{lister: lister, loader: loader}
}

// Build scans rootDir and returns the assembled router.
//
// Errors are one of three kinds, all locating the offending file:
//   - wrapping ErrNotFound when rootDir is missing or unreadable
//   - wrapping ErrModuleLoad (and the underlying cause) when a module fails
//     to load; always fatal, never skipped
//   - wrapping ErrInvalidModule when a loaded module's exports violate the
//     handle-kind contract
func (b *Builder) Build(ctx context.Context, rootDir string, reg Registrar) (http.Handler, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("build router: %w", err)
	}

	b.entries = nil

	root, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("build router: resolve root: %w", err)
	}

	files, err := b.lister.List(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("build router: %w", err)
	}

	for _, rel := range files {
		route, ok := ParseRoute(rel)
		if !ok {
			slog.Debug("skipping non-route file", "path", rel)
			continue
		}

		pattern := DispatchPattern(route.Prefix)
		absPath := filepath.Join(root, filepath.FromSlash(rel))

		mod, loadErr := b.loader.Load(ctx, absPath)
		if loadErr != nil {
			return nil, fmt.Errorf("build router: load %s: %w: %w", absPath, ErrModuleLoad, loadErr)
		}

		var regErr error
		switch route.Handle.(type) {
		case ServerHandle:
			regErr = b.registerServer(reg, pattern, absPath, mod)
		case PageHandle:
			regErr = b.registerPage(reg, pattern, absPath, mod)
		}
		if regErr != nil {
			return nil, fmt.Errorf("build router: %w", regErr)
		}
	}

	return reg.Router(), nil
}

// Entries returns the dispatch entries registered by the last Build call, in
// registration order.
func (b *Builder) Entries() []RouteEntry {
	return b.entries
}

// registerServer validates a +server module and registers its handlers.
// Every valid method export is registered independently. The default export
// is a catch-all fallback consulted only when no method export registered;
// method exports suppress the default even when one is present.
func (b *Builder) registerServer(reg Registrar, pattern, path string, mod Module) error {
	registered := false
	for _, method := range Methods {
		h, ok := asHandler(mod[method])
		if !ok {
			continue
		}

		if err := reg.Handle(method, pattern, h); err != nil {
			return fmt.Errorf("register %s %s from %s: %w", method, pattern, path, err)
		}
		b.entries = append(b.entries, RouteEntry{Method: method, Pattern: pattern, Source: path})
		registered = true
	}

	if registered {
		return nil
	}

	if h, ok := asHandler(mod[DefaultExport]); ok {
		if err := reg.HandleAll(pattern, h); err != nil {
			return fmt.Errorf("register %s from %s: %w", pattern, path, err)
		}
		b.entries = append(b.entries, RouteEntry{Method: "*", Pattern: pattern, Source: path})
		return nil
	}

	return fmt.Errorf("%w: no valid route handlers found in %s", ErrInvalidModule, path)
}

// registerPage validates a +page module and registers a GET-only entry
// serving the resolved page string as a plain-text body.
func (b *Builder) registerPage(reg Registrar, pattern, path string, mod Module) error {
	v, ok := mod[DefaultExport]
	if !ok || v == nil {
		return fmt.Errorf("%w: missing default export in %s", ErrInvalidModule, path)
	}

	content, err := resolvePageContent(v)
	if err != nil {
		return fmt.Errorf("%w: %w in %s", ErrInvalidModule, err, path)
	}

	if err := reg.Handle(http.MethodGet, pattern, pageHandler(content)); err != nil {
		return fmt.Errorf("register GET %s from %s: %w", pattern, path, err)
	}
	b.entries = append(b.entries, RouteEntry{Method: http.MethodGet, Pattern: pattern, Source: path})
	return nil
}

// asHandler reports whether an exported value is usable as a request handler:
// either a composable http.Handler or a plain handler function.
func asHandler(v any) (http.Handler, bool) {
	switch h := v.(type) {
	case http.Handler:
		return h, true
	case func(http.ResponseWriter, *http.Request):
		return http.HandlerFunc(h), true
	default:
		return nil, false
	}
}

// resolvePageContent reduces a page module's default export to the page body.
// Accepted shapes are a plain string and nullary functions returning a string,
// optionally with an error.
func resolvePageContent(v any) (string, error) {
	switch f := v.(type) {
	case string:
		return f, nil
	case func() string:
		return callPage(func() (any, error) { return f(), nil })
	case func() (string, error):
		return callPage(func() (any, error) { return f() })
	case func() any:
		return callPage(func() (any, error) { return f(), nil })
	case func() (any, error):
		return callPage(f)
	default:
		return "", errors.New("default export is not a string or a function returning a string")
	}
}

// callPage invokes a page function, converting panics and returned errors
// into ordinary errors and enforcing the string result contract.
func callPage(fn func() (any, error)) (body string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("page function panicked: %v", r)
		}
	}()

	res, err := fn()
	if err != nil {
		return "", fmt.Errorf("page function failed: %w", err)
	}

	s, ok := res.(string)
	if !ok {
		return "", errors.New("page function did not return a string")
	}

	return s, nil
}

// pageHandler serves body as a plain-text 200 response.
func pageHandler(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, body)
	})
}
