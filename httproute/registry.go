package httproute

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// CORSConfig controls the CORS middleware on the assembled router.
type CORSConfig struct {
	Enabled          bool     `mapstructure:"enabled"`
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

// Config holds Registry options.
type Config struct {
	CORS      CORSConfig
	RequestID bool
}

// Registry implements fsroute.Registrar on top of a chi router.
//
// Dispatch patterns are expanded to chi syntax at registration time:
// ":name" becomes "{name}"; ":name?" registers the route both with and
// without that component; ":name*" becomes chi's trailing wildcard with the
// captured remainder re-bound under name. Unmatched requests, including
// method mismatches on an otherwise matching pattern, get a uniform no-route
// response.
type Registry struct {
	mux chi.Router
}

// NewRegistry creates a Registry. cfg may be nil for defaults (no CORS, no
// request id middleware).
func NewRegistry(cfg *Config) *Registry {
	r := chi.NewRouter()

	if cfg != nil {
		if cfg.RequestID {
			r.Use(RequestID)
		}
		if cfg.CORS.Enabled {
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins:   cfg.CORS.AllowedOrigins,
				AllowedMethods:   cfg.CORS.AllowedMethods,
				AllowedHeaders:   cfg.CORS.AllowedHeaders,
				ExposedHeaders:   cfg.CORS.ExposedHeaders,
				AllowCredentials: cfg.CORS.AllowCredentials,
				MaxAge:           cfg.CORS.MaxAge,
			}))
		}
	}

	r.NotFound(writeNoRoute)
	r.MethodNotAllowed(writeNoRoute)

	return &Registry{mux: r}
}

// Handle registers a method-specific dispatch entry.
func (g *Registry) Handle(method, pattern string, h http.Handler) error {
	return g.register(method, pattern, h)
}

// HandleAll registers a catch-all entry matching every HTTP method.
func (g *Registry) HandleAll(pattern string, h http.Handler) error {
	return g.register("", pattern, h)
}

// Router returns the assembled dispatchable handler.
func (g *Registry) Router() http.Handler {
	return g.mux
}

func (g *Registry) register(method, pattern string, h http.Handler) (err error) {
	// chi reports registration conflicts (duplicate patterns, clashing
	// parameter names at the same position) by panicking.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("register %s: %v", pattern, r)
		}
	}()

	routes, err := expand(pattern)
	if err != nil {
		return err
	}

	for _, rt := range routes {
		handler := h
		if rt.rest != "" {
			handler = bindRest(rt.rest, h)
		}

		if method == "" {
			g.mux.Handle(rt.pattern, handler)
		} else {
			g.mux.Method(method, rt.pattern, handler)
		}
	}

	return nil
}

// chiRoute is one chi-syntax route produced by expanding a dispatch pattern.
type chiRoute struct {
	pattern string
	rest    string // rest parameter name bound to the trailing wildcard
}

// expand translates a dispatch pattern into one or more chi routes. Optional
// components double the variants: once with the component, once without. A
// rest component must be final and becomes the trailing wildcard.
func expand(pattern string) ([]chiRoute, error) {
	if pattern == "/" {
		return []chiRoute{{pattern: "/"}}, nil
	}

	comps := strings.Split(strings.Trim(pattern, "/"), "/")
	variants := [][]string{{}}
	rest := ""

	for i, comp := range comps {
		switch {
		case strings.HasPrefix(comp, ":") && strings.HasSuffix(comp, "*"):
			if i != len(comps)-1 {
				return nil, fmt.Errorf("rest parameter %q must be the final component of %q", comp, pattern)
			}
			rest = strings.TrimSuffix(strings.TrimPrefix(comp, ":"), "*")
			for j := range variants {
				variants[j] = append(variants[j], "*")
			}

		case strings.HasPrefix(comp, ":") && strings.HasSuffix(comp, "?"):
			name := strings.TrimSuffix(strings.TrimPrefix(comp, ":"), "?")
			doubled := make([][]string, 0, len(variants)*2)
			for _, v := range variants {
				without := make([]string, len(v))
				copy(without, v)
				doubled = append(doubled, without)
				doubled = append(doubled, append(v, "{"+name+"}"))
			}
			variants = doubled

		case strings.HasPrefix(comp, ":"):
			name := strings.TrimPrefix(comp, ":")
			for j := range variants {
				variants[j] = append(variants[j], "{"+name+"}")
			}

		default:
			for j := range variants {
				variants[j] = append(variants[j], comp)
			}
		}
	}

	routes := make([]chiRoute, 0, len(variants))
	for _, v := range variants {
		routes = append(routes, chiRoute{pattern: "/" + strings.Join(v, "/"), rest: rest})
	}

	return routes, nil
}

// bindRest exposes chi's trailing wildcard capture under the rest parameter's
// own name and enforces that it matched at least one component.
func bindRest(name string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rctx := chi.RouteContext(r.Context())
		wildcard := rctx.URLParam("*")
		if wildcard == "" {
			writeNoRoute(w, r)
			return
		}

		rctx.URLParams.Add(name, wildcard)
		next.ServeHTTP(w, r)
	})
}

// Param returns the named path parameter for the current request, or "" when
// absent (for example an optional parameter that did not match).
func Param(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}

func writeNoRoute(w http.ResponseWriter, r *http.Request) {
	WriteError(w, http.StatusNotFound, "no_route", "No route matched")
}
