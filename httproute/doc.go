// Package httproute implements the fsroute.Registrar capability on top of
// chi, plus the HTTP response helpers and middleware shared by routers it
// assembles.
//
// # Dispatch patterns
//
// The Registry consumes fsroute dispatch patterns and expands them to chi
// routes at registration time:
//
//	/users/:id        → /users/{id}
//	/items/:id?       → /items and /items/{id}
//	/files/:path*     → /files/* with the remainder bound as "path"
//
// Handlers read parameters with Param, which resolves dynamic, optional, and
// rest captures uniformly:
//
//	func(w http.ResponseWriter, r *http.Request) {
//	    id := httproute.Param(r, "id") // "" when an optional did not match
//	    ...
//	}
//
// # No-route responses
//
// A request matching no registered entry, including a method mismatch on an
// otherwise matching pattern, receives a JSON 404 with error code "no_route".
// This is distinct from the build-time error kinds in package fsroute.
//
// # Middleware
//
// NewRegistry wires CORS and request id middleware from its Config. RequestID
// is exported for standalone use with any router.
package httproute
