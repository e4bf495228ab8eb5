package fsroute

import (
	"net/http"
	"strings"
)

// Segment is one classified component of a route file path. It is either a
// PathSegment matched against URL components, or a HandleSegment naming the
// file that supplies the route's logic.
type Segment interface {
	segment()
}

// PathSegment is a Segment that matches URL path components.
type PathSegment interface {
	Segment
	pathSegment()
}

// HandleSegment is a Segment that terminates a route. It corresponds to a
// +server.* or +page.* file on disk.
type HandleSegment interface {
	Segment
	// Ext returns the source file extension (ts, tsx, js, jsx).
	Ext() string
}

// Literal matches exactly one path component verbatim.
type Literal struct {
	Text string
}

// DynamicParam matches exactly one non-empty path component, bound to Name.
type DynamicParam struct {
	Name string
}

// OptionalParam matches zero or one path component, bound to Name when present.
type OptionalParam struct {
	Name string
}

// RestParam matches one or more trailing path components greedily. Raw is the
// entire bracketed token as written on disk, e.g. "[...filePath]".
type RestParam struct {
	Raw string
}

// Name extracts the parameter name from the raw token.
func (p RestParam) Name() string {
	return strings.TrimSuffix(strings.TrimPrefix(p.Raw, "[..."), "]")
}

// ServerHandle marks a +server.* file: the module implements request
// handling logic for one or more HTTP methods.
type ServerHandle struct {
	Extension string
}

// PageHandle marks a +page.* file: the module supplies a renderable page
// served on GET only.
type PageHandle struct {
	Extension string
}

func (Literal) segment()       {}
func (DynamicParam) segment()  {}
func (OptionalParam) segment() {}
func (RestParam) segment()     {}
func (ServerHandle) segment()  {}
func (PageHandle) segment()    {}

func (Literal) pathSegment()       {}
func (DynamicParam) pathSegment()  {}
func (OptionalParam) pathSegment() {}
func (RestParam) pathSegment()     {}

func (h ServerHandle) Ext() string { return h.Extension }
func (h PageHandle) Ext() string   { return h.Extension }

// Route is a validated segment sequence: zero or more path segments followed
// by exactly one handle segment. It corresponds 1:1 with a discovered handle
// file.
type Route struct {
	Prefix []PathSegment
	Handle HandleSegment
}

// Module holds a loaded route file's exported bindings, keyed by export name.
// The default export, when present, lives under DefaultExport.
type Module map[string]any

// DefaultExport is the export slot consulted for page content and for the
// catch-all server handler.
const DefaultExport = "default"

// Methods lists the HTTP methods recognized as method-specific exports of a
// server module, in registration order.
var Methods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodDelete,
	http.MethodPatch,
	http.MethodOptions,
	http.MethodHead,
}
