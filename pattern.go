package fsroute

import "strings"

// DispatchPattern translates a path-segment prefix into the pattern string
// registered with a Registrar. Components are joined with "/" and prefixed
// with a leading "/":
//
//	Literal("users")          → users
//	DynamicParam("id")        → :id
//	OptionalParam("id")       → :id?
//	RestParam("[...path]")    → :path*
//
// The empty prefix maps to "/".
func DispatchPattern(prefix []PathSegment) string {
	if len(prefix) == 0 {
		return "/"
	}

	parts := make([]string, 0, len(prefix))
	for _, seg := range prefix {
		switch s := seg.(type) {
		case Literal:
			parts = append(parts, s.Text)
		case DynamicParam:
			parts = append(parts, ":"+s.Name)
		case OptionalParam:
			parts = append(parts, ":"+s.Name+"?")
		case RestParam:
			parts = append(parts, ":"+s.Name()+"*")
		}
	}

	pattern := "/" + strings.Join(parts, "/")
	for strings.Contains(pattern, "//") {
		pattern = strings.ReplaceAll(pattern, "//", "/")
	}

	return pattern
}
