package fsroute

import (
	"regexp"
	"strings"
)

var (
	restParamPattern    = regexp.MustCompile(`^\[\.\.\.\w+\]$`)
	dynamicParamPattern = regexp.MustCompile(`^\[(\w+)\]$`)
	literalPattern      = regexp.MustCompile(`^\w+$`)
)

// handleExtensions are the recognized source extensions for handle files.
var handleExtensions = map[string]struct{}{
	"ts":  {},
	"tsx": {},
	"js":  {},
	"jsx": {},
}

// ParseSegments translates a slash-delimited relative file path into its
// typed segment sequence. Leading and trailing slashes are stripped and empty
// components are ignored, so "/a///b/" parses the same as "a/b". The empty
// path yields an empty sequence.
//
// Classification is all-or-nothing: a single component that matches none of
// the recognized forms rejects the whole path, reported as ok == false.
func ParseSegments(path string) ([]Segment, bool) {
	path = strings.TrimPrefix(path, "/")
	path = strings.TrimSuffix(path, "/")

	segments := []Segment{}
	for _, part := range strings.Split(path, "/") {
		if part == "" {
			continue
		}

		seg, ok := classify(part)
		if !ok {
			return nil, false
		}
		segments = append(segments, seg)
	}

	return segments, true
}

// classify resolves a single path component to its segment type, checking the
// handle form first, then optional, rest, dynamic, and literal forms.
func classify(part string) (Segment, bool) {
	if strings.HasPrefix(part, "+") {
		return classifyHandle(part)
	}

	if strings.HasPrefix(part, "[[") && strings.HasSuffix(part, "]]") && len(part) >= 5 {
		inner := part[2 : len(part)-2]
		// Optional and rest are mutually exclusive: [[...name]] falls
		// through and is rejected below.
		if !strings.HasPrefix(inner, "...") {
			return OptionalParam{Name: inner}, true
		}
	}

	if restParamPattern.MatchString(part) {
		return RestParam{Raw: part}, true
	}

	if m := dynamicParamPattern.FindStringSubmatch(part); m != nil {
		return DynamicParam{Name: m[1]}, true
	}

	if literalPattern.MatchString(part) {
		return Literal{Text: part}, true
	}

	return nil, false
}

// classifyHandle parses a "+name.ext" component. The name must be exactly
// +server or +page, the extension one of the recognized four, with exactly
// one dot separating them. Anything else rejects the whole path.
func classifyHandle(part string) (Segment, bool) {
	name, ext, found := strings.Cut(part, ".")
	if !found || strings.Contains(ext, ".") {
		return nil, false
	}

	if _, ok := handleExtensions[ext]; !ok {
		return nil, false
	}

	switch name {
	case "+server":
		return ServerHandle{Extension: ext}, true
	case "+page":
		return PageHandle{Extension: ext}, true
	}

	return nil, false
}

// ParseRoute parses path and requires the result to be a valid route: a
// non-empty segment sequence whose final element is a handle segment, with
// only path segments before it. Malformed paths and segment sequences that do
// not form a route both report ok == false.
func ParseRoute(path string) (Route, bool) {
	segments, ok := ParseSegments(path)
	if !ok || len(segments) == 0 {
		return Route{}, false
	}

	handle, ok := segments[len(segments)-1].(HandleSegment)
	if !ok {
		return Route{}, false
	}

	prefix := make([]PathSegment, 0, len(segments)-1)
	for _, seg := range segments[:len(segments)-1] {
		ps, ok := seg.(PathSegment)
		if !ok {
			return Route{}, false
		}
		prefix = append(prefix, ps)
	}

	return Route{Prefix: prefix, Handle: handle}, true
}
