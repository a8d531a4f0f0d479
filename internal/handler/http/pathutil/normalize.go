// Package pathutil maps request paths to bounded metric labels.
package pathutil

import (
	"strings"
)

// OtherPath is the label used for every path that is not a known route.
const OtherPath = "other"

// swaggerPrefix serves the Swagger UI assets; all of them share one label.
const swaggerPrefix = "/swagger/"

// knownPaths are the routes served by the API. Anything else, including
// scanner noise, collapses into OtherPath.
var knownPaths = map[string]struct{}{
	"/":        {},
	"/resumir": {},
	"/health":  {},
	"/ready":   {},
	"/live":    {},
	"/metrics": {},
}

// NormalizePath returns path when it is a known route and OtherPath otherwise.
// Query parameters and a trailing slash are ignored:
//
//	NormalizePath("/resumir")        // "/resumir"
//	NormalizePath("/resumir/")       // "/resumir"
//	NormalizePath("/health?full=1")  // "/health"
//	NormalizePath("/swagger/a.js")   // "/swagger"
//	NormalizePath("/wp-login.php")   // "other"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	if strings.HasPrefix(path, swaggerPrefix) {
		return "/swagger"
	}

	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	if _, ok := knownPaths[path]; ok {
		return path
	}
	return OtherPath
}

// GetExpectedCardinality returns the number of distinct path labels
// NormalizePath can produce.
func GetExpectedCardinality() int {
	return len(knownPaths) + 2
}
