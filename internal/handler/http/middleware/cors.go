// Package middleware provides the cross-origin (CORS) policy of the API.
package middleware

import (
	"net/http"
	"strconv"
	"strings"
)

// CORSConfig holds the configuration for CORS middleware.
type CORSConfig struct {
	// AllowedMethods specifies which HTTP methods are allowed in CORS requests.
	AllowedMethods []string

	// AllowedHeaders specifies which request headers are allowed in CORS requests.
	AllowedHeaders []string

	// AllowCredentials adds Access-Control-Allow-Credentials: true to allowed responses.
	AllowCredentials bool

	// MaxAge specifies how long preflight results can be cached (in seconds).
	MaxAge int

	// Validator decides which origins receive CORS headers.
	Validator OriginValidator

	// Logger receives policy violations and preflight traces. May be nil.
	Logger CORSLogger
}

// CORS returns an HTTP middleware that handles CORS for cross-origin requests.
//
// Behavior:
//   - Requests without an Origin header pass through untouched.
//   - Disallowed origins pass through without CORS headers; the browser blocks the response.
//   - Allowed origins get the origin echoed back with Vary: Origin.
//   - Preflight OPTIONS requests from allowed origins are answered with 204
//     and never reach the next handler.
func CORS(config CORSConfig) func(http.Handler) http.Handler {
	methods := strings.Join(config.AllowedMethods, ", ")
	headers := strings.Join(config.AllowedHeaders, ", ")
	maxAge := strconv.Itoa(config.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Add("Vary", "Origin")

			if !config.Validator.IsAllowed(origin) {
				if config.Logger != nil {
					config.Logger.Warn("CORS: origin not allowed", map[string]interface{}{
						"origin":      origin,
						"path":        r.URL.Path,
						"method":      r.Method,
						"remote_addr": r.RemoteAddr,
					})
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			if config.AllowCredentials {
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}

			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", methods)
				w.Header().Set("Access-Control-Allow-Headers", headers)
				w.Header().Set("Access-Control-Max-Age", maxAge)

				if config.Logger != nil {
					config.Logger.Debug("CORS: preflight request", map[string]interface{}{
						"origin":            origin,
						"requested_method":  r.Header.Get("Access-Control-Request-Method"),
						"requested_headers": r.Header.Get("Access-Control-Request-Headers"),
					})
				}

				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
