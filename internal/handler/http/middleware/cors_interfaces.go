package middleware

// OriginValidator decides whether an origin may receive CORS headers.
//
//	validator := NewWhitelistValidator([]string{"http://localhost:3000"})
//	validator.IsAllowed("http://localhost:3000") // true
//	AnyOriginValidator{}.IsAllowed("https://x.dev") // true
type OriginValidator interface {
	// IsAllowed checks if the given origin is permitted. Empty origins are never allowed.
	IsAllowed(origin string) bool

	// GetAllowedOrigins returns the configured origins for logging.
	// Implementations return a copy, not their internal state.
	GetAllowedOrigins() []string
}

// CORSLogger is the logging interface used by the CORS middleware.
type CORSLogger interface {
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Debug(msg string, fields map[string]interface{})
}
