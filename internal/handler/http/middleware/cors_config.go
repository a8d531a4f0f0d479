package middleware

import (
	"fmt"
	"net/url"
	"strings"
)

// Settings is the raw CORS policy as read from configuration.
type Settings struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

// validMethods are the HTTP methods accepted in AllowedMethods.
var validMethods = map[string]bool{
	"GET":     true,
	"HEAD":    true,
	"POST":    true,
	"PUT":     true,
	"DELETE":  true,
	"PATCH":   true,
	"OPTIONS": true,
}

// NewCORSConfig validates s and builds a CORSConfig.
// A "*" entry in AllowedOrigins selects AnyOriginValidator; otherwise every
// origin must be a bare http(s) scheme://host[:port].
func NewCORSConfig(s Settings, logger CORSLogger) (*CORSConfig, error) {
	validator, err := newValidator(s.AllowedOrigins)
	if err != nil {
		return nil, fmt.Errorf("failed to load allowed origins: %w", err)
	}

	methods, err := normalizeMethods(s.AllowedMethods)
	if err != nil {
		return nil, fmt.Errorf("failed to load allowed methods: %w", err)
	}

	headers := trimNonEmpty(s.AllowedHeaders)
	if len(headers) == 0 {
		return nil, fmt.Errorf("failed to load allowed headers: at least one header must be configured")
	}

	if s.MaxAge < 0 {
		return nil, fmt.Errorf("failed to load max age: must be non-negative, got %d", s.MaxAge)
	}

	if logger != nil {
		logger.Info("CORS configured", map[string]interface{}{
			"allowed_origins":   validator.GetAllowedOrigins(),
			"allowed_methods":   methods,
			"allow_credentials": s.AllowCredentials,
			"max_age":           s.MaxAge,
		})
	}

	return &CORSConfig{
		AllowedMethods:   methods,
		AllowedHeaders:   headers,
		AllowCredentials: s.AllowCredentials,
		MaxAge:           s.MaxAge,
		Validator:        validator,
		Logger:           logger,
	}, nil
}

func newValidator(origins []string) (OriginValidator, error) {
	origins = trimNonEmpty(origins)
	if len(origins) == 0 {
		return nil, fmt.Errorf("at least one origin must be configured")
	}

	for _, o := range origins {
		if o == WildcardOrigin {
			return AnyOriginValidator{}, nil
		}
	}

	for _, o := range origins {
		if err := validateOrigin(o); err != nil {
			return nil, err
		}
	}
	return NewWhitelistValidator(origins), nil
}

func validateOrigin(origin string) error {
	u, err := url.Parse(origin)
	if err != nil {
		return fmt.Errorf("invalid origin URL '%s': %w", origin, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("origin must use http or https scheme: %s", origin)
	}
	if u.Host == "" {
		return fmt.Errorf("origin must include a host: %s", origin)
	}
	if u.Path != "" {
		return fmt.Errorf("origin must not include path: %s", origin)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("origin must not include query string or fragment: %s", origin)
	}
	return nil
}

func normalizeMethods(in []string) ([]string, error) {
	methods := make([]string, 0, len(in))
	for _, m := range trimNonEmpty(in) {
		m = strings.ToUpper(m)
		if !validMethods[m] {
			return nil, fmt.Errorf("invalid HTTP method '%s'", m)
		}
		methods = append(methods, m)
	}
	if len(methods) == 0 {
		return nil, fmt.Errorf("at least one HTTP method must be configured")
	}
	return methods, nil
}

func trimNonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
