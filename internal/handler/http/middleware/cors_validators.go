package middleware

import (
	"strings"
)

// WildcardOrigin in the allowed-origins list allows every origin.
const WildcardOrigin = "*"

// WhitelistValidator implements exact-match origin validation.
// Comparison ignores case and a trailing slash.
type WhitelistValidator struct {
	allowedOrigins []string
}

// NewWhitelistValidator creates a WhitelistValidator. Blank entries are dropped;
// the rest are lowercased and stripped of a trailing slash.
func NewWhitelistValidator(origins []string) *WhitelistValidator {
	normalized := make([]string, 0, len(origins))
	for _, origin := range origins {
		if origin = normalizeOrigin(origin); origin != "" {
			normalized = append(normalized, origin)
		}
	}

	return &WhitelistValidator{
		allowedOrigins: normalized,
	}
}

// IsAllowed checks if the given origin is in the whitelist.
func (v *WhitelistValidator) IsAllowed(origin string) bool {
	origin = normalizeOrigin(origin)
	if origin == "" {
		return false
	}

	for _, allowed := range v.allowedOrigins {
		if origin == allowed {
			return true
		}
	}
	return false
}

// GetAllowedOrigins returns a copy of the allowed origins list.
func (v *WhitelistValidator) GetAllowedOrigins() []string {
	out := make([]string, len(v.allowedOrigins))
	copy(out, v.allowedOrigins)
	return out
}

func normalizeOrigin(origin string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(origin)), "/")
}

// AnyOriginValidator allows every non-empty origin.
type AnyOriginValidator struct{}

// IsAllowed reports whether origin is non-empty.
func (AnyOriginValidator) IsAllowed(origin string) bool {
	return strings.TrimSpace(origin) != ""
}

// GetAllowedOrigins returns []string{"*"}.
func (AnyOriginValidator) GetAllowedOrigins() []string {
	return []string{WildcardOrigin}
}
