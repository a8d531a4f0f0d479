package respond

import (
	"regexp"
)

// Patterns are applied in order; the more specific Anthropic prefix must
// run before the generic OpenAI one.
var (
	anthropicKeyPattern = regexp.MustCompile(`sk-ant-[a-zA-Z0-9-_]+`)
	// Does not match already masked keys (they contain '*').
	openaiKeyPattern = regexp.MustCompile(`sk-[a-zA-Z0-9]{10,}`)
	googleKeyPattern = regexp.MustCompile(`AIza[0-9A-Za-z_-]{20,}`)
	// Query-string credentials as found in Google REST URLs.
	queryKeyPattern    = regexp.MustCompile(`([?&]key=)[^&\s"]+`)
	bearerTokenPattern = regexp.MustCompile(`(?i)(bearer\s+)[a-z0-9._~+/-]+=*`)
	// user:password@ in URLs, e.g. proxy settings surfacing in transport errors.
	urlPasswordPattern = regexp.MustCompile(`://([^:/@\s]+):([^@\s]+)@`)
)

// SanitizeError returns err's message with credentials masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return SanitizeMessage(err.Error())
}

// SanitizeMessage masks API keys, bearer tokens and URL passwords in msg.
func SanitizeMessage(msg string) string {
	msg = anthropicKeyPattern.ReplaceAllString(msg, "sk-ant-****")
	msg = openaiKeyPattern.ReplaceAllString(msg, "sk-****")
	msg = googleKeyPattern.ReplaceAllString(msg, "AIza****")
	msg = queryKeyPattern.ReplaceAllString(msg, "${1}****")
	msg = bearerTokenPattern.ReplaceAllString(msg, "${1}****")
	msg = urlPasswordPattern.ReplaceAllString(msg, "://$1:****@")
	return msg
}
