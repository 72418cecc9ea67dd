package log

import (
	"net/http"
	"strings"
)

// Redacted is the literal substituted for sensitive header values.
const Redacted = "[...]"

// sensitive headers are matched case-insensitively; Secret-* is a prefix
// match.
var sensitiveHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true,
	"set-cookie":    true,
	"api-key":       true,
	"token":         true,
}

// IsSensitiveHeader reports whether a header's value must never be logged.
func IsSensitiveHeader(name string) bool {
	lower := strings.ToLower(name)
	if sensitiveHeaders[lower] {
		return true
	}
	return strings.HasPrefix(lower, "secret-")
}

// RedactHeaders copies headers with sensitive values replaced by [...].
// The input is never mutated; the outgoing request keeps the real values.
func RedactHeaders(headers http.Header) map[string]string {
	redacted := make(map[string]string, len(headers))
	for name, values := range headers {
		if IsSensitiveHeader(name) {
			redacted[name] = Redacted
			continue
		}
		redacted[name] = strings.Join(values, ", ")
	}
	return redacted
}
