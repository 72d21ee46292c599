package auth

import (
	"net/http"
	"strings"

	"teamboard/internal/constants"
)

// Extractor pulls a raw token from a request, "" when absent
type Extractor func(r *http.Request) string

// CookieExtractor reads the named cookie
func CookieExtractor(name string) Extractor {
	return func(r *http.Request) string {
		c, err := r.Cookie(name)
		if err != nil {
			return ""
		}
		return c.Value
	}
}

// BearerExtractor reads "Authorization: Bearer <token>"; the scheme is
// case-insensitive
func BearerExtractor() Extractor {
	return func(r *http.Request) string {
		parts := strings.Fields(r.Header.Get("Authorization"))
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return ""
		}
		return parts[1]
	}
}

// DefaultExtractors tries the auth cookie before the Authorization header.
// Clients depend on this order.
func DefaultExtractors() []Extractor {
	return []Extractor{
		CookieExtractor(constants.AuthCookieName),
		BearerExtractor(),
	}
}

// Extract returns the first non-empty token
func Extract(r *http.Request, extractors []Extractor) string {
	for _, ex := range extractors {
		if tok := ex(r); tok != "" {
			return tok
		}
	}
	return ""
}
