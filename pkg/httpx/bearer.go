package httpx

import (
	"net/http"
	"strings"
)

// BearerToken extracts the token from an Authorization: Bearer header.
// Returns the empty string when the header is missing or not a bearer scheme.
func BearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}

	scheme, token, found := strings.Cut(auth, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}

	return strings.TrimSpace(token)
}
