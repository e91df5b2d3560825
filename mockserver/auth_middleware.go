package mockserver

import (
	"net/http"
	"strings"
)

// bearerToken extracts the Bearer token from the Authorization header.
// ok is false when there is no Authorization header at all.
func bearerToken(r *http.Request) (token string, ok bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", true
	}
	return strings.TrimSpace(parts[1]), true
}
