package session

import (
	"net/http"
	"time"
)

// Transport defines how session tokens travel between client and server.
// The core treats the token as an opaque string; wire encoding is the
// transport's concern.
type Transport interface {
	// Token extracts the session token from the request.
	Token(r *http.Request) (string, error)

	// SetToken writes a set-token instruction to the response.
	SetToken(w http.ResponseWriter, token string, ttl time.Duration) error

	// ClearToken writes an expire-token instruction to the response.
	ClearToken(w http.ResponseWriter) error
}
