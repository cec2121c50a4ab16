package session

import (
	"net/http"
	"strings"
	"time"
)

// HeaderTransport delivers session tokens in an HTTP header, for API clients
// that do not carry cookies.
type HeaderTransport struct {
	name   string
	prefix string
}

// HeaderOption is a functional option for HeaderTransport.
type HeaderOption func(*HeaderTransport)

// WithHeaderPrefix overrides the default "Bearer " value prefix.
func WithHeaderPrefix(prefix string) HeaderOption {
	return func(t *HeaderTransport) {
		t.prefix = prefix
	}
}

// NewHeaderTransport creates a header-based transport.
func NewHeaderTransport(name string, opts ...HeaderOption) *HeaderTransport {
	t := &HeaderTransport{
		name:   name,
		prefix: "Bearer ",
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Token extracts the session token from the header.
func (t *HeaderTransport) Token(r *http.Request) (string, error) {
	value := r.Header.Get(t.name)
	if value == "" {
		return "", ErrNotFound
	}
	return strings.TrimPrefix(value, t.prefix), nil
}

// SetToken sends the session token in the response header, with a companion
// header announcing the expiry time.
func (t *HeaderTransport) SetToken(w http.ResponseWriter, token string, ttl time.Duration) error {
	w.Header().Set(t.name, t.prefix+token)
	if ttl > 0 {
		w.Header().Set(t.name+"-Expires", time.Now().Add(ttl).Format(time.RFC3339))
	}
	return nil
}

// ClearToken removes the session headers from the response.
func (t *HeaderTransport) ClearToken(w http.ResponseWriter) error {
	w.Header().Del(t.name)
	w.Header().Del(t.name + "-Expires")
	return nil
}
