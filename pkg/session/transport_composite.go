package session

import (
	"net/http"
	"time"
)

// CompositeTransport reads the token from the first transport that yields
// one and writes through all of them, so browser and API clients can share
// one manager.
type CompositeTransport struct {
	transports []Transport
}

// NewCompositeTransport combines transports in lookup order.
func NewCompositeTransport(transports ...Transport) *CompositeTransport {
	return &CompositeTransport{transports: transports}
}

// Token returns the token from the first transport that carries one.
func (t *CompositeTransport) Token(r *http.Request) (string, error) {
	for _, transport := range t.transports {
		if token, err := transport.Token(r); err == nil && token != "" {
			return token, nil
		}
	}
	return "", ErrNotFound
}

// SetToken writes the token through every transport.
func (t *CompositeTransport) SetToken(w http.ResponseWriter, token string, ttl time.Duration) error {
	var lastErr error
	for _, transport := range t.transports {
		if err := transport.SetToken(w, token, ttl); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// ClearToken expires the token through every transport.
func (t *CompositeTransport) ClearToken(w http.ResponseWriter) error {
	var lastErr error
	for _, transport := range t.transports {
		if err := transport.ClearToken(w); err != nil {
			lastErr = err
		}
	}
	return lastErr
}
