package session

import (
	"net/http"
	"time"

	"github.com/gosessions/sessionkit/pkg/cookie"
)

// CookieTransport delivers session tokens in an HMAC-signed cookie. A cookie
// that fails signature verification reads as absent, so a tampered token
// degrades to a fresh session instead of failing the request.
type CookieTransport struct {
	cookies *cookie.Manager
	name    string
	secure  bool
	options []cookie.Option
}

// NewCookieTransport creates a cookie-based transport. Extra options are
// applied after the session defaults and may override them.
func NewCookieTransport(cookies *cookie.Manager, name string, secure bool, opts ...cookie.Option) *CookieTransport {
	return &CookieTransport{
		cookies: cookies,
		name:    name,
		secure:  secure,
		options: opts,
	}
}

// Token extracts and verifies the session token from the cookie.
func (t *CookieTransport) Token(r *http.Request) (string, error) {
	token, err := t.cookies.GetSigned(r, t.name)
	if err != nil {
		return "", ErrNotFound
	}
	return token, nil
}

// SetToken stores the signed session token in a cookie scoped to the whole
// site and hidden from scripts.
func (t *CookieTransport) SetToken(w http.ResponseWriter, token string, ttl time.Duration) error {
	opts := []cookie.Option{
		cookie.WithPath("/"),
		cookie.WithMaxAge(int(ttl.Seconds())),
		cookie.WithHTTPOnly(true),
		cookie.WithSameSite(http.SameSiteLaxMode),
	}
	if t.secure {
		opts = append(opts, cookie.WithSecure(true))
	}
	opts = append(opts, t.options...)

	return t.cookies.SetSigned(w, t.name, token, opts...)
}

// ClearToken expires the session cookie immediately.
func (t *CookieTransport) ClearToken(w http.ResponseWriter) error {
	t.cookies.Delete(w, t.name)
	return nil
}
