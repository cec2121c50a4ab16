package session

import "time"

// Config holds session manager configuration.
type Config struct {
	// Backend selects a provider registered in the Registry (default: "memory")
	Backend string `env:"SESSION_BACKEND" envDefault:"memory"`

	// TokenName is the cookie or header name carrying the session token
	TokenName string `env:"SESSION_TOKEN_NAME" envDefault:"sid"`

	// MaxLifetime governs both the client-side token expiry and the
	// server-side idle threshold used by the GC sweep
	MaxLifetime time.Duration `env:"SESSION_MAX_LIFETIME" envDefault:"24h"`

	// GCInterval is the sweep cadence (0 = same as MaxLifetime)
	GCInterval time.Duration `env:"SESSION_GC_INTERVAL" envDefault:"0"`

	// SecureCookies enables the Secure flag on session cookies
	SecureCookies bool `env:"SESSION_SECURE_COOKIES" envDefault:"false"`
}

// DefaultConfig returns default session configuration.
func DefaultConfig() Config {
	return Config{
		Backend:       "memory",
		TokenName:     "sid",
		MaxLifetime:   24 * time.Hour,
		GCInterval:    0,
		SecureCookies: false,
	}
}

// gcInterval returns the effective sweep cadence. The sweep defaults to the
// session lifetime but can be tuned independently.
func (c Config) gcInterval() time.Duration {
	if c.GCInterval > 0 {
		return c.GCInterval
	}
	return c.MaxLifetime
}
