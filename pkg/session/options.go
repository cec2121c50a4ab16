package session

import (
	"log/slog"
	"time"

	"github.com/gosessions/sessionkit/pkg/cookie"
)

// Option is a functional option for configuring the Manager.
type Option func(*Manager)

// cookieDeps carries the cookie manager used to build the default cookie
// transport when no explicit transport is configured.
type cookieDeps struct {
	manager *cookie.Manager
	options []cookie.Option
}

// WithConfig sets the full configuration.
func WithConfig(config Config) Option {
	return func(m *Manager) {
		m.config = config
	}
}

// WithProvider sets the provider directly, bypassing registry resolution.
func WithProvider(provider Provider) Option {
	return func(m *Manager) {
		m.provider = provider
	}
}

// WithTransport sets a custom token transport.
func WithTransport(transport Transport) Option {
	return func(m *Manager) {
		m.transport = transport
	}
}

// WithCookieManager sets the cookie manager for the default cookie transport.
func WithCookieManager(mgr *cookie.Manager, opts ...cookie.Option) Option {
	return func(m *Manager) {
		m.cookies = &cookieDeps{manager: mgr, options: opts}
	}
}

// WithLogger sets the logger used for GC sweeps and best-effort failures.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		m.log = log
	}
}

// WithTokenName sets the cookie or header name carrying the session token.
func WithTokenName(name string) Option {
	return func(m *Manager) {
		m.config.TokenName = name
	}
}

// WithMaxLifetime sets the session lifetime governing both the client token
// expiry and the GC idle threshold.
func WithMaxLifetime(d time.Duration) Option {
	return func(m *Manager) {
		m.config.MaxLifetime = d
	}
}

// WithGCInterval decouples the sweep cadence from the session lifetime.
func WithGCInterval(d time.Duration) Option {
	return func(m *Manager) {
		m.config.GCInterval = d
	}
}
