package session

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// Manager is the facade over one configured provider and one transport. It
// resolves the current visitor's session from the transport token, creating
// a fresh one when the token is absent or stale, and owns the background GC
// sweep. One Manager is created per application at startup.
//
// The manager's mutex serializes only identifier-lifecycle transitions
// (create, resume, destroy, sweep). Value operations on a resolved *Session
// are guarded by the session itself, so request traffic is not funneled
// through a single critical section.
type Manager struct {
	mu        sync.Mutex
	provider  Provider
	transport Transport
	config    Config
	log       *slog.Logger

	cookies   *cookieDeps
	done      chan struct{}
	gcOnce    sync.Once
	closeOnce sync.Once
}

// NewManager creates a manager, resolving the configured backend through the
// registry unless a provider is set explicitly via WithProvider. A transport
// must be configured, either directly or through WithCookieManager.
func NewManager(registry *Registry, opts ...Option) (*Manager, error) {
	m := &Manager{
		config: DefaultConfig(),
		done:   make(chan struct{}),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.log == nil {
		m.log = slog.Default()
	}

	if m.provider == nil {
		if registry == nil {
			return nil, errors.New("session: nil registry and no explicit provider")
		}
		provider, err := registry.Resolve(m.config.Backend)
		if err != nil {
			return nil, err
		}
		m.provider = provider
	}

	if m.transport == nil {
		if m.cookies == nil {
			return nil, ErrNoTransport
		}
		m.transport = NewCookieTransport(m.cookies.manager, m.config.TokenName, m.config.SecureCookies, m.cookies.options...)
	}

	return m, nil
}

// Start resolves the current visitor's session. A valid token resumes the
// existing session; an absent, empty, or stale token degrades to a fresh
// session under a newly generated token, with a set-token instruction
// written to the response. Start fails only on token generation or backend
// errors, never because a token went stale.
func (m *Manager) Start(ctx context.Context, w http.ResponseWriter, r *http.Request) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if token, err := m.transport.Token(r); err == nil && token != "" {
		sess, err := m.provider.Read(ctx, token)
		if err == nil {
			return sess, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
	}

	return m.create(ctx, w)
}

// create generates a token, registers a session under it, and instructs the
// transport to deliver the token. Callers must hold m.mu.
func (m *Manager) create(ctx context.Context, w http.ResponseWriter) (*Session, error) {
	token, err := NewToken()
	if err != nil {
		return nil, err
	}

	sess, err := m.provider.Init(ctx, token)
	if err != nil {
		return nil, err
	}

	if err := m.transport.SetToken(w, token, m.config.MaxLifetime); err != nil {
		_ = m.provider.Destroy(ctx, token)
		return nil, err
	}

	return sess, nil
}

// Destroy tears down the visitor's session and expires the client token.
// It is a no-op without a valid token and idempotent otherwise; a session
// that is already gone is not an error.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	token, err := m.transport.Token(r)
	if err != nil || token == "" {
		return nil
	}

	m.mu.Lock()
	if err := m.provider.Destroy(ctx, token); err != nil && !errors.Is(err, ErrNotFound) {
		// Destruction is best-effort; the token is expired regardless.
		m.log.ErrorContext(ctx, "session: destroy failed", slog.Any("error", err))
	}
	m.mu.Unlock()

	return m.transport.ClearToken(w)
}

// Save writes mutated session state back to backends that persist outside
// process memory. It is a no-op for the in-memory provider.
func (m *Manager) Save(ctx context.Context, sess *Session) error {
	if saver, ok := m.provider.(Saver); ok {
		return saver.Save(ctx, sess)
	}
	return nil
}

// Lookup returns the session for the request's token without creating one
// on miss and without touching the response.
func (m *Manager) Lookup(ctx context.Context, r *http.Request) (*Session, error) {
	token, err := m.transport.Token(r)
	if err != nil || token == "" {
		return nil, ErrNotFound
	}
	return m.provider.Read(ctx, token)
}

// MaxLifetime returns the configured session lifetime.
func (m *Manager) MaxLifetime() time.Duration {
	return m.config.MaxLifetime
}
