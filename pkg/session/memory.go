package session

import (
	"context"
	"sync"
	"time"
)

// MemoryProvider is the reference Provider implementation. Sessions live in
// a process-local map with no durability across restarts. For a given token
// it always hands out the same *Session instance, so concurrent requests
// sharing one browser session see each other's writes.
type MemoryProvider struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewMemoryProvider creates an empty in-memory provider.
func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{
		sessions: make(map[string]*Session),
	}
}

// Init registers a new empty session under token.
func (p *MemoryProvider) Init(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.sessions[token]; exists {
		return nil, ErrDuplicateID
	}

	sess := New(token)
	p.sessions[token] = sess
	return sess, nil
}

// Read returns the live session for token.
func (p *MemoryProvider) Read(ctx context.Context, token string) (*Session, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	sess, exists := p.sessions[token]
	if !exists {
		return nil, ErrNotFound
	}
	return sess, nil
}

// Destroy removes the session under token.
func (p *MemoryProvider) Destroy(ctx context.Context, token string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.sessions[token]; !exists {
		return ErrNotFound
	}
	delete(p.sessions, token)
	return nil
}

// GC removes every session idle for at least maxLifetime and returns the
// number removed.
func (p *MemoryProvider) GC(ctx context.Context, maxLifetime time.Duration) (int64, error) {
	cutoff := time.Now().Add(-maxLifetime)

	p.mu.Lock()
	defer p.mu.Unlock()

	var removed int64
	for token, sess := range p.sessions {
		if !sess.LastAccess().After(cutoff) {
			delete(p.sessions, token)
			removed++
		}
	}
	return removed, nil
}

// Len returns the number of live sessions.
func (p *MemoryProvider) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return len(p.sessions)
}
