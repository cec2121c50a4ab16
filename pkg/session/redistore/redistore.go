// Package redistore provides a Redis-backed session provider. Sessions are
// stored as JSON snapshots with a server-side TTL, so Redis itself expires
// idle sessions and the GC sweep has nothing left to do.
package redistore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gosessions/sessionkit/pkg/session"
)

// defaultKeyPrefix namespaces session keys in a shared Redis database.
const defaultKeyPrefix = "session:"

// Provider implements session.Provider and session.Saver on top of Redis.
// Each Read returns a freshly restored *Session; mutations are written back
// with Save, last-write-wins per operation.
type Provider struct {
	client      redis.UniversalClient
	prefix      string
	maxLifetime time.Duration
}

// Option is a functional option for the Redis provider.
type Option func(*Provider)

// WithKeyPrefix overrides the "session:" key namespace.
func WithKeyPrefix(prefix string) Option {
	return func(p *Provider) {
		p.prefix = prefix
	}
}

// New creates a Redis-backed provider. maxLifetime sets the server-side TTL
// applied on create and refreshed on every write-back; it should match the
// manager's MaxLifetime so client expiry and storage expiry agree.
func New(client redis.UniversalClient, maxLifetime time.Duration, opts ...Option) *Provider {
	p := &Provider{
		client:      client,
		prefix:      defaultKeyPrefix,
		maxLifetime: maxLifetime,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Provider) key(token string) string {
	return p.prefix + token
}

// Init registers a new empty session under token.
func (p *Provider) Init(ctx context.Context, token string) (*session.Session, error) {
	if token == "" {
		return nil, session.ErrInvalidToken
	}

	sess := session.New(token)
	data, err := json.Marshal(sess.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("redistore: marshal session: %w", err)
	}

	ok, err := p.client.SetNX(ctx, p.key(token), data, p.maxLifetime).Result()
	if err != nil {
		return nil, fmt.Errorf("redistore: init session: %w", err)
	}
	if !ok {
		return nil, session.ErrDuplicateID
	}
	return sess, nil
}

// Read restores the session stored under token and slides its TTL.
func (p *Provider) Read(ctx context.Context, token string) (*session.Session, error) {
	data, err := p.client.Get(ctx, p.key(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, session.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redistore: read session: %w", err)
	}

	var snap session.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("redistore: unmarshal session: %w", err)
	}

	// Resuming counts as activity: slide the server-side expiry.
	if err := p.client.Expire(ctx, p.key(token), p.maxLifetime).Err(); err != nil {
		return nil, fmt.Errorf("redistore: refresh ttl: %w", err)
	}

	return session.Restore(snap), nil
}

// Save writes mutated session state back and slides the TTL.
func (p *Provider) Save(ctx context.Context, sess *session.Session) error {
	data, err := json.Marshal(sess.Snapshot())
	if err != nil {
		return fmt.Errorf("redistore: marshal session: %w", err)
	}

	if err := p.client.Set(ctx, p.key(sess.Token()), data, p.maxLifetime).Err(); err != nil {
		return fmt.Errorf("redistore: save session: %w", err)
	}
	return nil
}

// Destroy removes the session stored under token.
func (p *Provider) Destroy(ctx context.Context, token string) error {
	n, err := p.client.Del(ctx, p.key(token)).Result()
	if err != nil {
		return fmt.Errorf("redistore: destroy session: %w", err)
	}
	if n == 0 {
		return session.ErrNotFound
	}
	return nil
}

// GC is a no-op: Redis expires session keys server-side, so no session
// outlives maxLifetime without activity.
func (p *Provider) GC(ctx context.Context, maxLifetime time.Duration) (int64, error) {
	return 0, nil
}
