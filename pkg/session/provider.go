package session

import (
	"context"
	"time"
)

// Provider is a pluggable storage backend owning the authoritative store of
// live sessions, keyed by token. Implementations must be safe for concurrent
// use; the manager serializes only identifier-lifecycle decisions, not
// provider internals.
type Provider interface {
	// Init allocates and registers a new empty session under token.
	// Returns ErrDuplicateID if the token is already taken.
	Init(ctx context.Context, token string) (*Session, error)

	// Read returns the live session for token, or ErrNotFound. Read never
	// creates on miss; deciding whether a miss degrades to a fresh session
	// is the caller's responsibility.
	Read(ctx context.Context, token string) (*Session, error)

	// Destroy removes the session. Returns ErrNotFound when no session
	// exists under token, which callers may treat as success.
	Destroy(ctx context.Context, token string) error

	// GC removes every session whose last access is at least maxLifetime
	// in the past and returns the number removed. It must be safe to run
	// concurrently with operations on unrelated tokens; an access racing
	// the sweep's decision for the same token may be evicted or spared.
	GC(ctx context.Context, maxLifetime time.Duration) (int64, error)
}

// Saver is implemented by providers that persist sessions outside process
// memory and need an explicit write-back of mutated session state. The
// in-memory provider hands out live objects and does not implement it.
type Saver interface {
	Save(ctx context.Context, sess *Session) error
}
