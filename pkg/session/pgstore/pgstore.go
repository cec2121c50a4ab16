// Package pgstore provides a PostgreSQL-backed session provider on top of a
// pgx connection pool. Session payloads are stored as JSONB; the GC sweep
// deletes rows idle past the lifetime threshold.
package pgstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gosessions/sessionkit/pkg/session"
)

// uniqueViolation is the SQLSTATE for a primary key conflict.
const uniqueViolation = "23505"

const schema = `
CREATE TABLE IF NOT EXISTS http_sessions (
	token       text PRIMARY KEY,
	id          uuid NOT NULL,
	data        jsonb NOT NULL DEFAULT '{}',
	created_at  timestamptz NOT NULL,
	last_access timestamptz NOT NULL
);
CREATE INDEX IF NOT EXISTS http_sessions_last_access_idx ON http_sessions (last_access);
`

// Provider implements session.Provider and session.Saver on PostgreSQL.
// Reads restore a fresh *Session per call; mutations are written back with
// Save, last-write-wins per operation.
type Provider struct {
	db *pgxpool.Pool
}

// New creates a PostgreSQL-backed provider using the given pool.
func New(db *pgxpool.Pool) *Provider {
	return &Provider{db: db}
}

// Migrate creates the session table and its sweep index.
func (p *Provider) Migrate(ctx context.Context) error {
	if _, err := p.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("pgstore: migrate: %w", err)
	}
	return nil
}

// Init registers a new empty session under token.
func (p *Provider) Init(ctx context.Context, token string) (*session.Session, error) {
	if token == "" {
		return nil, session.ErrInvalidToken
	}

	sess := session.New(token)
	snap := sess.Snapshot()

	data, err := json.Marshal(snap.Values)
	if err != nil {
		return nil, fmt.Errorf("pgstore: marshal session data: %w", err)
	}

	_, err = p.db.Exec(ctx,
		`INSERT INTO http_sessions (token, id, data, created_at, last_access) VALUES ($1, $2, $3, $4, $5)`,
		snap.Token, snap.ID, data, snap.CreatedAt, snap.LastAccess,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, session.ErrDuplicateID
		}
		return nil, fmt.Errorf("pgstore: init session: %w", err)
	}

	return sess, nil
}

// Read restores the session stored under token.
func (p *Provider) Read(ctx context.Context, token string) (*session.Session, error) {
	var (
		snap session.Snapshot
		data []byte
	)
	err := p.db.QueryRow(ctx,
		`SELECT token, id, data, created_at, last_access FROM http_sessions WHERE token = $1`,
		token,
	).Scan(&snap.Token, &snap.ID, &data, &snap.CreatedAt, &snap.LastAccess)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, session.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("pgstore: read session: %w", err)
	}

	if err := json.Unmarshal(data, &snap.Values); err != nil {
		return nil, fmt.Errorf("pgstore: unmarshal session data: %w", err)
	}

	return session.Restore(snap), nil
}

// Save writes mutated session state and its refreshed last access time back.
func (p *Provider) Save(ctx context.Context, sess *session.Session) error {
	snap := sess.Snapshot()

	data, err := json.Marshal(snap.Values)
	if err != nil {
		return fmt.Errorf("pgstore: marshal session data: %w", err)
	}

	tag, err := p.db.Exec(ctx,
		`UPDATE http_sessions SET data = $2, last_access = $3 WHERE token = $1`,
		snap.Token, data, snap.LastAccess,
	)
	if err != nil {
		return fmt.Errorf("pgstore: save session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return session.ErrNotFound
	}
	return nil
}

// Destroy removes the session row under token.
func (p *Provider) Destroy(ctx context.Context, token string) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM http_sessions WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("pgstore: destroy session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return session.ErrNotFound
	}
	return nil
}

// GC deletes every session row idle for at least maxLifetime and returns
// the number of rows removed.
func (p *Provider) GC(ctx context.Context, maxLifetime time.Duration) (int64, error) {
	cutoff := time.Now().Add(-maxLifetime)

	tag, err := p.db.Exec(ctx, `DELETE FROM http_sessions WHERE last_access <= $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("pgstore: gc: %w", err)
	}
	return tag.RowsAffected(), nil
}
