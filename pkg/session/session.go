package session

import (
	"maps"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session holds one visitor's server-side state. The token is the opaque
// identifier exchanged with the client; the ID is a stable internal identity
// that never changes for the lifetime of the session.
//
// A Session guards its own state, so value operations are safe for
// concurrent use without going through the manager's lifecycle lock.
type Session struct {
	mu         sync.RWMutex
	id         uuid.UUID
	token      string
	values     map[string]any
	createdAt  time.Time
	lastAccess time.Time
}

// New creates an empty session for the given token.
func New(token string) *Session {
	now := time.Now()
	return &Session{
		id:         uuid.New(),
		token:      token,
		values:     make(map[string]any),
		createdAt:  now,
		lastAccess: now,
	}
}

// Snapshot is a point-in-time copy of a session's state, used by providers
// that persist sessions outside process memory.
type Snapshot struct {
	ID         uuid.UUID      `json:"id"`
	Token      string         `json:"token"`
	Values     map[string]any `json:"values,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	LastAccess time.Time      `json:"last_access"`
}

// Restore rebuilds a session from a stored snapshot.
func Restore(snap Snapshot) *Session {
	values := make(map[string]any, len(snap.Values))
	maps.Copy(values, snap.Values)
	return &Session{
		id:         snap.ID,
		token:      snap.Token,
		values:     values,
		createdAt:  snap.CreatedAt,
		lastAccess: snap.LastAccess,
	}
}

// Snapshot returns a deep copy of the session state. Mutating the session
// afterwards does not affect the returned snapshot.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	values := make(map[string]any, len(s.values))
	maps.Copy(values, s.values)
	return Snapshot{
		ID:         s.id,
		Token:      s.token,
		Values:     values,
		CreatedAt:  s.createdAt,
		LastAccess: s.lastAccess,
	}
}

// ID returns the stable internal session identity.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Token returns the opaque identifier exchanged with the client.
func (s *Session) Token() string {
	return s.token
}

// Get retrieves a value and refreshes the session's last access time.
func (s *Session) Get(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastAccess = time.Now()
	val, ok := s.values[key]
	return val, ok
}

// GetString retrieves a string value.
func (s *Session) GetString(key string) (string, bool) {
	val, ok := s.Get(key)
	if !ok {
		return "", false
	}
	str, ok := val.(string)
	return str, ok
}

// GetInt retrieves an int value, converting from the numeric types a JSON
// round-trip through an external backend may produce.
func (s *Session) GetInt(key string) (int, bool) {
	val, ok := s.Get(key)
	if !ok {
		return 0, false
	}
	switch v := val.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

// GetBool retrieves a bool value.
func (s *Session) GetBool(key string) (bool, bool) {
	val, ok := s.Get(key)
	if !ok {
		return false, false
	}
	b, ok := val.(bool)
	return b, ok
}

// Set stores a value and refreshes the session's last access time.
func (s *Session) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	s.lastAccess = time.Now()
}

// Delete removes a value and refreshes the session's last access time.
func (s *Session) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	s.lastAccess = time.Now()
}

// Clear removes all values from the session.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values = make(map[string]any)
	s.lastAccess = time.Now()
}

// Len returns the number of stored values.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.values)
}

// CreatedAt returns the session creation time.
func (s *Session) CreatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.createdAt
}

// LastAccess returns the time of the most recent value operation.
// It is monotonically non-decreasing for a live session.
func (s *Session) LastAccess() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lastAccess
}
