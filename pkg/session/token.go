package session

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
)

// tokenBytes is the raw entropy per token. 32 bytes (256 bits) keeps the
// collision probability negligible without any retry-on-collision logic.
const tokenBytes = 32

// NewToken generates a cryptographically secure session token encoded as a
// URL-safe base64 string without padding. It fails only if the system
// entropy source is unavailable; callers must treat the error as fatal for
// the current request rather than issue an unidentified session.
func NewToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
