package session

import "errors"

var (
	// ErrNotFound indicates no session exists for the given token.
	ErrNotFound = errors.New("session.not_found")

	// ErrDuplicateID indicates a provider was asked to create a session
	// under a token that is already taken. With crypto-random tokens this
	// is practically unreachable and treated as an invariant violation.
	ErrDuplicateID = errors.New("session.duplicate_id")

	// ErrTokenGeneration indicates the entropy source failed.
	ErrTokenGeneration = errors.New("session.token_generation_failed")

	// ErrInvalidToken indicates an empty or malformed session token.
	ErrInvalidToken = errors.New("session.invalid_token")

	// ErrUnknownBackend indicates the registry has no provider registered
	// under the requested backend name.
	ErrUnknownBackend = errors.New("session.unknown_backend")

	// ErrNoTransport indicates no transport is configured on the manager.
	ErrNoTransport = errors.New("session.no_transport")
)
