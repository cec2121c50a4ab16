package cookie

import "errors"

var (
	// ErrNoSecret is returned when the manager is created without a signing secret.
	ErrNoSecret = errors.New("cookie: no signing secret provided")

	// ErrSecretTooShort is returned when a signing secret is below the minimum length.
	ErrSecretTooShort = errors.New("cookie: signing secret too short")

	// ErrCookieNotFound is returned when the request carries no cookie with the given name.
	ErrCookieNotFound = errors.New("cookie: not found")

	// ErrInvalidFormat is returned when a signed value is not in value|signature form.
	ErrInvalidFormat = errors.New("cookie: invalid signed value format")

	// ErrInvalidSignature is returned when no known secret verifies the signature.
	ErrInvalidSignature = errors.New("cookie: invalid signature")
)
