package pg

import "errors"

var (
	ErrInvalidConnectionString = errors.New("pg: failed to parse connection string")
	ErrNotReady                = errors.New("pg: database did not become ready in time")
	ErrHealthcheckFailed       = errors.New("pg: healthcheck failed")
)
