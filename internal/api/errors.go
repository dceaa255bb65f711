package api

import "errors"

// Access errors shared by the HTTP client and the booking workflow.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrUnauthorized    = errors.New("unauthorized")
)
