package storage

import "errors"

// Typed errors for the handler layer. Store-level failures are mapped onto
// these instead of leaking driver error text to the client.
var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrConstraint         = errors.New("constraint violation")
	ErrNotFound           = errors.New("record not found")
	ErrNotOwner           = errors.New("record owned by another user")
)
