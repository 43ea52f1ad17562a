package domain

import "errors"

// Error taxonomy roots. Per-service sentinels wrap one of these four with
// fmt.Errorf("%w: ...") so handlers can map onto HTTP statuses with errors.Is.
var (
	ErrValidation  = errors.New("validation error")
	ErrNotFound    = errors.New("not found")
	ErrConstraint  = errors.New("constraint violation")
	ErrPersistence = errors.New("persistence error")
)

// Auth errors
var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
)
