package domain

import "errors"

// Sentinel errors shared across services, repositories, and the HTTP layer.
// The error handler in internal/api maps each to a deterministic status code.
var (
	ErrValidation         = errors.New("validation failed")
	ErrEmailTaken         = errors.New("email already registered")
	ErrPhoneTaken         = errors.New("phone number already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrForbidden          = errors.New("access forbidden")
	ErrListingNotFound    = errors.New("listing not found")
)
