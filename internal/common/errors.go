// Package common defines shared constants, sentinel errors and small helpers
// used across client and server layers of DermaSight. Callers should use
// errors.Is to match these values.
package common

import (
	"errors"
	"fmt"
)

// Error categories. Specific errors below wrap exactly one of them.
var (
	ErrValidation     = errors.New("validation error")
	ErrNotFound       = errors.New("not found")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrRemoteAnalysis = errors.New("remote analysis error")
	ErrStorage        = errors.New("storage error")
	ErrInternal       = errors.New("internal error")
)

// Account errors.
var (
	ErrDuplicateAccount   = fmt.Errorf("%w: a user with this email already exists", ErrValidation)
	ErrEmailTaken         = fmt.Errorf("%w: this email address is already in use by another account", ErrValidation)
	ErrAccountNotFound    = fmt.Errorf("%w: account", ErrNotFound)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
	ErrInvalidCode        = fmt.Errorf("%w: invalid reset code", ErrUnauthorized)
	ErrCodeExpired        = fmt.Errorf("%w: reset code has expired, please request a new one", ErrUnauthorized)
)

// Session errors.
var (
	ErrInvalidToken   = fmt.Errorf("%w: invalid token", ErrUnauthorized)
	ErrSessionExpired = fmt.Errorf("%w: session expired", ErrUnauthorized)
)

// Case errors.
var (
	ErrCaseNotFound = fmt.Errorf("%w: case", ErrNotFound)
)

// Validation returns an ErrValidation carrying a user-facing message.
func Validation(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}
