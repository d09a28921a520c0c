// Package common defines shared constants, identifiers and errors used across
// the Noteful server layers. Callers should use errors.Is / errors.As to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Kinds of request errors reported to clients. Every *Error wraps one of them.
	ErrMissingField          = errors.New("missing field")
	ErrInvalidFormat         = errors.New("invalid format")
	ErrInvalidReference      = errors.New("invalid reference")
	ErrUnauthorizedReference = errors.New("unauthorized reference")
	ErrDuplicateName         = errors.New("duplicate name")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrUnauthenticated       = errors.New("unauthenticated")
	ErrValidation            = errors.New("validation error")
)
