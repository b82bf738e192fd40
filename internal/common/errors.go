// Package common defines shared constants and sentinel errors used across
// client and server layers of waterbill. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")
	ErrorConflict = errors.New("conflict")

	// Service-level errors.
	ErrorInternal          = errors.New("internal error")
	ErrorUnauthorized      = errors.New("unauthorized")
	ErrorForbidden         = errors.New("forbidden")
	ErrorInvalidCredential = errors.New("invalid credentials")
	ErrorValidation        = errors.New("validation error")

	// ErrTransportFailure marks a failed mail delivery. Batch dispatch records
	// it per item instead of returning it.
	ErrTransportFailure = errors.New("transport failure")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
