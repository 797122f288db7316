package model

import "errors"

var (
	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrExists is returned when a uniqueness constraint would be violated.
	ErrExists = errors.New("already exists")
	// ErrAuthFailed is returned by login for any credential mismatch.
	ErrAuthFailed = errors.New("email or password wrong")
	// ErrTokenInvalid is returned for malformed, unverifiable or expired tokens.
	ErrTokenInvalid = errors.New("token invalid")
	// ErrUnauthorized is returned when an operation requires an authenticated caller.
	ErrUnauthorized = errors.New("not logged in")
	// ErrForbidden is returned when the caller lacks the required role or ownership.
	ErrForbidden = errors.New("permission denied")
	// ErrInvalidInput is returned when arguments fail validation.
	ErrInvalidInput = errors.New("invalid input")
)
