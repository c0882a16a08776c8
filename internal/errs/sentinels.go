// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/service layers.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a unique constraint violation (e.g., email taken).
	ErrAlreadyExists = errors.New("already exists")

	// ErrUnauthorized indicates failed authentication (bad credentials or unknown account).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidInput indicates missing or malformed request fields.
	ErrInvalidInput = errors.New("invalid input")

	// ErrOTPNotFound indicates no reset code was issued for the email (or it was consumed).
	ErrOTPNotFound = errors.New("otp not found")

	// ErrOTPInvalid indicates the reset code did not match or its window has passed.
	ErrOTPInvalid = errors.New("otp invalid or expired")
)
