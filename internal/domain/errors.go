package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without
// leaking infrastructure details.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// ErrCodeInvalidOrExpired covers both "never issued" and "past expiry".
	// Callers are not told which, so the API does not leak whether a code
	// exists for a given number.
	ErrCodeInvalidOrExpired = errors.New("invalid or expired code")

	// ErrCodeMismatch means a live entry exists but the supplied code is
	// wrong. The entry survives so the caller may retry within the window.
	ErrCodeMismatch = errors.New("incorrect code")

	// ErrProvider wraps any failure reported by the messaging provider.
	ErrProvider = errors.New("provider error")
)
