package auth

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("resource conflict")
)

// ErrInvalidToken indicates the token failed validation (bad signature,
// malformed structure, wrong issuer or audience).
var ErrInvalidToken = errors.New("invalid token")

// ErrTokenExpired indicates the token was valid once but its lifetime passed.
var ErrTokenExpired = errors.New("token expired")
