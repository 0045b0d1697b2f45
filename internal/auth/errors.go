package auth

import "errors"

var (
	// ErrUnauthorized is returned when no valid credential was presented.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden is returned when the credential lacks the required role.
	ErrForbidden = errors.New("forbidden")
)
