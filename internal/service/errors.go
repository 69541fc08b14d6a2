package service

import "errors"

var (
	// ErrInvalidState marks an operation that cannot run against the
	// current data, like checking out an empty cart.
	ErrInvalidState = errors.New("invalid state")
	// ErrUnauthorized marks a missing, invalid or expired credential.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden marks a valid credential with an insufficient role.
	ErrForbidden = errors.New("forbidden")
)
