// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials is returned for every login failure: unknown
	// email, wrong password, or deactivated account. Callers must surface
	// the same message for all three so none of them can be told apart.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSessionNotFound is returned when a session cannot be found by ID.
	ErrSessionNotFound = errors.New("session not found")
)
