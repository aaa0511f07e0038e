// Package usecase implements the business logic for the listings feature.
package usecase

import "errors"

// ErrNotFound is returned when no property exists with the requested ID.
var ErrNotFound = errors.New("property not found")
