// Package common contains shared sentinel errors and small helpers used
// across healthtrack components. Callers should match the sentinels with
// errors.Is.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrUnauthorized = errors.New("unauthorized")

	// Presentation-boundary validation failure.
	ErrValidation = errors.New("validation error")
)
