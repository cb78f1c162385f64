package services

import "errors"

var (
	// ErrMissingFields is returned when a request omits a required field.
	ErrMissingFields = errors.New("missing required fields")

	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("not found")
)
