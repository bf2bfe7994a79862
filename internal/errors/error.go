// Package errors provides custom error types for catalog operations.
package errors

import "errors"

var (
	// ErrEntryNotFound reports a soft not-found: the referenced catalog
	// entry has vanished (e.g. stale client state).
	ErrEntryNotFound = errors.New("catalog entry not found")

	// Validation errors. A failed submission never mutates the catalog.
	ErrNameRequired  = errors.New("name must not be empty")
	ErrPriceRequired = errors.New("price must not be empty")
	ErrPriceInvalid  = errors.New("price must be a non-negative number")
)
