package matchdb

import "errors"

// Sentinel errors for the repository layer.
var (
	// ErrNotFound indicates the requested match does not exist.
	ErrNotFound = errors.New("match not found")

	// ErrNoRowsAffected indicates an UPDATE or DELETE matched no rows.
	ErrNoRowsAffected = errors.New("no rows affected")
)
