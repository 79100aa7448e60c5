package predictiondb

import "errors"

// Sentinel errors for the repository layer.
var (
	// ErrNotFound indicates the requested prediction does not exist.
	ErrNotFound = errors.New("prediction not found")

	// ErrDuplicate indicates the (user_id, match_id) unique index rejected an
	// insert. Surfaces the store-level conflict guard to the service layer.
	ErrDuplicate = errors.New("prediction already exists for this user and match")

	// ErrNoRowsAffected indicates an UPDATE or DELETE matched no rows.
	ErrNoRowsAffected = errors.New("no rows affected")
)
