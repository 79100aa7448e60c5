package userdb

import "errors"

// Sentinel errors for the repository layer. Infrastructure signals only; the
// service layer decides whether they are domain failures.
var (
	ErrNotFound = errors.New("user not found")
)
