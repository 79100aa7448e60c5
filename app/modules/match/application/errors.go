package matchservice

import "errors"

var (
	// ErrMatchNotFound is returned when the referenced match does not exist.
	ErrMatchNotFound = errors.New("match not found")

	// ErrInvalidMatch is returned when match fields fail validation.
	ErrInvalidMatch = errors.New("invalid match")

	// ErrInvalidStatus is returned for an unknown lifecycle status.
	ErrInvalidStatus = errors.New("invalid match status")

	// ErrInvalidScore is returned for negative score values.
	ErrInvalidScore = errors.New("invalid score")
)
