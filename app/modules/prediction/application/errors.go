package predictionservice

import "errors"

// Domain failures surfaced to callers. All are terminal validation failures
// for the request; none are retryable.
var (
	// ErrMatchNotFound is returned when the referenced match does not exist.
	ErrMatchNotFound = errors.New("match not found")

	// ErrPredictionNotFound is returned when the referenced prediction does not exist.
	ErrPredictionNotFound = errors.New("prediction not found")

	// ErrDuplicatePrediction is returned when the user already has a prediction
	// for the match.
	ErrDuplicatePrediction = errors.New("prediction already exists for this match")

	// ErrGateLocked is returned when the match has kicked off and predictions
	// can no longer be created, edited, or deleted.
	ErrGateLocked = errors.New("predictions are locked: match has kicked off")

	// ErrNotOwner is returned when a caller tries to mutate someone else's
	// prediction.
	ErrNotOwner = errors.New("prediction belongs to another user")

	// ErrInvalidGoals is returned when goal values fall outside the configured
	// bound.
	ErrInvalidGoals = errors.New("invalid goal values")
)
