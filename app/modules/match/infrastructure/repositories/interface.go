package matchdb

import (
	"context"

	"github.com/google/uuid"
	matchtypes "github.com/matchday-club/predictor/app/modules/match/domain/types"
)

// Repository defines the persistence contract for matches.
//
// Error semantics:
//   - ErrNotFound: requested record does not exist
//   - ErrNoRowsAffected: UPDATE/DELETE matched no rows
//   - other errors: infrastructure failures
type Repository interface {
	GetMatch(ctx context.Context, id uuid.UUID) (*matchtypes.Match, error)
	ListMatches(ctx context.Context, filter matchtypes.MatchFilter) ([]matchtypes.Match, int, error)
	ListLiveMatches(ctx context.Context) ([]matchtypes.Match, error)
	CreateMatch(ctx context.Context, match *matchtypes.Match) error
	UpdateMatch(ctx context.Context, id uuid.UUID, fields MatchUpdateFields) (*matchtypes.Match, error)
	DeleteMatch(ctx context.Context, id uuid.UUID) error
}
