package userdb

import (
	"context"

	"github.com/google/uuid"
	usertypes "github.com/matchday-club/predictor/app/modules/user/domain/types"
)

// Repository defines the persistence contract for user profiles.
//
// Error semantics:
//   - ErrNotFound: requested record does not exist
//   - other errors: infrastructure failures
type Repository interface {
	GetUser(ctx context.Context, id uuid.UUID) (*usertypes.User, error)
	ListUsers(ctx context.Context) ([]usertypes.User, error)
	CreateUser(ctx context.Context, user *usertypes.User) error
}
