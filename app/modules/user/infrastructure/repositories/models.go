package userdb

import (
	"time"

	"github.com/google/uuid"
	usertypes "github.com/matchday-club/predictor/app/modules/user/domain/types"
	"github.com/uptrace/bun"
)

// User is the persisted profile row. Credentials live in the external identity
// service; we only store what leaderboards and notifications display.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID         uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	Name       string    `bun:"name,notnull"`
	Email      string    `bun:"email,unique,notnull"`
	Department string    `bun:"department,nullzero"`
	CreatedAt  time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt  time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

func (u *User) toDomain() *usertypes.User {
	return &usertypes.User{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Department: u.Department,
		CreatedAt:  u.CreatedAt,
	}
}
