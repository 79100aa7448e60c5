package usertypes

import (
	"time"

	"github.com/google/uuid"
)

// User is the thin profile the pool needs: authentication itself lives in an
// external identity service, we only mirror the fields shown on leaderboards.
type User struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
}
