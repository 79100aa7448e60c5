package userdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	usertypes "github.com/matchday-club/predictor/app/modules/user/domain/types"
	"github.com/uptrace/bun"
)

// UserDBImpl is the bun-backed user repository.
type UserDBImpl struct {
	DB *bun.DB
}

var _ Repository = (*UserDBImpl)(nil)

func (db *UserDBImpl) GetUser(ctx context.Context, id uuid.UUID) (*usertypes.User, error) {
	user := new(User)
	err := db.DB.NewSelect().
		Model(user).
		Where("u.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch user %s: %w", id, err)
	}
	return user.toDomain(), nil
}

func (db *UserDBImpl) ListUsers(ctx context.Context) ([]usertypes.User, error) {
	var rows []User
	err := db.DB.NewSelect().
		Model(&rows).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]usertypes.User, 0, len(rows))
	for i := range rows {
		users = append(users, *rows[i].toDomain())
	}
	return users, nil
}

func (db *UserDBImpl) CreateUser(ctx context.Context, user *usertypes.User) error {
	row := &User{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Department: user.Department,
	}
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}

	if _, err := db.DB.NewInsert().Model(row).Exec(ctx); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = row.ID
	return nil
}
