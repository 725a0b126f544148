package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/IslomjonovAbdulazim/vocab-builder-backend/internal/models"
)

type UsersR struct {
	db DBI
}

func NewUsersRepository(db DBI) *UsersR {
	return &UsersR{
		db: db,
	}
}

func (u *UsersR) User(ctx context.Context, userID int64) (models.User, error) {
	query := `
        SELECT id, username, email, total_quizzes_taken, created_at
        FROM users
        WHERE id = $1
    `

	var user models.User
	err := u.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, fmt.Errorf("failed to select user: %w", err)
	}

	return user, nil
}
