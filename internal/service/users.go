package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/IslomjonovAbdulazim/vocab-builder-backend/internal/models"
	"github.com/IslomjonovAbdulazim/vocab-builder-backend/internal/repository"
	"go.uber.org/zap"
)

type UserRI interface {
	User(ctx context.Context, userID int64) (models.User, error)
}

// UserS is the profile read path. The lifetime quiz counter lives on the user
// row and is bumped by the quiz repository on completion.
type UserS struct {
	repo UserRI
	log  *zap.Logger
}

func NewUserService(repo UserRI, log *zap.Logger) *UserS {
	return &UserS{
		repo: repo,
		log:  log,
	}
}

func (u *UserS) Profile(ctx context.Context, userID int64) (models.User, error) {
	user, err := u.repo.User(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.User{}, fmt.Errorf("%w: user", ErrNotFound)
		}
		u.log.Error("failed to load user", zap.Int64("user_id", userID), zap.Error(err))
		return models.User{}, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}
