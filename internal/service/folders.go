package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/IslomjonovAbdulazim/vocab-builder-backend/internal/models"
	"github.com/IslomjonovAbdulazim/vocab-builder-backend/internal/repository"
	"go.uber.org/zap"
)

type FolderRI interface {
	Folder(ctx context.Context, folderID int64) (models.Folder, error)
	AccessibleTo(ctx context.Context, userID int64) ([]models.Folder, error)
	HasCopy(ctx context.Context, folderID, userID int64) (bool, error)
	Items(ctx context.Context, folderID int64) ([]models.VocabItem, error)
}

// FolderS is the read path over folders and their vocabulary: the quiz core
// consumes it for access checks and candidate pools, the API exposes it for
// listing. Folder mutation lives elsewhere.
type FolderS struct {
	repo FolderRI
	log  *zap.Logger
}

func NewFolderService(repo FolderRI, log *zap.Logger) *FolderS {
	return &FolderS{
		repo: repo,
		log:  log,
	}
}

func (f *FolderS) Folder(ctx context.Context, folderID int64) (models.Folder, error) {
	return f.repo.Folder(ctx, folderID)
}

// CanAccess reports whether the user owns the folder or has copied it into
// their library.
func (f *FolderS) CanAccess(ctx context.Context, folder models.Folder, userID int64) (bool, error) {
	if folder.OwnerID == userID {
		return true, nil
	}
	return f.repo.HasCopy(ctx, folder.ID, userID)
}

func (f *FolderS) Items(ctx context.Context, folderID int64) ([]models.VocabItem, error) {
	return f.repo.Items(ctx, folderID)
}

func (f *FolderS) List(ctx context.Context, userID int64) ([]models.Folder, error) {
	folders, err := f.repo.AccessibleTo(ctx, userID)
	if err != nil {
		f.log.Error("failed to list folders", zap.Int64("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to list folders: %w", err)
	}
	return folders, nil
}

// Words returns the ordered vocabulary of a folder, access-checked for the
// calling user.
func (f *FolderS) Words(ctx context.Context, userID, folderID int64) ([]models.VocabItem, error) {
	folder, err := f.repo.Folder(ctx, folderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: folder", ErrNotFound)
		}
		f.log.Error("failed to load folder", zap.Int64("folder_id", folderID), zap.Error(err))
		return nil, fmt.Errorf("failed to load folder: %w", err)
	}

	ok, err := f.CanAccess(ctx, folder, userID)
	if err != nil {
		f.log.Error("failed to check folder access", zap.Int64("folder_id", folderID), zap.Int64("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to check folder access: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: folder is not accessible", ErrNotAuthorized)
	}

	items, err := f.repo.Items(ctx, folderID)
	if err != nil {
		f.log.Error("failed to load vocabulary", zap.Int64("folder_id", folderID), zap.Error(err))
		return nil, fmt.Errorf("failed to load vocabulary: %w", err)
	}
	return items, nil
}
