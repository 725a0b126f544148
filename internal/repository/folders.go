package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/IslomjonovAbdulazim/vocab-builder-backend/internal/models"
)

type FoldersR struct {
	db DBI
}

func NewFoldersRepository(db DBI) *FoldersR {
	return &FoldersR{
		db: db,
	}
}

func (f *FoldersR) Folder(ctx context.Context, folderID int64) (models.Folder, error) {
	query := `
        SELECT id, title, description, owner_id, share_code, is_shareable, total_words, total_copies, total_quizzes, created_at, updated_at
        FROM folders
        WHERE id = $1
    `

	var folder models.Folder
	err := f.db.GetContext(ctx, &folder, query, folderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Folder{}, ErrNotFound
		}
		return models.Folder{}, fmt.Errorf("failed to select folder: %w", err)
	}

	return folder, nil
}

// AccessibleTo returns the folders the user owns plus the ones they copied.
func (f *FoldersR) AccessibleTo(ctx context.Context, userID int64) ([]models.Folder, error) {
	query := `
        SELECT f.id, f.title, f.description, f.owner_id, f.share_code, f.is_shareable, f.total_words, f.total_copies, f.total_quizzes, f.created_at, f.updated_at
        FROM folders f
        WHERE f.owner_id = $1
           OR EXISTS (
                SELECT 1 FROM folder_copies c
                WHERE c.original_folder_id = f.id AND c.copied_by_user_id = $1
           )
        ORDER BY f.created_at DESC
    `

	var folders []models.Folder
	if err := f.db.SelectContext(ctx, &folders, query, userID); err != nil {
		return nil, fmt.Errorf("failed to select folders: %w", err)
	}

	return folders, nil
}

func (f *FoldersR) HasCopy(ctx context.Context, folderID, userID int64) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM folder_copies
            WHERE original_folder_id = $1 AND copied_by_user_id = $2
        )
    `

	var exists bool
	if err := f.db.GetContext(ctx, &exists, query, folderID, userID); err != nil {
		return false, fmt.Errorf("failed to check folder copy: %w", err)
	}

	return exists, nil
}

func (f *FoldersR) Items(ctx context.Context, folderID int64) ([]models.VocabItem, error) {
	query := `
        SELECT id, folder_id, word, translation, definition, example_sentence, order_index, created_at
        FROM vocab_items
        WHERE folder_id = $1
        ORDER BY order_index, id
    `

	var items []models.VocabItem
	if err := f.db.SelectContext(ctx, &items, query, folderID); err != nil {
		return nil, fmt.Errorf("failed to select vocab items: %w", err)
	}

	return items, nil
}
