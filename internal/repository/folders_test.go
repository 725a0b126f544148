package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/IslomjonovAbdulazim/vocab-builder-backend/internal/models"
	"github.com/IslomjonovAbdulazim/vocab-builder-backend/internal/repository"
	mock_repository "github.com/IslomjonovAbdulazim/vocab-builder-backend/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFoldersMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_repository.MockDBI)) *repository.FoldersR {
	t.Helper()

	db := mock_repository.NewMockDBI(ctrl)
	if setupMock != nil {
		setupMock(db)
	}

	return repository.NewFoldersRepository(db)
}

func TestFoldersR_Folder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockDBI)
		wantErr error
	}{
		{
			name: "success",
			f: func(db *mock_repository.MockDBI) {
				db.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
						*dest.(*models.Folder) = models.Folder{ID: 7, Title: "Spanish Basics", OwnerID: 1}
						return nil
					})
			},
		},
		{
			name: "no rows maps to not found",
			f: func(db *mock_repository.MockDBI) {
				db.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(sql.ErrNoRows)
			},
			wantErr: repository.ErrNotFound,
		},
		{
			name: "failed select",
			f: func(db *mock_repository.MockDBI) {
				db.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("select error"))
			},
			wantErr: errors.New("failed to select folder"),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			foldersR := newFoldersMock(t, ctrl, tt.f)

			got, err := foldersR.Folder(context.Background(), 7)
			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, repository.ErrNotFound) {
					assert.ErrorIs(t, err, repository.ErrNotFound)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(7), got.ID)
		})
	}
}

func TestFoldersR_AccessibleTo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockDBI)
		wantLen int
		wantErr bool
	}{
		{
			name: "success",
			f: func(db *mock_repository.MockDBI) {
				db.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
						*dest.(*[]models.Folder) = []models.Folder{
							{ID: 7, Title: "Spanish Basics"},
							{ID: 8, Title: "Verbs"},
						}
						return nil
					})
			},
			wantLen: 2,
		},
		{
			name: "failed select",
			f: func(db *mock_repository.MockDBI) {
				db.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("select error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			foldersR := newFoldersMock(t, ctrl, tt.f)

			got, err := foldersR.AccessibleTo(context.Background(), 1)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestFoldersR_HasCopy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockDBI)
		want    bool
		wantErr bool
	}{
		{
			name: "copy exists",
			f: func(db *mock_repository.MockDBI) {
				db.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
						*dest.(*bool) = true
						return nil
					})
			},
			want: true,
		},
		{
			name: "no copy",
			f: func(db *mock_repository.MockDBI) {
				db.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
						*dest.(*bool) = false
						return nil
					})
			},
			want: false,
		},
		{
			name: "failed select",
			f: func(db *mock_repository.MockDBI) {
				db.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("select error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			foldersR := newFoldersMock(t, ctrl, tt.f)

			got, err := foldersR.HasCopy(context.Background(), 7, 2)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFoldersR_Items(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockDBI)
		wantLen int
		wantErr bool
	}{
		{
			name: "success",
			f: func(db *mock_repository.MockDBI) {
				db.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
						*dest.(*[]models.VocabItem) = []models.VocabItem{
							{ID: 1, Word: "cat", Translation: "gato"},
							{ID: 2, Word: "dog", Translation: "perro"},
						}
						return nil
					})
			},
			wantLen: 2,
		},
		{
			name: "failed select",
			f: func(db *mock_repository.MockDBI) {
				db.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("select error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			foldersR := newFoldersMock(t, ctrl, tt.f)

			got, err := foldersR.Items(context.Background(), 7)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
		})
	}
}
