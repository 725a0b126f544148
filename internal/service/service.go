package service

import (
	"github.com/IslomjonovAbdulazim/vocab-builder-backend/internal/storage/cache"
	"go.uber.org/zap"
)

type RepositoryI interface {
	QuizRI
	FolderRI
	UserRI
}

type Service struct {
	*FolderS
	*QuizS
	*UserS
}

func InitServices(repo RepositoryI, locks *cache.SessionLocks, seed int64, log *zap.Logger) *Service {
	folders := NewFolderService(repo, log)
	return &Service{
		FolderS: folders,
		QuizS:   NewQuizService(repo, folders, locks, seed, log),
		UserS:   NewUserService(repo, log),
	}
}
