package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IslomjonovAbdulazim/vocab-builder-backend/internal/api"
	"github.com/IslomjonovAbdulazim/vocab-builder-backend/internal/config"
	"github.com/IslomjonovAbdulazim/vocab-builder-backend/internal/repository"
	"github.com/IslomjonovAbdulazim/vocab-builder-backend/internal/service"
	"github.com/IslomjonovAbdulazim/vocab-builder-backend/internal/storage/cache"
	"github.com/IslomjonovAbdulazim/vocab-builder-backend/internal/storage/db"

	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)
	defer logger.Sync()

	database, err := db.InitDB(cfg.DB)
	if err != nil {
		logger.Fatal("failed init db", zap.Error(err))
	}

	repo := repository.NewRepository(repository.WrapDB(database))
	locks := cache.NewSessionLocks()
	services := service.InitServices(repo, locks, cfg.Quiz.Seed, logger)

	auth := api.NewAuth(cfg.JWT.Secret)
	handler := api.NewHandler(services, services, services, auth, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      handler.Router(cfg.App.Timeout),
		ReadTimeout:  cfg.App.Timeout,
		WriteTimeout: cfg.App.Timeout,
	}

	go func() {
		logger.Info("starting server", zap.String("port", cfg.App.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
	if err := database.Close(); err != nil {
		logger.Error("db close failed", zap.Error(err))
	}
}
