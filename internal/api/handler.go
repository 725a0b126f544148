package api

import (
	"context"
	"net/http"
	"time"

	"github.com/IslomjonovAbdulazim/vocab-builder-backend/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type QuizSI interface {
	Start(ctx context.Context, userID, folderID int64, quizType string, questionCount int) (models.StartedQuiz, error)
	SubmitAnswer(ctx context.Context, userID, quizID int64, answer string) (models.SubmitResult, error)
	Finish(ctx context.Context, userID, quizID int64) (models.QuizSummary, error)
	Abandon(ctx context.Context, userID, quizID int64) error
	Results(ctx context.Context, userID, quizID int64) (models.QuizResults, error)
	History(ctx context.Context, userID int64, limit int) ([]models.QuizHistoryItem, error)
	FolderHistory(ctx context.Context, userID, folderID int64, limit int) ([]models.QuizHistoryItem, error)
}

type FolderSI interface {
	List(ctx context.Context, userID int64) ([]models.Folder, error)
	Words(ctx context.Context, userID, folderID int64) ([]models.VocabItem, error)
}

type UserSI interface {
	Profile(ctx context.Context, userID int64) (models.User, error)
}

type Handler struct {
	quiz    QuizSI
	folders FolderSI
	users   UserSI
	auth    *Auth
	log     *zap.Logger
}

func NewHandler(quiz QuizSI, folders FolderSI, users UserSI, auth *Auth, log *zap.Logger) *Handler {
	return &Handler{
		quiz:    quiz,
		folders: folders,
		users:   users,
		auth:    auth,
		log:     log,
	}
}

func (h *Handler) Router(timeout time.Duration) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	r.Use(middleware.Timeout(timeout))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Use(h.auth.Middleware)

		r.Get("/profile", h.profile)

		r.Route("/quiz", func(r chi.Router) {
			r.Get("/history", h.history)
			r.Post("/{folderID}/start", h.startQuiz)
			r.Post("/{quizID}/answer", h.submitAnswer)
			r.Post("/{quizID}/finish", h.finishQuiz)
			r.Delete("/{quizID}", h.abandonQuiz)
			r.Get("/{quizID}/results", h.quizResults)
		})

		r.Route("/folders", func(r chi.Router) {
			r.Get("/", h.listFolders)
			r.Get("/{folderID}/words", h.folderWords)
			r.Get("/{folderID}/quiz-history", h.folderHistory)
		})
	})

	return r
}
