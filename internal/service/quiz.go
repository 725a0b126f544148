package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/IslomjonovAbdulazim/vocab-builder-backend/internal/models"
	"github.com/IslomjonovAbdulazim/vocab-builder-backend/internal/repository"
	"github.com/IslomjonovAbdulazim/vocab-builder-backend/internal/storage/cache"
	"go.uber.org/zap"
)

const (
	defaultHistoryLimit       = 20
	maxHistoryLimit           = 100
	defaultFolderHistoryLimit = 10
	maxFolderHistoryLimit     = 50
)

type QuizRI interface {
	CreateSession(ctx context.Context, session models.QuizSession) (int64, error)
	Session(ctx context.Context, quizID, userID int64) (models.QuizSession, error)
	AnsweredItemIDs(ctx context.Context, quizSessionID int64) ([]int64, error)
	ApplyAnswer(ctx context.Context, session models.QuizSession, answer models.QuizAnswer) error
	CompleteSession(ctx context.Context, session models.QuizSession) error
	AbandonSession(ctx context.Context, quizID, userID int64, completedAt time.Time) error
	SessionAnswers(ctx context.Context, quizSessionID int64) ([]models.QuizAnswerDetail, error)
	UserHistory(ctx context.Context, userID int64, limit int) ([]models.QuizHistoryItem, error)
	FolderHistory(ctx context.Context, userID, folderID int64, limit int) ([]models.QuizHistoryItem, error)
}

type FolderAccessI interface {
	Folder(ctx context.Context, folderID int64) (models.Folder, error)
	CanAccess(ctx context.Context, folder models.Folder, userID int64) (bool, error)
	Items(ctx context.Context, folderID int64) ([]models.VocabItem, error)
}

type QuizS struct {
	repo    QuizRI
	folders FolderAccessI
	locks   *cache.SessionLocks
	seed    int64
	log     *zap.Logger
}

func NewQuizService(repo QuizRI, folders FolderAccessI, locks *cache.SessionLocks, seed int64, log *zap.Logger) *QuizS {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &QuizS{
		repo:    repo,
		folders: folders,
		locks:   locks,
		seed:    seed,
		log:     log,
	}
}

// questionRNG derives the generator for one question from the session id and
// the number of answers recorded so far. Re-running it against the same
// asked-set reproduces the same question, so the pending question never needs
// to be stored.
func (q *QuizS) questionRNG(quizID int64, answered int) *rand.Rand {
	mix := uint64(quizID)*0x9e3779b97f4a7c15 ^ uint64(answered+1)*0x85ebca6b
	return rand.New(rand.NewSource(q.seed ^ int64(mix)))
}

func (q *QuizS) Start(ctx context.Context, userID, folderID int64, quizType string, questionCount int) (models.StartedQuiz, error) {
	if !models.ValidQuizType(quizType) {
		return models.StartedQuiz{}, fmt.Errorf("%w: quiz type must be one of mixed, translation, definition", ErrInvalidArgument)
	}
	if questionCount < 1 {
		return models.StartedQuiz{}, fmt.Errorf("%w: question count must be at least 1", ErrInvalidArgument)
	}

	folder, err := q.folders.Folder(ctx, folderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.StartedQuiz{}, fmt.Errorf("%w: folder", ErrNotFound)
		}
		q.log.Error("failed to load folder", zap.Int64("folder_id", folderID), zap.Error(err))
		return models.StartedQuiz{}, fmt.Errorf("failed to load folder: %w", err)
	}

	ok, err := q.folders.CanAccess(ctx, folder, userID)
	if err != nil {
		q.log.Error("failed to check folder access", zap.Int64("folder_id", folderID), zap.Int64("user_id", userID), zap.Error(err))
		return models.StartedQuiz{}, fmt.Errorf("failed to check folder access: %w", err)
	}
	if !ok {
		return models.StartedQuiz{}, fmt.Errorf("%w: folder is not accessible", ErrNotAuthorized)
	}

	items, err := q.folders.Items(ctx, folderID)
	if err != nil {
		q.log.Error("failed to load vocabulary", zap.Int64("folder_id", folderID), zap.Error(err))
		return models.StartedQuiz{}, fmt.Errorf("failed to load vocabulary: %w", err)
	}
	if len(items) == 0 {
		return models.StartedQuiz{}, ErrEmptyFolder
	}

	if questionCount > len(items) {
		questionCount = len(items)
	}

	session := models.QuizSession{
		UserID:          userID,
		FolderID:        folderID,
		QuizType:        quizType,
		QuestionCount:   questionCount,
		Status:          models.QuizStatusActive,
		CurrentQuestion: 1,
		StartedAt:       time.Now().UTC(),
	}

	id, err := q.repo.CreateSession(ctx, session)
	if err != nil {
		q.log.Error("failed to create quiz session", zap.Int64("user_id", userID), zap.Int64("folder_id", folderID), zap.Error(err))
		return models.StartedQuiz{}, fmt.Errorf("failed to create quiz session: %w", err)
	}
	session.ID = id

	rng := q.questionRNG(id, 0)
	item, err := pickCandidate(items, nil, rng)
	if err != nil {
		return models.StartedQuiz{}, fmt.Errorf("failed to generate first question: %w", err)
	}

	return models.StartedQuiz{
		Session:  session,
		Question: buildQuestion(item, quizType, rng),
	}, nil
}

func (q *QuizS) SubmitAnswer(ctx context.Context, userID, quizID int64, answer string) (models.SubmitResult, error) {
	if strings.TrimSpace(answer) == "" {
		return models.SubmitResult{}, ErrEmptyAnswer
	}

	unlock := q.locks.Acquire(quizID)
	defer unlock()

	session, err := q.sessionFor(ctx, quizID, userID)
	if err != nil {
		return models.SubmitResult{}, err
	}
	if session.Status != models.QuizStatusActive {
		return models.SubmitResult{}, ErrNotActive
	}

	items, err := q.folders.Items(ctx, session.FolderID)
	if err != nil {
		q.log.Error("failed to load vocabulary", zap.Int64("folder_id", session.FolderID), zap.Error(err))
		return models.SubmitResult{}, fmt.Errorf("failed to load vocabulary: %w", err)
	}

	askedIDs, err := q.repo.AnsweredItemIDs(ctx, quizID)
	if err != nil {
		q.log.Error("failed to load answered items", zap.Int64("quiz_id", quizID), zap.Error(err))
		return models.SubmitResult{}, fmt.Errorf("failed to load answered items: %w", err)
	}
	asked := make(map[int64]struct{}, len(askedIDs))
	for _, id := range askedIDs {
		asked[id] = struct{}{}
	}

	// The pending question is recomputed, never stored: same asked-set, same
	// derived rng, same question.
	rng := q.questionRNG(quizID, session.TotalAnswers)
	item, err := pickCandidate(items, asked, rng)
	if err != nil {
		// Vocabulary shrank under the session; close it out on answers so far.
		if err := q.forceComplete(ctx, &session); err != nil {
			return models.SubmitResult{}, err
		}
		return models.SubmitResult{
			Completed:       true,
			CurrentQuestion: session.CurrentQuestion,
			TotalQuestions:  session.QuestionCount,
			FinalScore:      session.Score,
		}, nil
	}
	question := buildQuestion(item, session.QuizType, rng)

	submitted := normalizeAnswer(answer)
	isCorrect := submitted == question.CorrectAnswer

	record := models.QuizAnswer{
		QuizSessionID: quizID,
		VocabItemID:   item.ID,
		QuestionType:  question.Type,
		QuestionText:  question.Text,
		CorrectAnswer: question.CorrectAnswer,
		UserAnswer:    submitted,
		IsCorrect:     isCorrect,
		AnsweredAt:    time.Now().UTC(),
	}

	session.TotalAnswers++
	if isCorrect {
		session.CorrectAnswers++
	}

	if session.TotalAnswers >= session.QuestionCount {
		score := calculateScore(session.CorrectAnswers, session.TotalAnswers)
		now := time.Now().UTC()
		session.Status = models.QuizStatusCompleted
		session.Score = &score
		session.CompletedAt = &now

		if err := q.applyAnswer(ctx, session, record); err != nil {
			return models.SubmitResult{}, err
		}

		return models.SubmitResult{
			IsCorrect:       isCorrect,
			CorrectAnswer:   question.CorrectAnswer,
			Completed:       true,
			CurrentQuestion: session.CurrentQuestion,
			TotalQuestions:  session.QuestionCount,
			FinalScore:      &score,
		}, nil
	}

	session.CurrentQuestion++
	if err := q.applyAnswer(ctx, session, record); err != nil {
		return models.SubmitResult{}, err
	}

	asked[item.ID] = struct{}{}
	nextRNG := q.questionRNG(quizID, session.TotalAnswers)
	nextItem, err := pickCandidate(items, asked, nextRNG)
	if err != nil {
		if err := q.forceComplete(ctx, &session); err != nil {
			return models.SubmitResult{}, err
		}
		return models.SubmitResult{
			IsCorrect:       isCorrect,
			CorrectAnswer:   question.CorrectAnswer,
			Completed:       true,
			CurrentQuestion: session.CurrentQuestion,
			TotalQuestions:  session.QuestionCount,
			FinalScore:      session.Score,
		}, nil
	}
	next := buildQuestion(nextItem, session.QuizType, nextRNG)

	return models.SubmitResult{
		IsCorrect:       isCorrect,
		CorrectAnswer:   question.CorrectAnswer,
		CurrentQuestion: session.CurrentQuestion,
		TotalQuestions:  session.QuestionCount,
		NextQuestion:    &next,
	}, nil
}

// Finish is idempotent for completed sessions and force-completes active ones,
// scored on answers so far. Abandoned sessions cannot be finished.
func (q *QuizS) Finish(ctx context.Context, userID, quizID int64) (models.QuizSummary, error) {
	unlock := q.locks.Acquire(quizID)
	defer unlock()

	session, err := q.sessionFor(ctx, quizID, userID)
	if err != nil {
		return models.QuizSummary{}, err
	}

	switch session.Status {
	case models.QuizStatusCompleted:
		return summaryOf(session), nil
	case models.QuizStatusActive:
		if err := q.forceComplete(ctx, &session); err != nil {
			return models.QuizSummary{}, err
		}
		return summaryOf(session), nil
	default:
		return models.QuizSummary{}, fmt.Errorf("%w: quiz was abandoned", ErrInvalidState)
	}
}

func (q *QuizS) Abandon(ctx context.Context, userID, quizID int64) error {
	unlock := q.locks.Acquire(quizID)
	defer unlock()

	session, err := q.sessionFor(ctx, quizID, userID)
	if err != nil {
		return err
	}
	if session.Status != models.QuizStatusActive {
		return ErrNotActive
	}

	if err := q.repo.AbandonSession(ctx, quizID, userID, time.Now().UTC()); err != nil {
		if errors.Is(err, repository.ErrNotActive) {
			return ErrNotActive
		}
		q.log.Error("failed to abandon quiz session", zap.Int64("quiz_id", quizID), zap.Error(err))
		return fmt.Errorf("failed to abandon quiz session: %w", err)
	}

	return nil
}

func (q *QuizS) Results(ctx context.Context, userID, quizID int64) (models.QuizResults, error) {
	session, err := q.sessionFor(ctx, quizID, userID)
	if err != nil {
		return models.QuizResults{}, err
	}

	folderTitle := "Unknown"
	folder, err := q.folders.Folder(ctx, session.FolderID)
	if err == nil {
		folderTitle = folder.Title
	} else if !errors.Is(err, repository.ErrNotFound) {
		q.log.Error("failed to load folder", zap.Int64("folder_id", session.FolderID), zap.Error(err))
		return models.QuizResults{}, fmt.Errorf("failed to load folder: %w", err)
	}

	answers, err := q.repo.SessionAnswers(ctx, quizID)
	if err != nil {
		q.log.Error("failed to load quiz answers", zap.Int64("quiz_id", quizID), zap.Error(err))
		return models.QuizResults{}, fmt.Errorf("failed to load quiz answers: %w", err)
	}

	return models.QuizResults{
		Session:     session,
		FolderTitle: folderTitle,
		Answers:     answers,
	}, nil
}

func (q *QuizS) History(ctx context.Context, userID int64, limit int) ([]models.QuizHistoryItem, error) {
	if limit == 0 {
		limit = defaultHistoryLimit
	}
	if limit < 1 || limit > maxHistoryLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidArgument, maxHistoryLimit)
	}

	history, err := q.repo.UserHistory(ctx, userID, limit)
	if err != nil {
		q.log.Error("failed to load quiz history", zap.Int64("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to load quiz history: %w", err)
	}
	return history, nil
}

func (q *QuizS) FolderHistory(ctx context.Context, userID, folderID int64, limit int) ([]models.QuizHistoryItem, error) {
	if limit == 0 {
		limit = defaultFolderHistoryLimit
	}
	if limit < 1 || limit > maxFolderHistoryLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidArgument, maxFolderHistoryLimit)
	}

	folder, err := q.folders.Folder(ctx, folderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: folder", ErrNotFound)
		}
		q.log.Error("failed to load folder", zap.Int64("folder_id", folderID), zap.Error(err))
		return nil, fmt.Errorf("failed to load folder: %w", err)
	}
	ok, err := q.folders.CanAccess(ctx, folder, userID)
	if err != nil {
		q.log.Error("failed to check folder access", zap.Int64("folder_id", folderID), zap.Int64("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to check folder access: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: folder is not accessible", ErrNotAuthorized)
	}

	history, err := q.repo.FolderHistory(ctx, userID, folderID, limit)
	if err != nil {
		q.log.Error("failed to load folder quiz history", zap.Int64("folder_id", folderID), zap.Error(err))
		return nil, fmt.Errorf("failed to load folder quiz history: %w", err)
	}
	return history, nil
}

func (q *QuizS) sessionFor(ctx context.Context, quizID, userID int64) (models.QuizSession, error) {
	session, err := q.repo.Session(ctx, quizID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.QuizSession{}, fmt.Errorf("%w: quiz session", ErrNotFound)
		}
		q.log.Error("failed to load quiz session", zap.Int64("quiz_id", quizID), zap.Error(err))
		return models.QuizSession{}, fmt.Errorf("failed to load quiz session: %w", err)
	}
	return session, nil
}

func (q *QuizS) applyAnswer(ctx context.Context, session models.QuizSession, record models.QuizAnswer) error {
	if err := q.repo.ApplyAnswer(ctx, session, record); err != nil {
		if errors.Is(err, repository.ErrNotActive) {
			return ErrNotActive
		}
		q.log.Error("failed to record quiz answer", zap.Int64("quiz_id", session.ID), zap.Error(err))
		return fmt.Errorf("failed to record quiz answer: %w", err)
	}
	return nil
}

func (q *QuizS) forceComplete(ctx context.Context, session *models.QuizSession) error {
	score := calculateScore(session.CorrectAnswers, session.TotalAnswers)
	now := time.Now().UTC()
	session.Status = models.QuizStatusCompleted
	session.Score = &score
	session.CompletedAt = &now

	if err := q.repo.CompleteSession(ctx, *session); err != nil {
		if errors.Is(err, repository.ErrNotActive) {
			return ErrNotActive
		}
		q.log.Error("failed to complete quiz session", zap.Int64("quiz_id", session.ID), zap.Error(err))
		return fmt.Errorf("failed to complete quiz session: %w", err)
	}
	return nil
}

func summaryOf(session models.QuizSession) models.QuizSummary {
	var score float64
	if session.Score != nil {
		score = *session.Score
	}
	return models.QuizSummary{
		QuizID:         session.ID,
		Status:         session.Status,
		FinalScore:     score,
		CorrectAnswers: session.CorrectAnswers,
		TotalAnswered:  session.TotalAnswers,
	}
}
