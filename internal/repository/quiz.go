package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/IslomjonovAbdulazim/vocab-builder-backend/internal/models"
)

type QuizR struct {
	db DBI
}

func NewQuizRepository(db DBI) *QuizR {
	return &QuizR{
		db: db,
	}
}

func (q *QuizR) CreateSession(ctx context.Context, session models.QuizSession) (int64, error) {
	query := `
        INSERT INTO quiz_sessions (user_id, folder_id, quiz_type, question_count, status, current_question, correct_answers, total_answers, started_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id
    `

	var id int64
	err := q.db.GetContext(ctx, &id, query,
		session.UserID, session.FolderID, session.QuizType, session.QuestionCount,
		session.Status, session.CurrentQuestion, session.CorrectAnswers, session.TotalAnswers, session.StartedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to insert quiz session: %w", err)
	}

	return id, nil
}

// Session looks a session up scoped by owner. An ownership miss reads the same
// as a missing row so existence never leaks.
func (q *QuizR) Session(ctx context.Context, quizID, userID int64) (models.QuizSession, error) {
	query := `
        SELECT id, user_id, folder_id, quiz_type, question_count, status, current_question, score, correct_answers, total_answers, started_at, completed_at
        FROM quiz_sessions
        WHERE id = $1 AND user_id = $2
    `

	var session models.QuizSession
	err := q.db.GetContext(ctx, &session, query, quizID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.QuizSession{}, ErrNotFound
		}
		return models.QuizSession{}, fmt.Errorf("failed to select quiz session: %w", err)
	}

	return session, nil
}

func (q *QuizR) AnsweredItemIDs(ctx context.Context, quizSessionID int64) ([]int64, error) {
	query := `SELECT vocab_item_id FROM quiz_answers WHERE quiz_session_id = $1`

	var ids []int64
	if err := q.db.SelectContext(ctx, &ids, query, quizSessionID); err != nil {
		return nil, fmt.Errorf("failed to select answered items: %w", err)
	}

	return ids, nil
}

// ApplyAnswer records one answered question as a single unit: the answer row,
// the session counters and state, and, when the session completes, the
// lifetime quiz counters. The session row is locked for the duration so
// concurrent submits on the same session serialize.
func (q *QuizR) ApplyAnswer(ctx context.Context, session models.QuizSession, answer models.QuizAnswer) error {
	tx, err := q.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}

	if err := q.applyAnswerTx(ctx, tx, session, answer); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit answer: %w", err)
	}
	return nil
}

func (q *QuizR) applyAnswerTx(ctx context.Context, tx TxI, session models.QuizSession, answer models.QuizAnswer) error {
	if err := lockActiveSession(ctx, tx, session.ID); err != nil {
		return err
	}

	insertAnswer := `
        INSERT INTO quiz_answers (quiz_session_id, vocab_item_id, question_type, question_text, correct_answer, user_answer, is_correct, answered_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	_, err := tx.ExecContext(ctx, insertAnswer,
		answer.QuizSessionID, answer.VocabItemID, answer.QuestionType, answer.QuestionText,
		answer.CorrectAnswer, answer.UserAnswer, answer.IsCorrect, answer.AnsweredAt)
	if err != nil {
		return fmt.Errorf("failed to insert quiz answer: %w", err)
	}

	if err := updateSession(ctx, tx, session); err != nil {
		return err
	}

	if session.Status == models.QuizStatusCompleted {
		if err := bumpQuizCounters(ctx, tx, session.UserID, session.FolderID); err != nil {
			return err
		}
	}

	return nil
}

// CompleteSession transitions an active session to completed without recording
// an answer (early finish and the exhausted-pool path).
func (q *QuizR) CompleteSession(ctx context.Context, session models.QuizSession) error {
	tx, err := q.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}

	if err := q.completeSessionTx(ctx, tx, session); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit completion: %w", err)
	}
	return nil
}

func (q *QuizR) completeSessionTx(ctx context.Context, tx TxI, session models.QuizSession) error {
	if err := lockActiveSession(ctx, tx, session.ID); err != nil {
		return err
	}
	if err := updateSession(ctx, tx, session); err != nil {
		return err
	}
	return bumpQuizCounters(ctx, tx, session.UserID, session.FolderID)
}

func (q *QuizR) AbandonSession(ctx context.Context, quizID, userID int64, completedAt time.Time) error {
	query := `
        UPDATE quiz_sessions
        SET status = $1, completed_at = $2
        WHERE id = $3 AND user_id = $4 AND status = $5
    `

	res, err := q.db.ExecContext(ctx, query,
		models.QuizStatusAbandoned, completedAt, quizID, userID, models.QuizStatusActive)
	if err != nil {
		return fmt.Errorf("failed to abandon quiz session: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotActive
	}

	return nil
}

func (q *QuizR) SessionAnswers(ctx context.Context, quizSessionID int64) ([]models.QuizAnswerDetail, error) {
	query := `
        SELECT
            COALESCE(v.word, '') AS word,
            a.question_type,
            a.question_text,
            a.correct_answer,
            a.user_answer,
            a.is_correct,
            v.translation,
            v.definition
        FROM quiz_answers a
        LEFT JOIN vocab_items v ON v.id = a.vocab_item_id
        WHERE a.quiz_session_id = $1
        ORDER BY a.answered_at, a.id
    `

	var answers []models.QuizAnswerDetail
	if err := q.db.SelectContext(ctx, &answers, query, quizSessionID); err != nil {
		return nil, fmt.Errorf("failed to select quiz answers: %w", err)
	}

	return answers, nil
}

func (q *QuizR) UserHistory(ctx context.Context, userID int64, limit int) ([]models.QuizHistoryItem, error) {
	query := `
        SELECT s.id, s.folder_id, f.title AS folder_title, s.quiz_type, s.score, s.correct_answers, s.total_answers, s.completed_at
        FROM quiz_sessions s
        JOIN folders f ON f.id = s.folder_id
        WHERE s.user_id = $1 AND s.status = $2
        ORDER BY s.completed_at DESC
        LIMIT $3
    `

	var history []models.QuizHistoryItem
	if err := q.db.SelectContext(ctx, &history, query, userID, models.QuizStatusCompleted, limit); err != nil {
		return nil, fmt.Errorf("failed to select quiz history: %w", err)
	}

	return history, nil
}

func (q *QuizR) FolderHistory(ctx context.Context, userID, folderID int64, limit int) ([]models.QuizHistoryItem, error) {
	query := `
        SELECT s.id, s.folder_id, f.title AS folder_title, s.quiz_type, s.score, s.correct_answers, s.total_answers, s.completed_at
        FROM quiz_sessions s
        JOIN folders f ON f.id = s.folder_id
        WHERE s.user_id = $1 AND s.folder_id = $2 AND s.status = $3
        ORDER BY s.completed_at DESC
        LIMIT $4
    `

	var history []models.QuizHistoryItem
	if err := q.db.SelectContext(ctx, &history, query, userID, folderID, models.QuizStatusCompleted, limit); err != nil {
		return nil, fmt.Errorf("failed to select folder quiz history: %w", err)
	}

	return history, nil
}

func lockActiveSession(ctx context.Context, tx TxI, quizID int64) error {
	var status string
	err := tx.GetContext(ctx, &status, `SELECT status FROM quiz_sessions WHERE id = $1 FOR UPDATE`, quizID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to lock quiz session: %w", err)
	}
	if status != models.QuizStatusActive {
		return ErrNotActive
	}
	return nil
}

func updateSession(ctx context.Context, tx TxI, session models.QuizSession) error {
	query := `
        UPDATE quiz_sessions
        SET status = $1, current_question = $2, score = $3, correct_answers = $4, total_answers = $5, completed_at = $6
        WHERE id = $7
    `
	_, err := tx.ExecContext(ctx, query,
		session.Status, session.CurrentQuestion, session.Score,
		session.CorrectAnswers, session.TotalAnswers, session.CompletedAt, session.ID)
	if err != nil {
		return fmt.Errorf("failed to update quiz session: %w", err)
	}
	return nil
}

// Completion bumps the lifetime counters exactly once per session; abandon
// never reaches here.
func bumpQuizCounters(ctx context.Context, tx TxI, userID, folderID int64) error {
	if _, err := tx.ExecContext(ctx, `UPDATE users SET total_quizzes_taken = total_quizzes_taken + 1 WHERE id = $1`, userID); err != nil {
		return fmt.Errorf("failed to update user quiz counter: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `UPDATE folders SET total_quizzes = total_quizzes + 1 WHERE id = $1`, folderID); err != nil {
		return fmt.Errorf("failed to update folder quiz counter: %w", err)
	}
	return nil
}
