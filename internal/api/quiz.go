package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/IslomjonovAbdulazim/vocab-builder-backend/internal/models"
	"github.com/go-chi/chi/v5"
)

type questionPayload struct {
	Type string `json:"type"`
	Text string `json:"text"`
	Word string `json:"word"`
}

func questionOf(q models.Question) questionPayload {
	return questionPayload{
		Type: q.Type,
		Text: q.Text,
		Word: q.Word,
	}
}

type historyItemPayload struct {
	QuizID         int64     `json:"quiz_id"`
	FolderID       int64     `json:"folder_id"`
	FolderTitle    string    `json:"folder_title"`
	QuizType       string    `json:"quiz_type"`
	Score          float64   `json:"score"`
	CorrectAnswers int       `json:"correct_answers"`
	TotalQuestions int       `json:"total_questions"`
	CompletedAt    time.Time `json:"completed_at"`
}

func historyOf(items []models.QuizHistoryItem) []historyItemPayload {
	payload := make([]historyItemPayload, 0, len(items))
	for _, item := range items {
		payload = append(payload, historyItemPayload{
			QuizID:         item.QuizID,
			FolderID:       item.FolderID,
			FolderTitle:    item.FolderTitle,
			QuizType:       item.QuizType,
			Score:          item.Score,
			CorrectAnswers: item.CorrectAnswers,
			TotalQuestions: item.TotalAnswers,
			CompletedAt:    item.CompletedAt,
		})
	}
	return payload
}

func (h *Handler) startQuiz(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, false, "Unauthorized", nil)
		return
	}
	folderID, err := pathID(r, "folderID")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, false, "Invalid folder id", nil)
		return
	}

	req := struct {
		QuizType      string `json:"quiz_type"`
		QuestionCount int    `json:"question_count"`
	}{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respondJSON(w, http.StatusBadRequest, false, "Invalid request body", nil)
		return
	}
	if req.QuizType == "" {
		req.QuizType = models.QuizTypeMixed
	}
	if req.QuestionCount == 0 {
		req.QuestionCount = 10
	}

	started, err := h.quiz.Start(r.Context(), userID, folderID, req.QuizType, req.QuestionCount)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	question := questionOf(started.Question)
	respondJSON(w, http.StatusCreated, true, "Quiz started successfully", struct {
		QuizID          int64            `json:"quiz_id"`
		FolderID        int64            `json:"folder_id"`
		QuizType        string           `json:"quiz_type"`
		QuestionCount   int              `json:"question_count"`
		CurrentQuestion int              `json:"current_question"`
		Question        *questionPayload `json:"question"`
	}{
		QuizID:          started.Session.ID,
		FolderID:        started.Session.FolderID,
		QuizType:        started.Session.QuizType,
		QuestionCount:   started.Session.QuestionCount,
		CurrentQuestion: started.Session.CurrentQuestion,
		Question:        &question,
	})
}

func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, false, "Unauthorized", nil)
		return
	}
	quizID, err := pathID(r, "quizID")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, false, "Invalid quiz id", nil)
		return
	}

	req := struct {
		Answer string `json:"answer"`
	}{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, false, "Invalid request body", nil)
		return
	}

	result, err := h.quiz.SubmitAnswer(r.Context(), userID, quizID, req.Answer)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	payload := struct {
		IsCorrect       bool             `json:"is_correct"`
		CorrectAnswer   string           `json:"correct_answer"`
		QuizCompleted   bool             `json:"quiz_completed"`
		CurrentQuestion int              `json:"current_question"`
		TotalQuestions  int              `json:"total_questions"`
		NextQuestion    *questionPayload `json:"next_question,omitempty"`
		FinalScore      *float64         `json:"final_score,omitempty"`
	}{
		IsCorrect:       result.IsCorrect,
		CorrectAnswer:   result.CorrectAnswer,
		QuizCompleted:   result.Completed,
		CurrentQuestion: result.CurrentQuestion,
		TotalQuestions:  result.TotalQuestions,
		FinalScore:      result.FinalScore,
	}
	if result.NextQuestion != nil {
		question := questionOf(*result.NextQuestion)
		payload.NextQuestion = &question
	}

	respondJSON(w, http.StatusOK, true, "Answer submitted successfully", payload)
}

func (h *Handler) finishQuiz(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, false, "Unauthorized", nil)
		return
	}
	quizID, err := pathID(r, "quizID")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, false, "Invalid quiz id", nil)
		return
	}

	summary, err := h.quiz.Finish(r.Context(), userID, quizID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, true, "Quiz completed successfully", struct {
		QuizID         int64   `json:"quiz_id"`
		FinalScore     float64 `json:"final_score"`
		CorrectAnswers int     `json:"correct_answers"`
		TotalAnswered  int     `json:"total_answered"`
		Status         string  `json:"status"`
	}{
		QuizID:         summary.QuizID,
		FinalScore:     summary.FinalScore,
		CorrectAnswers: summary.CorrectAnswers,
		TotalAnswered:  summary.TotalAnswered,
		Status:         summary.Status,
	})
}

func (h *Handler) abandonQuiz(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, false, "Unauthorized", nil)
		return
	}
	quizID, err := pathID(r, "quizID")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, false, "Invalid quiz id", nil)
		return
	}

	if err := h.quiz.Abandon(r.Context(), userID, quizID); err != nil {
		h.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, true, "Quiz abandoned successfully", nil)
}

func (h *Handler) quizResults(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, false, "Unauthorized", nil)
		return
	}
	quizID, err := pathID(r, "quizID")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, false, "Invalid quiz id", nil)
		return
	}

	results, err := h.quiz.Results(r.Context(), userID, quizID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	type answerPayload struct {
		Word          string  `json:"word"`
		Question      string  `json:"question"`
		QuestionType  string  `json:"question_type"`
		CorrectAnswer string  `json:"correct_answer"`
		UserAnswer    string  `json:"user_answer"`
		IsCorrect     bool    `json:"is_correct"`
		Translation   *string `json:"translation"`
		Definition    *string `json:"definition"`
	}

	answers := make([]answerPayload, 0, len(results.Answers))
	for _, a := range results.Answers {
		answers = append(answers, answerPayload{
			Word:          a.Word,
			Question:      a.QuestionText,
			QuestionType:  a.QuestionType,
			CorrectAnswer: a.CorrectAnswer,
			UserAnswer:    a.UserAnswer,
			IsCorrect:     a.IsCorrect,
			Translation:   a.Translation,
			Definition:    a.Definition,
		})
	}

	respondJSON(w, http.StatusOK, true, "Quiz results retrieved successfully", struct {
		QuizID         int64           `json:"quiz_id"`
		FolderTitle    string          `json:"folder_title"`
		QuizType       string          `json:"quiz_type"`
		Status         string          `json:"status"`
		Score          *float64        `json:"score"`
		CorrectAnswers int             `json:"correct_answers"`
		TotalQuestions int             `json:"total_questions"`
		StartedAt      time.Time       `json:"started_at"`
		CompletedAt    *time.Time      `json:"completed_at"`
		Answers        []answerPayload `json:"answers"`
	}{
		QuizID:         results.Session.ID,
		FolderTitle:    results.FolderTitle,
		QuizType:       results.Session.QuizType,
		Status:         results.Session.Status,
		Score:          results.Session.Score,
		CorrectAnswers: results.Session.CorrectAnswers,
		TotalQuestions: results.Session.TotalAnswers,
		StartedAt:      results.Session.StartedAt,
		CompletedAt:    results.Session.CompletedAt,
		Answers:        answers,
	})
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, false, "Unauthorized", nil)
		return
	}
	limit, explicit, err := queryLimit(r)
	if err != nil || (explicit && limit < 1) {
		respondJSON(w, http.StatusBadRequest, false, "Invalid limit", nil)
		return
	}

	history, err := h.quiz.History(r.Context(), userID, limit)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, true, "Quiz history retrieved successfully", struct {
		QuizHistory []historyItemPayload `json:"quiz_history"`
	}{
		QuizHistory: historyOf(history),
	})
}

func (h *Handler) folderHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, false, "Unauthorized", nil)
		return
	}
	folderID, err := pathID(r, "folderID")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, false, "Invalid folder id", nil)
		return
	}
	limit, explicit, err := queryLimit(r)
	if err != nil || (explicit && limit < 1) {
		respondJSON(w, http.StatusBadRequest, false, "Invalid limit", nil)
		return
	}

	history, err := h.quiz.FolderHistory(r.Context(), userID, folderID, limit)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, true, "Folder quiz history retrieved successfully", struct {
		QuizHistory []historyItemPayload `json:"quiz_history"`
	}{
		QuizHistory: historyOf(history),
	})
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

// queryLimit reports whether limit was supplied at all: an absent parameter
// means the service default, but an explicit zero is a client error.
func queryLimit(r *http.Request) (int, bool, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, false, nil
	}
	limit, err := strconv.Atoi(raw)
	return limit, true, err
}
