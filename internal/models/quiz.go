package models

import "time"

const (
	QuizTypeMixed       = "mixed"
	QuizTypeTranslation = "translation"
	QuizTypeDefinition  = "definition"
)

const (
	QuizStatusActive    = "active"
	QuizStatusCompleted = "completed"
	QuizStatusAbandoned = "abandoned"
)

func ValidQuizType(quizType string) bool {
	switch quizType {
	case QuizTypeMixed, QuizTypeTranslation, QuizTypeDefinition:
		return true
	}
	return false
}

type QuizSession struct {
	ID              int64      `db:"id"`
	UserID          int64      `db:"user_id"`
	FolderID        int64      `db:"folder_id"`
	QuizType        string     `db:"quiz_type"`
	QuestionCount   int        `db:"question_count"`
	Status          string     `db:"status"`
	CurrentQuestion int        `db:"current_question"`
	Score           *float64   `db:"score"`
	CorrectAnswers  int        `db:"correct_answers"`
	TotalAnswers    int        `db:"total_answers"`
	StartedAt       time.Time  `db:"started_at"`
	CompletedAt     *time.Time `db:"completed_at"`
}

type QuizAnswer struct {
	ID            int64     `db:"id"`
	QuizSessionID int64     `db:"quiz_session_id"`
	VocabItemID   int64     `db:"vocab_item_id"`
	QuestionType  string    `db:"question_type"`
	QuestionText  string    `db:"question_text"`
	CorrectAnswer string    `db:"correct_answer"`
	UserAnswer    string    `db:"user_answer"`
	IsCorrect     bool      `db:"is_correct"`
	AnsweredAt    time.Time `db:"answered_at"`
}

// QuizAnswerDetail is one recorded answer joined with the vocabulary item it
// asked about, for the results review screen. The vocab fields are pointers
// because the item may have been deleted after the quiz ran.
type QuizAnswerDetail struct {
	Word          string  `db:"word"`
	QuestionType  string  `db:"question_type"`
	QuestionText  string  `db:"question_text"`
	CorrectAnswer string  `db:"correct_answer"`
	UserAnswer    string  `db:"user_answer"`
	IsCorrect     bool    `db:"is_correct"`
	Translation   *string `db:"translation"`
	Definition    *string `db:"definition"`
}

type QuizHistoryItem struct {
	QuizID         int64     `db:"id"`
	FolderID       int64     `db:"folder_id"`
	FolderTitle    string    `db:"folder_title"`
	QuizType       string    `db:"quiz_type"`
	Score          float64   `db:"score"`
	CorrectAnswers int       `db:"correct_answers"`
	TotalAnswers   int       `db:"total_answers"`
	CompletedAt    time.Time `db:"completed_at"`
}

// Question is one generated quiz question. CorrectAnswer holds the normalized
// reference string and is never serialized to the client.
type Question struct {
	VocabItemID   int64
	Type          string
	Text          string
	Word          string
	CorrectAnswer string
}

type StartedQuiz struct {
	Session  QuizSession
	Question Question
}

type SubmitResult struct {
	IsCorrect       bool
	CorrectAnswer   string
	Completed       bool
	CurrentQuestion int
	TotalQuestions  int
	NextQuestion    *Question
	FinalScore      *float64
}

type QuizSummary struct {
	QuizID         int64
	Status         string
	FinalScore     float64
	CorrectAnswers int
	TotalAnswered  int
}

type QuizResults struct {
	Session     QuizSession
	FolderTitle string
	Answers     []QuizAnswerDetail
}
