package models

import "time"

type Folder struct {
	ID           int64      `db:"id"`
	Title        string     `db:"title"`
	Description  *string    `db:"description"`
	OwnerID      int64      `db:"owner_id"`
	ShareCode    string     `db:"share_code"`
	IsShareable  bool       `db:"is_shareable"`
	TotalWords   int        `db:"total_words"`
	TotalCopies  int        `db:"total_copies"`
	TotalQuizzes int        `db:"total_quizzes"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at"`
}

type VocabItem struct {
	ID              int64     `db:"id"`
	FolderID        int64     `db:"folder_id"`
	Word            string    `db:"word"`
	Translation     string    `db:"translation"`
	Definition      *string   `db:"definition"`
	ExampleSentence *string   `db:"example_sentence"`
	OrderIndex      int       `db:"order_index"`
	CreatedAt       time.Time `db:"created_at"`
}
