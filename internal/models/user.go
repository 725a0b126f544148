package models

import "time"

type User struct {
	ID                int64     `db:"id"`
	Username          string    `db:"username"`
	Email             string    `db:"email"`
	TotalQuizzesTaken int       `db:"total_quizzes_taken"`
	CreatedAt         time.Time `db:"created_at"`
}
