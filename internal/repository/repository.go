package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrNotActive = errors.New("quiz session is not active")
)

type QueryI interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type TxI interface {
	QueryI
	Commit() error
	Rollback() error
}

type DBI interface {
	QueryI
	BeginTx(ctx context.Context) (TxI, error)
}

type sqlxDB struct {
	*sqlx.DB
}

func (d sqlxDB) BeginTx(ctx context.Context) (TxI, error) {
	tx, err := d.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// WrapDB adapts a sqlx handle to the DBI seam the repositories are built on.
func WrapDB(db *sqlx.DB) DBI {
	return sqlxDB{db}
}

type Repository struct {
	*FoldersR
	*QuizR
	*UsersR
}

func NewRepository(db DBI) Repository {
	return Repository{
		FoldersR: NewFoldersRepository(db),
		QuizR:    NewQuizRepository(db),
		UsersR:   NewUsersRepository(db),
	}
}
