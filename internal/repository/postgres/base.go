package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	apperrors "github.com/vidaplus/sghss-api/pkg/errors"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	db *sqlx.DB
}

// NewBaseRepository creates a new base repository
func NewBaseRepository(db *sqlx.DB) BaseRepository {
	return BaseRepository{db: db}
}

// GetDB returns the database instance
func (r *BaseRepository) GetDB() *sqlx.DB {
	return r.db
}

// WithTx executes a function within a transaction
func (r *BaseRepository) WithTx(ctx context.Context, fn func(*sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return apperrors.NewPersistence(err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewPersistence(err)
	}
	return nil
}

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// errNoRows lets repositories report a zero-row mutation through the same
// translation path as a missing read.
func errNoRows() error {
	return sql.ErrNoRows
}

// translateError maps store errors onto the application taxonomy. The unique
// index is the real invariant guard: the pre-check only exists for a friendly
// message, so a racing insert still surfaces as a conflict here.
func translateError(err error, notFoundMsg, conflictMsg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.NewNotFound(notFoundMsg)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return apperrors.NewConflict(conflictMsg)
		case pqForeignKeyViolation:
			return apperrors.NewConflict("registro possui vínculos e não pode ser alterado ou removido")
		}
	}
	return apperrors.NewPersistence(err)
}
