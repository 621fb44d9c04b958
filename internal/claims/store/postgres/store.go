// Package postgres persists the claims aggregates with database/sql and
// lib/pq. Every query runs on the transaction carried in ctx when there is
// one, so a use-case's writes commit or roll back together.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"coverline/internal/claims/models"
	"coverline/pkg/platform/sentinel"
	txcontext "coverline/pkg/platform/tx"
)

// SQLSTATE codes mapped to sentinels.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	numericOutOfRange   = "22003"
	checkViolation      = "23514"
)

// Store implements the claims service store ports on PostgreSQL.
type Store struct {
	db *sql.DB
}

// New creates a PostgreSQL-backed claims store.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) q(ctx context.Context) txcontext.Querier {
	return txcontext.Or(ctx, s.db)
}

// classify maps driver errors onto sentinels, keeping op for context.
func classify(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, sentinel.ErrNotFound)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case uniqueViolation:
			return fmt.Errorf("%s: %s: %w", op, pqErr.Constraint, sentinel.ErrConflict)
		case foreignKeyViolation:
			return fmt.Errorf("%s: %s: %w", op, pqErr.Constraint, sentinel.ErrNotFound)
		case numericOutOfRange, checkViolation:
			return fmt.Errorf("%s: %s: %w", op, pqErr.Message, sentinel.ErrInvalidValue)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// requireRow turns a zero-row write into ErrNotFound.
func requireRow(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, sentinel.ErrNotFound)
	}
	return nil
}

// pageClause renders LIMIT/OFFSET for a normalized page.
func pageClause(page models.Page, next int) (string, []any) {
	page = page.Normalize()
	if page.Limit < 0 {
		return fmt.Sprintf(" OFFSET $%d", next), []any{page.Offset}
	}
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", next, next+1), []any{page.Limit, page.Offset}
}

type rowScanner interface {
	Scan(dest ...any) error
}
