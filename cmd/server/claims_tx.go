package main

import (
	"context"
	"database/sql"
	"time"

	dErrors "coverline/pkg/domain-errors"
	txcontext "coverline/pkg/platform/tx"
)

const defaultClaimsTxTimeout = 5 * time.Second

// claimsPostgresTx runs a claims use-case in one database transaction. The
// transaction travels in ctx, so the claims and audit stores both write
// through it.
type claimsPostgresTx struct {
	db      *sql.DB
	timeout time.Duration
}

func newClaimsPostgresTx(db *sql.DB, timeout time.Duration) *claimsPostgresTx {
	return &claimsPostgresTx{db: db, timeout: timeout}
}

// bound caps ctx at the transaction timeout. An earlier request deadline
// still wins.
func (t *claimsPostgresTx) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := t.timeout
	if timeout <= 0 {
		timeout = defaultClaimsTxTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

func (t *claimsPostgresTx) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}
	// Nested use-cases join the outer transaction.
	if _, ok := txcontext.From(ctx); ok {
		return fn(ctx)
	}

	ctx, cancel := t.bound(ctx)
	defer cancel()

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(txcontext.WithTx(ctx, tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		if ctx.Err() != nil {
			return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction timed out")
		}
		return err
	}
	return nil
}
