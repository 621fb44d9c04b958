package tx

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithTx(t *testing.T) {
	t.Run("nil tx leaves context untouched", func(t *testing.T) {
		ctx := context.Background()
		assert.Equal(t, ctx, WithTx(ctx, nil))

		_, ok := From(ctx)
		assert.False(t, ok)
	})

	t.Run("round trips the transaction", func(t *testing.T) {
		sqlTx := &sql.Tx{}
		got, ok := From(WithTx(context.Background(), sqlTx))
		assert.True(t, ok)
		assert.Same(t, sqlTx, got)
	})
}

func TestOr(t *testing.T) {
	db := &sql.DB{}

	t.Run("falls back to the pool", func(t *testing.T) {
		q := Or(context.Background(), db)
		assert.Same(t, db, q)
	})

	t.Run("prefers the context transaction", func(t *testing.T) {
		sqlTx := &sql.Tx{}
		q := Or(WithTx(context.Background(), sqlTx), db)
		assert.Same(t, sqlTx, q)
	})
}
