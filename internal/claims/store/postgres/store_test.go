package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"coverline/pkg/platform/sentinel"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"no rows", sql.ErrNoRows, sentinel.ErrNotFound},
		{"unique violation", &pq.Error{Code: uniqueViolation, Constraint: "policyholders_email_key"}, sentinel.ErrConflict},
		{"foreign key violation", &pq.Error{Code: foreignKeyViolation, Constraint: "policies_policyholder_id_fkey"}, sentinel.ErrNotFound},
		{"numeric overflow", &pq.Error{Code: numericOutOfRange, Message: "numeric field overflow"}, sentinel.ErrInvalidValue},
		{"check violation", &pq.Error{Code: checkViolation, Message: "new row violates check constraint"}, sentinel.ErrInvalidValue},
		{"wrapped driver error", fmt.Errorf("exec: %w", &pq.Error{Code: numericOutOfRange}), sentinel.ErrInvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classify(tt.err, "insert policy")
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorContains(t, err, "insert policy")
		})
	}

	t.Run("unknown errors pass through", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := classify(cause, "insert policy")
		assert.ErrorIs(t, err, cause)
		assert.NotErrorIs(t, err, sentinel.ErrInvalidValue)
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, classify(nil, "insert policy"))
	})
}
