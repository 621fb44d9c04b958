package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimsTxBound(t *testing.T) {
	t.Run("shortens a longer request deadline", func(t *testing.T) {
		parent, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		ctx, done := newClaimsPostgresTx(nil, 2*time.Second).bound(parent)
		defer done()

		deadline, ok := ctx.Deadline()
		require.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(2*time.Second), deadline, time.Second)
	})

	t.Run("keeps an earlier request deadline", func(t *testing.T) {
		parent, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()
		want, _ := parent.Deadline()

		ctx, done := newClaimsPostgresTx(nil, time.Minute).bound(parent)
		defer done()

		deadline, ok := ctx.Deadline()
		require.True(t, ok)
		assert.Equal(t, want, deadline)
	})

	t.Run("falls back to the default without a configured timeout", func(t *testing.T) {
		ctx, done := newClaimsPostgresTx(nil, 0).bound(context.Background())
		defer done()

		deadline, ok := ctx.Deadline()
		require.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(defaultClaimsTxTimeout), deadline, time.Second)
	})
}
