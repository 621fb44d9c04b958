package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "coverline/pkg/domain"
	audit "coverline/pkg/platform/audit"
)

func TestInMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()
	claimID := id.NewClaimID().String()
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, store.Append(ctx, audit.Event{
		Action: audit.ActionClaimSubmitted, EntityType: audit.EntityClaim, EntityID: claimID, Timestamp: base,
	}))
	detail := map[string]string{"from": "SUBMITTED", "to": "REJECTED"}
	require.NoError(t, store.Append(ctx, audit.Event{
		Action: audit.ActionClaimStatusChanged, EntityType: audit.EntityClaim, EntityID: claimID,
		Detail: detail, Timestamp: base.Add(time.Minute),
	}))
	require.NoError(t, store.Append(ctx, audit.Event{
		Action: audit.ActionPolicyCreated, EntityType: audit.EntityPolicy, EntityID: id.NewPolicyID().String(), Timestamp: base,
	}))

	t.Run("lists one entity oldest first", func(t *testing.T) {
		events, err := store.ListByEntity(ctx, audit.EntityClaim, claimID)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, audit.ActionClaimSubmitted, events[0].Action)
		assert.Equal(t, audit.ActionClaimStatusChanged, events[1].Action)
	})

	t.Run("stored detail is isolated from the caller", func(t *testing.T) {
		detail["to"] = "SETTLED"
		events, err := store.ListByEntity(ctx, audit.EntityClaim, claimID)
		require.NoError(t, err)
		assert.Equal(t, "REJECTED", events[1].Detail["to"])
	})

	t.Run("clear drops everything", func(t *testing.T) {
		store.Clear()
		events, err := store.ListByEntity(ctx, audit.EntityClaim, claimID)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}
