package publisher

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "coverline/pkg/domain"
	audit "coverline/pkg/platform/audit"
	"coverline/pkg/platform/audit/store/memory"
	"coverline/pkg/platform/middleware/metadata"
	"coverline/pkg/requestcontext"
)

type failingStore struct {
	err error
}

func (f failingStore) Append(context.Context, audit.Event) error { return f.err }

func (f failingStore) ListByEntity(context.Context, audit.EntityType, string) ([]audit.Event, error) {
	return nil, f.err
}

func TestPublisher_Emit(t *testing.T) {
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithRequestID(requestcontext.WithTime(context.Background(), now), "req-42")

	t.Run("fills derived fields and persists", func(t *testing.T) {
		store := memory.NewInMemoryStore()
		pub := New(store)
		claimID := id.NewClaimID().String()

		err := pub.Emit(ctx, audit.Event{
			Action:   audit.ActionClaimSubmitted,
			EntityID: claimID,
		})
		require.NoError(t, err)

		events, err := pub.History(ctx, audit.EntityClaim, claimID)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, audit.EntityClaim, events[0].EntityType)
		assert.Equal(t, now, events[0].Timestamp)
		assert.Equal(t, "req-42", events[0].RequestID)
		assert.NotEqual(t, id.AuditEventID{}, events[0].ID)
	})

	t.Run("stamps the client address without touching the caller's detail", func(t *testing.T) {
		store := memory.NewInMemoryStore()
		pub := New(store)
		clientCtx := metadata.WithClient(ctx, metadata.Client{IP: "203.0.113.7"})
		detail := map[string]string{"from": "SUBMITTED"}

		require.NoError(t, pub.Emit(clientCtx, audit.Event{
			Action:   audit.ActionClaimStatusChanged,
			EntityID: "c-9",
			Detail:   detail,
		}))

		events, err := pub.History(ctx, audit.EntityClaim, "c-9")
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "203.0.113.7", events[0].Detail["client_ip"])
		assert.Equal(t, "SUBMITTED", events[0].Detail["from"])
		assert.NotContains(t, detail, "client_ip")
	})

	t.Run("rejects unknown actions", func(t *testing.T) {
		pub := New(memory.NewInMemoryStore())
		err := pub.Emit(ctx, audit.Event{Action: "claim_teleported", EntityID: "x"})
		require.Error(t, err)
	})

	t.Run("rejects missing entity id", func(t *testing.T) {
		pub := New(memory.NewInMemoryStore())
		err := pub.Emit(ctx, audit.Event{Action: audit.ActionPolicyCreated})
		require.Error(t, err)
	})

	t.Run("fails closed when the store fails", func(t *testing.T) {
		m := NewMetrics(prometheus.NewRegistry())
		storeErr := errors.New("disk full")
		pub := New(failingStore{err: storeErr}, WithMetrics(m))

		err := pub.Emit(ctx, audit.Event{Action: audit.ActionClaimDeleted, EntityID: "c-1"})

		require.Error(t, err)
		assert.ErrorIs(t, err, storeErr)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.PersistFailures))
	})

	t.Run("counts emitted events by action", func(t *testing.T) {
		m := NewMetrics(prometheus.NewRegistry())
		pub := New(memory.NewInMemoryStore(), WithMetrics(m))

		require.NoError(t, pub.Emit(ctx, audit.Event{Action: audit.ActionPolicyCreated, EntityID: "p-1"}))
		require.NoError(t, pub.Emit(ctx, audit.Event{Action: audit.ActionPolicyCreated, EntityID: "p-2"}))

		assert.Equal(t, 2.0, testutil.ToFloat64(m.EventsEmitted.WithLabelValues(string(audit.ActionPolicyCreated))))
	})
}
