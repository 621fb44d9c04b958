package handler_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coverline/internal/claims/handler"
	"coverline/internal/claims/service"
	"coverline/internal/claims/store/memory"
	"coverline/internal/platform/middleware"
	"coverline/pkg/platform/audit/publisher"
	auditmemory "coverline/pkg/platform/audit/store/memory"
	"coverline/pkg/platform/middleware/metadata"
	"coverline/pkg/platform/middleware/requesttime"
	"coverline/pkg/testutil"
)

func newRouter(t *testing.T, now time.Time) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.New()
	svc := service.New(store,
		service.WithTx(store),
		service.WithLogger(logger),
		service.WithAuditPublisher(publisher.New(auditmemory.NewInMemoryStore())),
	)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(metadata.ClientMetadata)
	r.Use(middleware.Recovery(logger))
	r.Use(requesttime.MiddlewareWithClock(func() time.Time { return now }))
	handler.New(svc, logger, handler.WithHealthCheck("storage", store.Ping)).Register(r)
	return r
}

func TestClaimLifecycleOverHTTP(t *testing.T) {
	now := time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC)
	router := newRouter(t, now)
	call := func(method, path string, body any) *httptest.ResponseRecorder {
		var req *http.Request
		if body == nil {
			req = testutil.NewRequest(t, method, path)
		} else {
			req = testutil.NewJSONRequest(t, method, path, body)
		}
		return testutil.DoRequest(router, req)
	}

	rr := call(http.MethodPost, "/policyholders", map[string]any{
		"first_name": "Grace", "last_name": "Hopper", "date_of_birth": "1990-06-16",
		"email": "grace@example.com", "phone": "+15555550100",
		"street": "1 Navy Way", "city": "Arlington", "state": "VA",
		"postal_code": "22202", "country": "US",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	holder := testutil.DecodeJSON[handler.PolicyholderResponse](t, rr)
	assert.Equal(t, 33, holder.Age, "birthday is tomorrow")

	rr = call(http.MethodPost, "/policies", map[string]any{
		"policyholder_id": holder.ID, "policy_type": "AUTO",
		"start_date": "2024-01-01", "end_date": "2024-12-31",
		"coverage_amount": 50000, "premium": 1200, "deductible": 500,
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	policy := testutil.DecodeJSON[handler.PolicyResponse](t, rr)
	assert.Equal(t, "ACTIVE", policy.Status)
	assert.Regexp(t, `^POL-[0-9a-f]{8}$`, policy.PolicyNumber)

	t.Run("rejects an incident after the coverage window", func(t *testing.T) {
		rr := call(http.MethodPost, "/claims", map[string]any{
			"policy_id": policy.ID, "incident_date": "2025-01-02T00:00:00Z",
			"amount_requested": 100, "description": "late", "incident_description": "late",
		})
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "out_of_range")
	})

	t.Run("rejects an amount above coverage", func(t *testing.T) {
		rr := call(http.MethodPost, "/claims", map[string]any{
			"policy_id": policy.ID, "incident_date": "2024-06-01T00:00:00",
			"amount_requested": 50000.01, "description": "big", "incident_description": "big",
		})
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "validation_error")
	})

	rr = call(http.MethodPost, "/claims", map[string]any{
		"policy_id": policy.ID, "incident_date": "2024-06-01T00:00:00",
		"amount_requested": 25000, "description": "Collision",
		"incident_description": "Side impact at junction",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	claim := testutil.DecodeJSON[handler.ClaimResponse](t, rr)
	assert.Equal(t, "SUBMITTED", claim.Status)
	assert.Equal(t, int64(1), claim.Version)
	assert.True(t, claim.FilingDate.Equal(now))

	statusPath := "/claims/" + claim.ID + "/status"

	t.Run("cannot settle before approval", func(t *testing.T) {
		rr := call(http.MethodPut, statusPath, map[string]any{"status": "SETTLED"})
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "invalid_transition")
	})

	t.Run("review requires an adjuster", func(t *testing.T) {
		rr := call(http.MethodPut, statusPath, map[string]any{"status": "UNDER_REVIEW"})
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "validation_error")
	})

	adjuster := uuid.NewString()
	rr = call(http.MethodPut, statusPath, map[string]any{
		"status": "UNDER_REVIEW", "adjuster_id": adjuster, "notes": "assigned to desk 4",
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	claim = testutil.DecodeJSON[handler.ClaimResponse](t, rr)
	require.NotNil(t, claim.AssignedAdjusterID)
	assert.Equal(t, adjuster, *claim.AssignedAdjusterID)
	assert.Equal(t, []string{"assigned to desk 4"}, claim.Notes)

	t.Run("stale expected_version is a conflict", func(t *testing.T) {
		rr := call(http.MethodPut, statusPath, map[string]any{"status": "APPROVED", "expected_version": 1})
		testutil.AssertStatusAndError(t, rr, http.StatusConflict, "conflict")
	})

	rr = call(http.MethodPut, statusPath, map[string]any{"status": "APPROVED", "expected_version": claim.Version})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	t.Run("approved claims cannot be deleted", func(t *testing.T) {
		rr := call(http.MethodDelete, "/claims/"+claim.ID, nil)
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "invalid_state")
	})

	rr = call(http.MethodPost, "/claims/"+claim.ID+"/process", map[string]any{"status": "SETTLED", "settlement_amount": 24000})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	claim = testutil.DecodeJSON[handler.ClaimResponse](t, rr)
	require.NotNil(t, claim.SettlementDate)
	assert.True(t, claim.SettlementDate.Equal(now))
	require.NotNil(t, claim.SettlementAmount)
	assert.InDelta(t, 24000, *claim.SettlementAmount, 0.001)

	rr = call(http.MethodPost, "/claims/"+claim.ID+"/documents", map[string]any{
		"name": "invoice.pdf", "document_type": "invoice", "content_type": "application/pdf",
		"size": 4096, "file_path": "claims/invoice.pdf",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	rr = call(http.MethodGet, "/claims/"+claim.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, testutil.DecodeJSON[handler.ClaimResponse](t, rr).Documents, 1)

	rr = call(http.MethodGet, "/claims/"+claim.ID+"/history", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var actions []string
	for _, e := range testutil.DecodeJSON[[]handler.AuditEventResponse](t, rr) {
		actions = append(actions, e.Action)
		assert.Equal(t, "192.0.2.1", e.Detail["client_ip"])
	}
	assert.Equal(t, []string{
		"claim_submitted",
		"claim_status_changed",
		"claim_status_changed",
		"claim_status_changed",
		"claim_document_added",
	}, actions)

	t.Run("active policy blocks holder deletion", func(t *testing.T) {
		rr := call(http.MethodDelete, "/policyholders/"+holder.ID, nil)
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "invalid_state")
	})

	rr = call(http.MethodGet, "/policyholders/"+holder.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []string{policy.ID}, testutil.DecodeJSON[handler.PolicyholderResponse](t, rr).PolicyIDs)

	rr = call(http.MethodDelete, "/claims/"+claim.ID, nil)
	testutil.AssertStatus(t, rr, http.StatusNoContent)

	rr = call(http.MethodGet, "/claims/"+claim.ID, nil)
	testutil.AssertStatusAndError(t, rr, http.StatusNotFound, "not_found")

	rr = call(http.MethodGet, "/health", nil)
	testutil.AssertStatusOK(t, rr)
}
