package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"coverline/internal/claims/models"
	id "coverline/pkg/domain"
	dErrors "coverline/pkg/domain-errors"
	"coverline/pkg/platform/httputil"
	"coverline/pkg/requestcontext"
)

// HandleCreatePolicy handles POST /policies. An unknown policyholder is a
// 400, not a 404.
func (h *Handler) HandleCreatePolicy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[PolicyRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	policy, err := h.service.CreatePolicy(ctx, req.holderID, req.terms)
	if err != nil {
		h.fail(ctx, w, asReference(err), "failed to create policy", "policyholder_id", req.holderID)
		return
	}

	h.logger.InfoContext(ctx, "policy created",
		"request_id", requestID,
		"policy_id", policy.ID,
		"policy_number", policy.PolicyNumber,
	)
	httputil.WriteJSON(w, http.StatusCreated, FromPolicy(policy))
}

// HandleGetPolicy handles GET /policies/{id}.
func (h *Handler) HandleGetPolicy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	policyID, err := id.ParsePolicyID(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(ctx, w, err, "invalid policy id")
		return
	}

	policy, err := h.service.GetPolicy(ctx, policyID)
	if err != nil {
		h.fail(ctx, w, err, "failed to get policy", "policy_id", policyID)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromPolicy(policy))
}

// HandleListPolicies handles GET /policies?policyholder_id=&status=.
func (h *Handler) HandleListPolicies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	filter, err := parsePolicyFilter(r)
	if err != nil {
		h.fail(ctx, w, err, "invalid policy filter")
		return
	}

	policies, err := h.service.ListPolicies(ctx, filter)
	if err != nil {
		h.fail(ctx, w, err, "failed to list policies")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromPolicies(policies))
}

// HandleUpdatePolicy handles PATCH /policies/{id}.
func (h *Handler) HandleUpdatePolicy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	policyID, err := id.ParsePolicyID(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(ctx, w, err, "invalid policy id")
		return
	}

	req, ok := httputil.DecodeAndPrepare[PolicyPatchRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	policy, err := h.service.UpdatePolicy(ctx, policyID, req.patch)
	if err != nil {
		h.fail(ctx, w, err, "failed to update policy", "policy_id", policyID)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromPolicy(policy))
}

// HandleDeletePolicy handles DELETE /policies/{id}.
func (h *Handler) HandleDeletePolicy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	policyID, err := id.ParsePolicyID(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(ctx, w, err, "invalid policy id")
		return
	}

	if err := h.service.DeletePolicy(ctx, policyID); err != nil {
		h.fail(ctx, w, err, "failed to delete policy", "policy_id", policyID)
		return
	}

	h.logger.InfoContext(ctx, "policy deleted",
		"request_id", requestcontext.RequestID(ctx),
		"policy_id", policyID,
	)
	w.WriteHeader(http.StatusNoContent)
}

func parsePolicyFilter(r *http.Request) (models.PolicyFilter, error) {
	page, err := parsePage(r)
	if err != nil {
		return models.PolicyFilter{}, err
	}
	filter := models.PolicyFilter{Page: page}
	q := r.URL.Query()
	if raw := q.Get("policyholder_id"); raw != "" {
		holderID, err := id.ParsePolicyholderID(raw)
		if err != nil {
			return models.PolicyFilter{}, err
		}
		filter.PolicyholderID = holderID
	}
	if raw := q.Get("status"); raw != "" {
		status := models.PolicyStatus(raw)
		if !status.IsValid() {
			return models.PolicyFilter{}, dErrors.New(dErrors.CodeBadRequest, "status must be one of PENDING, ACTIVE, EXPIRED, CANCELLED")
		}
		filter.Status = status
	}
	return filter, nil
}
