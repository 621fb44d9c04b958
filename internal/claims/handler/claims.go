package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"coverline/internal/claims/models"
	"coverline/internal/claims/service"
	id "coverline/pkg/domain"
	dErrors "coverline/pkg/domain-errors"
	"coverline/pkg/platform/httputil"
	"coverline/pkg/requestcontext"
)

// HandleSubmitClaim handles POST /claims.
func (h *Handler) HandleSubmitClaim(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ClaimRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	details, err := h.service.SubmitClaim(ctx, req.submission)
	if err != nil {
		h.fail(ctx, w, asReference(err), "claim submission rejected", "policy_id", req.submission.PolicyID)
		return
	}

	h.logger.InfoContext(ctx, "claim submitted",
		"request_id", requestID,
		"claim_id", details.Claim.ID,
		"claim_number", details.Claim.ClaimNumber,
		"policy_id", details.Claim.PolicyID,
	)
	httputil.WriteJSON(w, http.StatusCreated, FromClaimDetails(details))
}

// HandleGetClaim handles GET /claims/{id}.
func (h *Handler) HandleGetClaim(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claimID, ok := h.claimID(w, r)
	if !ok {
		return
	}

	details, err := h.service.GetClaim(ctx, claimID)
	if err != nil {
		h.fail(ctx, w, err, "failed to get claim", "claim_id", claimID)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromClaimDetails(details))
}

// HandleListClaims handles GET /claims?policy_id=&status=.
func (h *Handler) HandleListClaims(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	filter, err := parseClaimFilter(r)
	if err != nil {
		h.fail(ctx, w, err, "invalid claim filter")
		return
	}

	claims, err := h.service.ListClaims(ctx, filter)
	if err != nil {
		h.fail(ctx, w, err, "failed to list claims")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromClaims(claims))
}

// HandleProcessClaim handles PUT /claims/{id}/status and its
// POST /claims/{id}/process alias.
func (h *Handler) HandleProcessClaim(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	claimID, ok := h.claimID(w, r)
	if !ok {
		return
	}

	req, ok := httputil.DecodeAndPrepare[ProcessRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	details, err := h.service.ProcessClaim(ctx, claimID, service.ProcessCommand{
		Transition:      req.transition,
		ExpectedVersion: req.ExpectedVersion,
	})
	if err != nil {
		h.fail(ctx, w, err, "claim transition rejected",
			"claim_id", claimID,
			"target_status", req.transition.To,
		)
		return
	}

	h.logger.InfoContext(ctx, "claim processed",
		"request_id", requestID,
		"claim_id", claimID,
		"status", details.Claim.Status,
		"version", details.Claim.Version,
	)
	httputil.WriteJSON(w, http.StatusOK, FromClaimDetails(details))
}

// HandleDeleteClaim handles DELETE /claims/{id}.
func (h *Handler) HandleDeleteClaim(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claimID, ok := h.claimID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteClaim(ctx, claimID); err != nil {
		h.fail(ctx, w, err, "failed to delete claim", "claim_id", claimID)
		return
	}

	h.logger.InfoContext(ctx, "claim deleted",
		"request_id", requestcontext.RequestID(ctx),
		"claim_id", claimID,
	)
	w.WriteHeader(http.StatusNoContent)
}

// HandleClaimHistory handles GET /claims/{id}/history.
func (h *Handler) HandleClaimHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claimID, ok := h.claimID(w, r)
	if !ok {
		return
	}

	events, err := h.service.ClaimHistory(ctx, claimID)
	if err != nil {
		h.fail(ctx, w, err, "failed to load claim history", "claim_id", claimID)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromAuditEvents(events))
}

// HandleAddClaimDocument handles POST /claims/{id}/documents. An unknown
// claim is a 400, like other references.
func (h *Handler) HandleAddClaimDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	claimID, ok := h.claimID(w, r)
	if !ok {
		return
	}

	req, ok := httputil.DecodeAndPrepare[DocumentRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	doc, err := h.service.AddClaimDocument(ctx, claimID, req.Fields())
	if err != nil {
		h.fail(ctx, w, asReference(err), "failed to add claim document", "claim_id", claimID)
		return
	}

	h.logger.InfoContext(ctx, "claim document added",
		"request_id", requestID,
		"claim_id", claimID,
		"document_id", doc.ID,
	)
	httputil.WriteJSON(w, http.StatusCreated, FromDocument(doc))
}

// HandleListClaimDocuments handles GET /claims/{id}/documents.
func (h *Handler) HandleListClaimDocuments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claimID, ok := h.claimID(w, r)
	if !ok {
		return
	}

	docs, err := h.service.ListClaimDocuments(ctx, claimID)
	if err != nil {
		h.fail(ctx, w, err, "failed to list claim documents", "claim_id", claimID)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromDocuments(docs))
}

func (h *Handler) claimID(w http.ResponseWriter, r *http.Request) (id.ClaimID, bool) {
	claimID, err := id.ParseClaimID(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(r.Context(), w, err, "invalid claim id")
		return id.ClaimID{}, false
	}
	return claimID, true
}

func parseClaimFilter(r *http.Request) (models.ClaimFilter, error) {
	page, err := parsePage(r)
	if err != nil {
		return models.ClaimFilter{}, err
	}
	filter := models.ClaimFilter{Page: page}
	q := r.URL.Query()
	if raw := q.Get("policy_id"); raw != "" {
		policyID, err := id.ParsePolicyID(raw)
		if err != nil {
			return models.ClaimFilter{}, err
		}
		filter.PolicyID = policyID
	}
	if raw := q.Get("status"); raw != "" {
		status := models.ClaimStatus(raw)
		if !status.IsValid() {
			return models.ClaimFilter{}, dErrors.New(dErrors.CodeBadRequest, "status must be a valid claim status")
		}
		filter.Status = status
	}
	return filter, nil
}
