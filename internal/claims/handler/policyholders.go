package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	id "coverline/pkg/domain"
	"coverline/pkg/platform/httputil"
	"coverline/pkg/requestcontext"
)

// HandleCreatePolicyholder handles POST /policyholders.
func (h *Handler) HandleCreatePolicyholder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[PolicyholderRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	holder, err := h.service.CreatePolicyholder(ctx, req.Fields())
	if err != nil {
		h.fail(ctx, w, err, "failed to create policyholder")
		return
	}

	h.logger.InfoContext(ctx, "policyholder created",
		"request_id", requestID,
		"policyholder_id", holder.ID,
	)
	httputil.WriteJSON(w, http.StatusCreated, FromPolicyholder(holder, requestcontext.Now(ctx)))
}

// HandleGetPolicyholder handles GET /policyholders/{id}.
func (h *Handler) HandleGetPolicyholder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	holderID, err := id.ParsePolicyholderID(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(ctx, w, err, "invalid policyholder id")
		return
	}

	details, err := h.service.GetPolicyholder(ctx, holderID)
	if err != nil {
		h.fail(ctx, w, err, "failed to get policyholder", "policyholder_id", holderID)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromPolicyholderDetails(details, requestcontext.Now(ctx)))
}

// HandleListPolicyholders handles GET /policyholders.
func (h *Handler) HandleListPolicyholders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page, err := parsePage(r)
	if err != nil {
		h.fail(ctx, w, err, "invalid paging")
		return
	}

	holders, err := h.service.ListPolicyholders(ctx, page)
	if err != nil {
		h.fail(ctx, w, err, "failed to list policyholders")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromPolicyholders(holders, requestcontext.Now(ctx)))
}

// HandleUpdatePolicyholder handles PUT /policyholders/{id}.
func (h *Handler) HandleUpdatePolicyholder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	holderID, err := id.ParsePolicyholderID(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(ctx, w, err, "invalid policyholder id")
		return
	}

	req, ok := httputil.DecodeAndPrepare[PolicyholderRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	holder, err := h.service.UpdatePolicyholder(ctx, holderID, req.Fields())
	if err != nil {
		h.fail(ctx, w, err, "failed to update policyholder", "policyholder_id", holderID)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromPolicyholder(holder, requestcontext.Now(ctx)))
}

// HandleDeletePolicyholder handles DELETE /policyholders/{id}.
func (h *Handler) HandleDeletePolicyholder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	holderID, err := id.ParsePolicyholderID(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(ctx, w, err, "invalid policyholder id")
		return
	}

	if err := h.service.DeletePolicyholder(ctx, holderID); err != nil {
		h.fail(ctx, w, err, "failed to delete policyholder", "policyholder_id", holderID)
		return
	}

	h.logger.InfoContext(ctx, "policyholder deleted",
		"request_id", requestcontext.RequestID(ctx),
		"policyholder_id", holderID,
	)
	w.WriteHeader(http.StatusNoContent)
}
