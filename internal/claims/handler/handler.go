// Package handler exposes the claims service over HTTP.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"coverline/internal/claims/models"
	"coverline/internal/claims/rules"
	"coverline/internal/claims/service"
	id "coverline/pkg/domain"
	dErrors "coverline/pkg/domain-errors"
	"coverline/pkg/platform/audit"
	"coverline/pkg/platform/httputil"
	"coverline/pkg/requestcontext"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks coverline/internal/claims/handler Service

// Service is the claims use-case surface the handlers depend on.
type Service interface {
	CreatePolicyholder(ctx context.Context, fields models.PolicyholderFields) (*models.Policyholder, error)
	GetPolicyholder(ctx context.Context, holderID id.PolicyholderID) (*models.PolicyholderDetails, error)
	ListPolicyholders(ctx context.Context, page models.Page) ([]*models.Policyholder, error)
	UpdatePolicyholder(ctx context.Context, holderID id.PolicyholderID, fields models.PolicyholderFields) (*models.Policyholder, error)
	DeletePolicyholder(ctx context.Context, holderID id.PolicyholderID) error

	CreatePolicy(ctx context.Context, holderID id.PolicyholderID, terms models.PolicyTerms) (*models.Policy, error)
	GetPolicy(ctx context.Context, policyID id.PolicyID) (*models.Policy, error)
	ListPolicies(ctx context.Context, filter models.PolicyFilter) ([]*models.Policy, error)
	UpdatePolicy(ctx context.Context, policyID id.PolicyID, patch models.PolicyPatch) (*models.Policy, error)
	DeletePolicy(ctx context.Context, policyID id.PolicyID) error

	SubmitClaim(ctx context.Context, sub rules.Submission) (*models.ClaimDetails, error)
	GetClaim(ctx context.Context, claimID id.ClaimID) (*models.ClaimDetails, error)
	ListClaims(ctx context.Context, filter models.ClaimFilter) ([]*models.Claim, error)
	ProcessClaim(ctx context.Context, claimID id.ClaimID, cmd service.ProcessCommand) (*models.ClaimDetails, error)
	DeleteClaim(ctx context.Context, claimID id.ClaimID) error
	ClaimHistory(ctx context.Context, claimID id.ClaimID) ([]audit.Event, error)

	AddClaimDocument(ctx context.Context, claimID id.ClaimID, fields models.DocumentFields) (*models.ClaimDocument, error)
	ListClaimDocuments(ctx context.Context, claimID id.ClaimID) ([]*models.ClaimDocument, error)
}

// HealthCheck reports whether one dependency is usable.
type HealthCheck func(ctx context.Context) error

const healthCheckTimeout = 2 * time.Second

// Handler wires the claims endpoints to the service.
type Handler struct {
	service Service
	logger  *slog.Logger
	checks  map[string]HealthCheck
	version string
}

type Option func(*Handler)

// WithHealthCheck adds a named dependency to GET /health.
func WithHealthCheck(name string, check HealthCheck) Option {
	return func(h *Handler) {
		if check != nil {
			h.checks[name] = check
		}
	}
}

func WithVersion(version string) Option {
	return func(h *Handler) {
		h.version = version
	}
}

// New constructs a claims handler.
func New(service Service, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{
		service: service,
		logger:  logger,
		checks:  make(map[string]HealthCheck),
		version: "1.0.0",
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.logger == nil {
		h.logger = slog.Default()
	}
	return h
}

// Register mounts every claims endpoint on r.
func (h *Handler) Register(r chi.Router) {
	r.Get("/", h.HandleRoot)
	r.Get("/health", h.HandleHealth)

	r.Route("/policyholders", func(r chi.Router) {
		r.Post("/", h.HandleCreatePolicyholder)
		r.Get("/", h.HandleListPolicyholders)
		r.Get("/{id}", h.HandleGetPolicyholder)
		r.Put("/{id}", h.HandleUpdatePolicyholder)
		r.Delete("/{id}", h.HandleDeletePolicyholder)
	})

	r.Route("/policies", func(r chi.Router) {
		r.Post("/", h.HandleCreatePolicy)
		r.Get("/", h.HandleListPolicies)
		r.Get("/{id}", h.HandleGetPolicy)
		r.Patch("/{id}", h.HandleUpdatePolicy)
		r.Delete("/{id}", h.HandleDeletePolicy)
	})

	r.Route("/claims", func(r chi.Router) {
		r.Post("/", h.HandleSubmitClaim)
		r.Get("/", h.HandleListClaims)
		r.Get("/{id}", h.HandleGetClaim)
		r.Delete("/{id}", h.HandleDeleteClaim)
		r.Put("/{id}/status", h.HandleProcessClaim)
		r.Post("/{id}/process", h.HandleProcessClaim)
		r.Get("/{id}/documents", h.HandleListClaimDocuments)
		r.Post("/{id}/documents", h.HandleAddClaimDocument)
		r.Get("/{id}/history", h.HandleClaimHistory)
	})
}

// HandleRoot handles GET / with a service descriptor.
func (h *Handler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"title":       "Claims Management System API",
		"version":     h.version,
		"description": "API for managing insurance claims and policies",
		"endpoints": map[string]string{
			"policyholders": "/policyholders",
			"policies":      "/policies",
			"claims":        "/claims",
			"health":        "/health",
			"metrics":       "/metrics",
		},
	})
}

// HandleHealth handles GET /health. Any failing check turns the response 503.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	status, code := "healthy", http.StatusOK
	results := make(map[string]string, len(h.checks))
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			h.logger.WarnContext(ctx, "health check failed",
				"request_id", requestcontext.RequestID(ctx),
				"check", name,
				"error", err,
			)
			results[name] = "unavailable"
			status, code = "unhealthy", http.StatusServiceUnavailable
			continue
		}
		results[name] = "ok"
	}
	httputil.WriteJSON(w, code, map[string]any{
		"status":    status,
		"timestamp": requestcontext.Now(ctx),
		"checks":    results,
	})
}

// fail logs err at a level matching its class and writes the response.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, err error, msg string, attrs ...any) {
	attrs = append([]any{"request_id", requestcontext.RequestID(ctx), "error", err}, attrs...)
	switch dErrors.CodeOf(err) {
	case dErrors.CodeInternal, dErrors.CodeTimeout:
		h.logger.ErrorContext(ctx, msg, attrs...)
	default:
		h.logger.WarnContext(ctx, msg, attrs...)
	}
	httputil.WriteError(w, err)
}

// asReference re-codes a missing referenced entity as a bad request.
func asReference(err error) error {
	if dErrors.HasCode(err, dErrors.CodeNotFound) {
		return dErrors.Wrap(err, dErrors.CodeBadRequest, dErrors.Message(err))
	}
	return err
}

// parsePage reads ?limit= and ?offset=. Absent values use the defaults.
func parsePage(r *http.Request) (models.Page, error) {
	var page models.Page
	q := r.URL.Query()
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return models.Page{}, dErrors.New(dErrors.CodeBadRequest, "limit must be a positive integer")
		}
		page.Limit = n
	}
	if raw := q.Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return models.Page{}, dErrors.New(dErrors.CodeBadRequest, "offset must be a non-negative integer")
		}
		page.Offset = n
	}
	return page, nil
}
