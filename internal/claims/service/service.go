// Package service orchestrates the claims use-cases: it loads entities through
// the store ports, runs the domain rules and the lifecycle machine, persists
// the result and records an audit event, all inside one transaction.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"coverline/internal/claims/lifecycle"
	claimsmetrics "coverline/internal/claims/metrics"
	"coverline/internal/claims/models"
	id "coverline/pkg/domain"
	dErrors "coverline/pkg/domain-errors"
	"coverline/pkg/platform/audit"
	"coverline/pkg/platform/sentinel"
)

const tracerName = "coverline/internal/claims/service"

// PolicyholderStore persists policyholders. Email is unique across
// policyholders; a duplicate surfaces as sentinel.ErrConflict.
type PolicyholderStore interface {
	CreatePolicyholder(ctx context.Context, holder *models.Policyholder) error
	FindPolicyholder(ctx context.Context, holderID id.PolicyholderID) (*models.Policyholder, error)
	UpdatePolicyholder(ctx context.Context, holder *models.Policyholder) error
	// DeletePolicyholder removes the policyholder with its policies, claims
	// and documents.
	DeletePolicyholder(ctx context.Context, holderID id.PolicyholderID) error
	ListPolicyholders(ctx context.Context, page models.Page) ([]*models.Policyholder, error)
}

type PolicyStore interface {
	CreatePolicy(ctx context.Context, policy *models.Policy) error
	FindPolicy(ctx context.Context, policyID id.PolicyID) (*models.Policy, error)
	UpdatePolicy(ctx context.Context, policy *models.Policy) error
	// DeletePolicy removes the policy with its claims and documents.
	DeletePolicy(ctx context.Context, policyID id.PolicyID) error
	ListPolicies(ctx context.Context, filter models.PolicyFilter) ([]*models.Policy, error)
}

type ClaimStore interface {
	CreateClaim(ctx context.Context, claim *models.Claim) error
	FindClaim(ctx context.Context, claimID id.ClaimID) (*models.Claim, error)
	// UpdateClaim is a compare-and-swap on claim.Version. On success the
	// stored and passed claim both carry Version+1; a lost race returns
	// sentinel.ErrStaleVersion.
	UpdateClaim(ctx context.Context, claim *models.Claim) error
	DeleteClaim(ctx context.Context, claimID id.ClaimID) error
	ListClaims(ctx context.Context, filter models.ClaimFilter) ([]*models.Claim, error)
}

type DocumentStore interface {
	CreateDocument(ctx context.Context, doc *models.ClaimDocument) error
	// ListDocuments returns the claim's documents ordered by upload time.
	ListDocuments(ctx context.Context, claimID id.ClaimID) ([]*models.ClaimDocument, error)
}

// Store is the full persistence gateway used by the service.
type Store interface {
	PolicyholderStore
	PolicyStore
	ClaimStore
	DocumentStore
}

// StoreTx runs fn as one unit of work. Stores called with txCtx join the
// transaction; any error from fn discards every write made through it.
type StoreTx interface {
	RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error
}

// ClaimCache is a read-through cache of claim details. A miss is
// sentinel.ErrNotFound.
type ClaimCache interface {
	Get(ctx context.Context, claimID id.ClaimID) (*models.ClaimDetails, error)
	Set(ctx context.Context, details *models.ClaimDetails) error
	Invalidate(ctx context.Context, claimIDs ...id.ClaimID) error
}

// AuditPublisher records and replays audit events. Emit must fail closed.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
	History(ctx context.Context, entityType audit.EntityType, entityID string) ([]audit.Event, error)
}

// Service orchestrates policyholder, policy and claim use-cases.
type Service struct {
	store          Store
	tx             StoreTx
	machine        *lifecycle.Machine
	cache          ClaimCache
	auditPublisher AuditPublisher
	logger         *slog.Logger
	metrics        *claimsmetrics.Metrics
	tracer         trace.Tracer
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *claimsmetrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithTx sets the transaction runner. Without one, use-cases run without
// atomicity guarantees.
func WithTx(tx StoreTx) Option {
	return func(s *Service) {
		s.tx = tx
	}
}

func WithCache(cache ClaimCache) Option {
	return func(s *Service) {
		s.cache = cache
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func WithMachine(m *lifecycle.Machine) Option {
	return func(s *Service) {
		s.machine = m
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tracer
	}
}

// New constructs a Service.
func New(store Store, opts ...Option) *Service {
	s := &Service{store: store}
	for _, opt := range opts {
		opt(s)
	}
	if s.tx == nil {
		s.tx = passthroughTx{}
	}
	if s.machine == nil {
		s.machine = lifecycle.NewMachine()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer(tracerName)
	}
	return s
}

type passthroughTx struct{}

func (passthroughTx) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

// begin opens the span for a use-case and returns the function that closes
// it. Call as:
//
//	ctx, done := s.begin(ctx, "SubmitClaim")
//	defer func() { done(err) }()
func (s *Service) begin(ctx context.Context, useCase string) (context.Context, func(error)) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "claims."+useCase)
	return ctx, func(err error) {
		if err != nil {
			code := dErrors.CodeOf(err)
			span.RecordError(err)
			span.SetStatus(codes.Error, string(code))
			if code == dErrors.CodeInternal || code == dErrors.CodeTimeout {
				s.logger.ErrorContext(ctx, "use-case failed",
					"use_case", useCase,
					"error", err,
				)
			}
		}
		span.End()
		s.metrics.ObserveUseCase(useCase, start)
	}
}

// emit publishes an audit event. Without a publisher events are dropped.
func (s *Service) emit(ctx context.Context, event audit.Event) error {
	if s.auditPublisher == nil {
		return nil
	}
	if err := s.auditPublisher.Emit(ctx, event); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to record audit event")
	}
	return nil
}

// invalidate drops cached claim details after a commit. Cache failures are
// logged and never fail the use-case.
func (s *Service) invalidate(ctx context.Context, claimIDs ...id.ClaimID) {
	if s.cache == nil || len(claimIDs) == 0 {
		return
	}
	if err := s.cache.Invalidate(ctx, claimIDs...); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate claim cache",
			"claims", len(claimIDs),
			"error", err,
		)
	}
}

// translate turns store sentinels into classified errors. Errors that are
// already classified pass through.
func translate(err error, what string) error {
	if err == nil {
		return nil
	}
	var de *dErrors.Error
	switch {
	case errors.As(err, &de):
		return err
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, what+" not found")
	case errors.Is(err, sentinel.ErrStaleVersion):
		return dErrors.New(dErrors.CodeConflict, what+" was modified concurrently, reload and retry")
	case errors.Is(err, sentinel.ErrConflict):
		return dErrors.New(dErrors.CodeConflict, what+" already exists")
	case errors.Is(err, sentinel.ErrInvalidValue):
		return dErrors.New(dErrors.CodeValidation, what+" has a value out of the storable range")
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return dErrors.Wrap(err, dErrors.CodeTimeout, "request timed out")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to access "+what)
	}
}

func holderRef(holderID id.PolicyholderID) string {
	return fmt.Sprintf("policyholder %s", holderID)
}

func policyRef(policyID id.PolicyID) string {
	return fmt.Sprintf("policy %s", policyID)
}

func claimRef(claimID id.ClaimID) string {
	return fmt.Sprintf("claim %s", claimID)
}
