package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"coverline/internal/claims/lifecycle"
	"coverline/internal/claims/models"
	"coverline/internal/claims/rules"
	id "coverline/pkg/domain"
	dErrors "coverline/pkg/domain-errors"
	"coverline/pkg/platform/audit"
	"coverline/pkg/platform/sentinel"
	"coverline/pkg/requestcontext"
)

// ProcessCommand moves a claim through its lifecycle. ExpectedVersion, when
// set, must match the stored version or the command is a conflict.
type ProcessCommand struct {
	Transition      lifecycle.Transition
	ExpectedVersion *int64
}

// SubmitClaim files a claim against an ACTIVE policy and returns it with its
// (initially empty) documents.
func (s *Service) SubmitClaim(ctx context.Context, sub rules.Submission) (_ *models.ClaimDetails, err error) {
	ctx, done := s.begin(ctx, "SubmitClaim")
	defer func() {
		if err != nil {
			s.metrics.IncrementRejection(string(dErrors.CodeOf(err)))
		}
		done(err)
	}()

	var details *models.ClaimDetails
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		policy, err := s.store.FindPolicy(txCtx, sub.PolicyID)
		if err != nil && !errors.Is(err, sentinel.ErrNotFound) {
			return translate(err, policyRef(sub.PolicyID))
		}
		claim, err := rules.CheckSubmission(policy, sub, id.NewClaimID(), requestcontext.Now(txCtx))
		if err != nil {
			return err
		}
		if err := s.store.CreateClaim(txCtx, claim); err != nil {
			if errors.Is(err, sentinel.ErrConflict) {
				return dErrors.New(dErrors.CodeConflict, fmt.Sprintf("claim number %s is already taken", claim.ClaimNumber))
			}
			return translate(err, claimRef(claim.ID))
		}
		docs, err := s.store.ListDocuments(txCtx, claim.ID)
		if err != nil {
			return translate(err, "claim documents")
		}
		if err := s.emit(txCtx, audit.Event{
			Action:    audit.ActionClaimSubmitted,
			EntityID:  claim.ID.String(),
			SubjectID: policy.ID.String(),
			Detail: map[string]string{
				"claim_number":     claim.ClaimNumber,
				"amount_requested": strconv.FormatFloat(claim.AmountRequested, 'f', 2, 64),
			},
		}); err != nil {
			return err
		}
		details = &models.ClaimDetails{Claim: claim, Documents: docs}
		return nil
	})
	if err != nil {
		return nil, translate(err, "claim")
	}
	s.metrics.IncrementClaimsSubmitted()
	return details, nil
}

// GetClaim returns the claim with its documents, served from the cache when
// one is configured.
func (s *Service) GetClaim(ctx context.Context, claimID id.ClaimID) (_ *models.ClaimDetails, err error) {
	ctx, done := s.begin(ctx, "GetClaim")
	defer func() { done(err) }()

	if cached := s.cachedClaim(ctx, claimID); cached != nil {
		return cached, nil
	}

	details, err := s.loadClaim(ctx, claimID)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, details); err != nil {
			s.logger.WarnContext(ctx, "failed to cache claim",
				"claim_id", claimID.String(),
				"error", err,
			)
		} else if current := s.confirmFill(ctx, details); current != nil {
			return current, nil
		}
	}
	return details, nil
}

// confirmFill re-reads the claim after a cache fill. A write that committed
// between the load and the fill may have invalidated before the fill landed,
// so a changed or vanished claim drops the entry again. It returns the newer
// details when the claim changed.
func (s *Service) confirmFill(ctx context.Context, filled *models.ClaimDetails) *models.ClaimDetails {
	current, err := s.loadClaim(ctx, filled.Claim.ID)
	if err == nil && sameSnapshot(filled, current) {
		return nil
	}
	s.invalidate(ctx, filled.Claim.ID)
	if err != nil {
		return nil
	}
	return current
}

// sameSnapshot compares the parts of a claim every write changes: claim
// writes bump the version and documents are append-only.
func sameSnapshot(a, b *models.ClaimDetails) bool {
	return a.Claim.Version == b.Claim.Version && len(a.Documents) == len(b.Documents)
}

func (s *Service) cachedClaim(ctx context.Context, claimID id.ClaimID) *models.ClaimDetails {
	if s.cache == nil {
		return nil
	}
	details, err := s.cache.Get(ctx, claimID)
	switch {
	case err == nil:
		s.metrics.IncrementCacheLookup("hit")
		return details
	case errors.Is(err, sentinel.ErrNotFound):
		s.metrics.IncrementCacheLookup("miss")
	default:
		s.metrics.IncrementCacheLookup("error")
		s.logger.WarnContext(ctx, "claim cache read failed",
			"claim_id", claimID.String(),
			"error", err,
		)
	}
	return nil
}

func (s *Service) loadClaim(ctx context.Context, claimID id.ClaimID) (*models.ClaimDetails, error) {
	claim, err := s.store.FindClaim(ctx, claimID)
	if err != nil {
		return nil, translate(err, claimRef(claimID))
	}
	docs, err := s.store.ListDocuments(ctx, claimID)
	if err != nil {
		return nil, translate(err, "claim documents")
	}
	return &models.ClaimDetails{Claim: claim, Documents: docs}, nil
}

// ListClaims returns claims matching filter, oldest first.
func (s *Service) ListClaims(ctx context.Context, filter models.ClaimFilter) (_ []*models.Claim, err error) {
	ctx, done := s.begin(ctx, "ListClaims")
	defer func() { done(err) }()

	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("unknown claim status %q", filter.Status))
	}
	filter.Page = filter.Page.Normalize()
	claims, err := s.store.ListClaims(ctx, filter)
	if err != nil {
		return nil, translate(err, "claims")
	}
	return claims, nil
}

// ProcessClaim applies a status transition. The persisted claim is unchanged
// when the transition is refused or loses a concurrent update.
func (s *Service) ProcessClaim(ctx context.Context, claimID id.ClaimID, cmd ProcessCommand) (_ *models.ClaimDetails, err error) {
	ctx, done := s.begin(ctx, "ProcessClaim")
	defer func() {
		if err != nil {
			s.metrics.IncrementRejection(string(dErrors.CodeOf(err)))
		}
		done(err)
	}()

	var (
		details *models.ClaimDetails
		from    models.ClaimStatus
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		claim, err := s.store.FindClaim(txCtx, claimID)
		if err != nil {
			return translate(err, claimRef(claimID))
		}
		if cmd.ExpectedVersion != nil && *cmd.ExpectedVersion != claim.Version {
			return dErrors.New(dErrors.CodeConflict,
				fmt.Sprintf("claim %s is at version %d, expected %d", claim.ClaimNumber, claim.Version, *cmd.ExpectedVersion))
		}
		from = claim.Status
		now := requestcontext.Now(txCtx)
		if err := s.machine.Process(claim, cmd.Transition, now); err != nil {
			return err
		}
		if err := claim.Validate(now); err != nil {
			return err
		}
		if err := s.store.UpdateClaim(txCtx, claim); err != nil {
			return translate(err, claimRef(claimID))
		}
		docs, err := s.store.ListDocuments(txCtx, claimID)
		if err != nil {
			return translate(err, "claim documents")
		}
		if err := s.emit(txCtx, audit.Event{
			Action:    audit.ActionClaimStatusChanged,
			EntityID:  claim.ID.String(),
			SubjectID: claim.PolicyID.String(),
			Detail:    transitionDetail(from, claim),
		}); err != nil {
			return err
		}
		details = &models.ClaimDetails{Claim: claim, Documents: docs}
		return nil
	})
	if err != nil {
		return nil, translate(err, claimRef(claimID))
	}
	s.invalidate(ctx, claimID)
	s.metrics.IncrementTransition(from.String(), details.Claim.Status.String())
	return details, nil
}

func transitionDetail(from models.ClaimStatus, claim *models.Claim) map[string]string {
	detail := map[string]string{
		"from":    from.String(),
		"to":      claim.Status.String(),
		"version": strconv.FormatInt(claim.Version, 10),
	}
	if claim.AssignedAdjusterID != nil {
		detail["adjuster_id"] = claim.AssignedAdjusterID.String()
	}
	if claim.SettlementAmount != nil {
		detail["settlement_amount"] = strconv.FormatFloat(*claim.SettlementAmount, 'f', 2, 64)
	}
	return detail
}

// DeleteClaim removes a REJECTED or SETTLED claim with its documents.
func (s *Service) DeleteClaim(ctx context.Context, claimID id.ClaimID) (err error) {
	ctx, done := s.begin(ctx, "DeleteClaim")
	defer func() { done(err) }()

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		claim, err := s.store.FindClaim(txCtx, claimID)
		if err != nil {
			return translate(err, claimRef(claimID))
		}
		if err := rules.CanDeleteClaim(claim); err != nil {
			return err
		}
		if err := s.store.DeleteClaim(txCtx, claimID); err != nil {
			return translate(err, claimRef(claimID))
		}
		return s.emit(txCtx, audit.Event{
			Action:    audit.ActionClaimDeleted,
			EntityID:  claimID.String(),
			SubjectID: claim.PolicyID.String(),
			Detail: map[string]string{
				"claim_number": claim.ClaimNumber,
				"status":       claim.Status.String(),
			},
		})
	})
	if err != nil {
		return translate(err, claimRef(claimID))
	}
	s.invalidate(ctx, claimID)
	return nil
}

// ClaimHistory returns the claim's audit trail, oldest first. The trail
// outlives the claim itself.
func (s *Service) ClaimHistory(ctx context.Context, claimID id.ClaimID) (_ []audit.Event, err error) {
	ctx, done := s.begin(ctx, "ClaimHistory")
	defer func() { done(err) }()

	var events []audit.Event
	if s.auditPublisher != nil {
		events, err = s.auditPublisher.History(ctx, audit.EntityClaim, claimID.String())
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load claim history")
		}
	}
	if len(events) == 0 {
		if _, err := s.store.FindClaim(ctx, claimID); err != nil {
			return nil, translate(err, claimRef(claimID))
		}
	}
	if events == nil {
		events = []audit.Event{}
	}
	return events, nil
}
