package service

import (
	"context"
	"errors"
	"fmt"

	"coverline/internal/claims/models"
	"coverline/internal/claims/rules"
	id "coverline/pkg/domain"
	dErrors "coverline/pkg/domain-errors"
	"coverline/pkg/platform/audit"
	"coverline/pkg/platform/sentinel"
	"coverline/pkg/requestcontext"
)

// CreatePolicy issues a policy to an existing policyholder.
func (s *Service) CreatePolicy(ctx context.Context, holderID id.PolicyholderID, terms models.PolicyTerms) (_ *models.Policy, err error) {
	ctx, done := s.begin(ctx, "CreatePolicy")
	defer func() { done(err) }()

	var policy *models.Policy
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.store.FindPolicyholder(txCtx, holderID); err != nil {
			return translate(err, holderRef(holderID))
		}
		p, err := models.NewPolicy(id.NewPolicyID(), holderID, terms, requestcontext.Now(txCtx))
		if err != nil {
			return err
		}
		if err := s.store.CreatePolicy(txCtx, p); err != nil {
			if errors.Is(err, sentinel.ErrConflict) {
				return dErrors.New(dErrors.CodeConflict, fmt.Sprintf("policy number %s is already taken", p.PolicyNumber))
			}
			return translate(err, policyRef(p.ID))
		}
		if err := s.emit(txCtx, audit.Event{
			Action:    audit.ActionPolicyCreated,
			EntityID:  p.ID.String(),
			SubjectID: holderID.String(),
			Detail: map[string]string{
				"policy_number": p.PolicyNumber,
				"status":        p.Status.String(),
			},
		}); err != nil {
			return err
		}
		policy = p
		return nil
	})
	if err != nil {
		return nil, translate(err, "policy")
	}
	return policy, nil
}

func (s *Service) GetPolicy(ctx context.Context, policyID id.PolicyID) (_ *models.Policy, err error) {
	ctx, done := s.begin(ctx, "GetPolicy")
	defer func() { done(err) }()

	policy, err := s.store.FindPolicy(ctx, policyID)
	if err != nil {
		return nil, translate(err, policyRef(policyID))
	}
	return policy, nil
}

// ListPolicies returns policies matching filter, oldest first.
func (s *Service) ListPolicies(ctx context.Context, filter models.PolicyFilter) (_ []*models.Policy, err error) {
	ctx, done := s.begin(ctx, "ListPolicies")
	defer func() { done(err) }()

	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("unknown policy status %q", filter.Status))
	}
	filter.Page = filter.Page.Normalize()
	policies, err := s.store.ListPolicies(ctx, filter)
	if err != nil {
		return nil, translate(err, "policies")
	}
	return policies, nil
}

// UpdatePolicy merges patch into the policy. The owner and policy number never change.
func (s *Service) UpdatePolicy(ctx context.Context, policyID id.PolicyID, patch models.PolicyPatch) (_ *models.Policy, err error) {
	ctx, done := s.begin(ctx, "UpdatePolicy")
	defer func() { done(err) }()

	var policy *models.Policy
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := s.store.FindPolicy(txCtx, policyID)
		if err != nil {
			return translate(err, policyRef(policyID))
		}
		previous := p.Status
		if err := p.ApplyPatch(patch, requestcontext.Now(txCtx)); err != nil {
			return err
		}
		if err := s.store.UpdatePolicy(txCtx, p); err != nil {
			return translate(err, policyRef(policyID))
		}
		detail := map[string]string{"status": p.Status.String()}
		if previous != p.Status {
			detail["previous_status"] = previous.String()
		}
		if err := s.emit(txCtx, audit.Event{
			Action:    audit.ActionPolicyUpdated,
			EntityID:  p.ID.String(),
			SubjectID: p.PolicyholderID.String(),
			Detail:    detail,
		}); err != nil {
			return err
		}
		policy = p
		return nil
	})
	if err != nil {
		return nil, translate(err, policyRef(policyID))
	}
	return policy, nil
}

// DeletePolicy removes a policy without open claims, together with its
// remaining claims and their documents.
func (s *Service) DeletePolicy(ctx context.Context, policyID id.PolicyID) (err error) {
	ctx, done := s.begin(ctx, "DeletePolicy")
	defer func() { done(err) }()

	var removedClaims []id.ClaimID
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := s.store.FindPolicy(txCtx, policyID)
		if err != nil {
			return translate(err, policyRef(policyID))
		}
		claims, err := s.store.ListClaims(txCtx, models.ClaimFilter{PolicyID: policyID, Page: models.Unpaged})
		if err != nil {
			return translate(err, "claims")
		}
		if err := rules.CanDeletePolicy(claims); err != nil {
			return err
		}
		if err := s.store.DeletePolicy(txCtx, policyID); err != nil {
			return translate(err, policyRef(policyID))
		}
		for _, c := range claims {
			removedClaims = append(removedClaims, c.ID)
		}
		return s.emit(txCtx, audit.Event{
			Action:    audit.ActionPolicyDeleted,
			EntityID:  policyID.String(),
			SubjectID: p.PolicyholderID.String(),
			Detail: map[string]string{
				"policy_number": p.PolicyNumber,
				"claims":        fmt.Sprint(len(claims)),
			},
		})
	})
	if err != nil {
		return translate(err, policyRef(policyID))
	}
	s.invalidate(ctx, removedClaims...)
	return nil
}
