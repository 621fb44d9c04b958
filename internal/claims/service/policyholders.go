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

// CreatePolicyholder registers a new policyholder. A duplicate email is a conflict.
func (s *Service) CreatePolicyholder(ctx context.Context, fields models.PolicyholderFields) (_ *models.Policyholder, err error) {
	ctx, done := s.begin(ctx, "CreatePolicyholder")
	defer func() { done(err) }()

	var holder *models.Policyholder
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		h, err := models.NewPolicyholder(id.NewPolicyholderID(), fields, requestcontext.Now(txCtx))
		if err != nil {
			return err
		}
		if err := s.store.CreatePolicyholder(txCtx, h); err != nil {
			return translateHolderWrite(err, h)
		}
		if err := s.emit(txCtx, audit.Event{
			Action:   audit.ActionPolicyholderCreated,
			EntityID: h.ID.String(),
			Detail:   map[string]string{"email": h.Email},
		}); err != nil {
			return err
		}
		holder = h
		return nil
	})
	if err != nil {
		return nil, translate(err, "policyholder")
	}
	return holder, nil
}

// GetPolicyholder returns the policyholder with the identities of its policies.
func (s *Service) GetPolicyholder(ctx context.Context, holderID id.PolicyholderID) (_ *models.PolicyholderDetails, err error) {
	ctx, done := s.begin(ctx, "GetPolicyholder")
	defer func() { done(err) }()

	holder, err := s.store.FindPolicyholder(ctx, holderID)
	if err != nil {
		return nil, translate(err, holderRef(holderID))
	}
	policies, err := s.store.ListPolicies(ctx, models.PolicyFilter{
		PolicyholderID: holderID,
		Page:           models.Unpaged,
	})
	if err != nil {
		return nil, translate(err, "policies")
	}
	ids := make([]id.PolicyID, 0, len(policies))
	for _, p := range policies {
		ids = append(ids, p.ID)
	}
	return &models.PolicyholderDetails{Policyholder: holder, PolicyIDs: ids}, nil
}

func (s *Service) ListPolicyholders(ctx context.Context, page models.Page) (_ []*models.Policyholder, err error) {
	ctx, done := s.begin(ctx, "ListPolicyholders")
	defer func() { done(err) }()

	holders, err := s.store.ListPolicyholders(ctx, page.Normalize())
	if err != nil {
		return nil, translate(err, "policyholders")
	}
	return holders, nil
}

// UpdatePolicyholder replaces the mutable fields and re-validates the result.
func (s *Service) UpdatePolicyholder(ctx context.Context, holderID id.PolicyholderID, fields models.PolicyholderFields) (_ *models.Policyholder, err error) {
	ctx, done := s.begin(ctx, "UpdatePolicyholder")
	defer func() { done(err) }()

	var holder *models.Policyholder
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		h, err := s.store.FindPolicyholder(txCtx, holderID)
		if err != nil {
			return translate(err, holderRef(holderID))
		}
		if err := h.ApplyUpdate(fields, requestcontext.Now(txCtx)); err != nil {
			return err
		}
		if err := s.store.UpdatePolicyholder(txCtx, h); err != nil {
			return translateHolderWrite(err, h)
		}
		if err := s.emit(txCtx, audit.Event{
			Action:   audit.ActionPolicyholderUpdated,
			EntityID: h.ID.String(),
		}); err != nil {
			return err
		}
		holder = h
		return nil
	})
	if err != nil {
		return nil, translate(err, holderRef(holderID))
	}
	return holder, nil
}

// DeletePolicyholder removes a policyholder that owns no ACTIVE policy,
// together with its policies, claims and documents.
func (s *Service) DeletePolicyholder(ctx context.Context, holderID id.PolicyholderID) (err error) {
	ctx, done := s.begin(ctx, "DeletePolicyholder")
	defer func() { done(err) }()

	var removedClaims []id.ClaimID
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.store.FindPolicyholder(txCtx, holderID); err != nil {
			return translate(err, holderRef(holderID))
		}
		policies, err := s.store.ListPolicies(txCtx, models.PolicyFilter{
			PolicyholderID: holderID,
			Page:           models.Unpaged,
		})
		if err != nil {
			return translate(err, "policies")
		}
		if err := rules.CanDeletePolicyholder(policies); err != nil {
			return err
		}
		for _, p := range policies {
			claimIDs, err := s.claimIDsOf(txCtx, p.ID)
			if err != nil {
				return err
			}
			removedClaims = append(removedClaims, claimIDs...)
		}
		if err := s.store.DeletePolicyholder(txCtx, holderID); err != nil {
			return translate(err, holderRef(holderID))
		}
		return s.emit(txCtx, audit.Event{
			Action:   audit.ActionPolicyholderDeleted,
			EntityID: holderID.String(),
			Detail:   map[string]string{"policies": fmt.Sprint(len(policies))},
		})
	})
	if err != nil {
		return translate(err, holderRef(holderID))
	}
	s.invalidate(ctx, removedClaims...)
	return nil
}

func (s *Service) claimIDsOf(ctx context.Context, policyID id.PolicyID) ([]id.ClaimID, error) {
	claims, err := s.store.ListClaims(ctx, models.ClaimFilter{
		PolicyID: policyID,
		Page:     models.Unpaged,
	})
	if err != nil {
		return nil, translate(err, "claims")
	}
	ids := make([]id.ClaimID, 0, len(claims))
	for _, c := range claims {
		ids = append(ids, c.ID)
	}
	return ids, nil
}

func translateHolderWrite(err error, h *models.Policyholder) error {
	if errors.Is(err, sentinel.ErrConflict) {
		return dErrors.New(dErrors.CodeConflict, fmt.Sprintf("email %s is already registered", h.Email))
	}
	return translate(err, holderRef(h.ID))
}
