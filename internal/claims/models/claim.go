package models

import (
	"fmt"
	"time"

	id "coverline/pkg/domain"
	dErrors "coverline/pkg/domain-errors"
	"coverline/pkg/platform/strings"
	"coverline/pkg/platform/validation"
)

// ClaimFields are the client-supplied attributes of a new claim.
type ClaimFields struct {
	IncidentDate        time.Time
	Description         string
	IncidentDescription string
	AmountRequested     float64
}

// Claim is a request for payout under a policy.
//
// Invariants:
//   - IncidentDate is UTC and not after now
//   - AmountRequested > 0; SettlementAmount >= 0 when set
//   - Description and IncidentDescription are non-blank
//   - ClaimNumber and FilingDate are fixed at construction
//   - SettlementDate is set only on transition to SETTLED
//   - Version increases by one with every persisted update
type Claim struct {
	ID                  id.ClaimID
	PolicyID            id.PolicyID
	ClaimNumber         string
	IncidentDate        time.Time
	FilingDate          time.Time
	Description         string
	IncidentDescription string
	AmountRequested     float64
	Status              ClaimStatus
	AssignedAdjusterID  *id.AdjusterID
	SettlementAmount    *float64
	SettlementDate      *time.Time
	Notes               []string
	Version             int64
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// NewClaim constructs a SUBMITTED claim filed at now and validates it.
// Cross-entity checks against the policy happen before this call.
func NewClaim(claimID id.ClaimID, policyID id.PolicyID, f ClaimFields, now time.Time) (*Claim, error) {
	now = now.UTC()
	c := &Claim{
		ID:                  claimID,
		PolicyID:            policyID,
		ClaimNumber:         id.ClaimNumberFor(claimID),
		IncidentDate:        f.IncidentDate.UTC(),
		FilingDate:          now,
		Description:         f.Description,
		IncidentDescription: f.IncidentDescription,
		AmountRequested:     f.AmountRequested,
		Status:              ClaimStatusSubmitted,
		Notes:               []string{},
		Version:             1,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := c.Validate(now); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the claim's own invariants against the given clock.
func (c *Claim) Validate(now time.Time) error {
	if c.IncidentDate.IsZero() {
		return dErrors.New(dErrors.CodeValidation, "incident_date is required")
	}
	if c.IncidentDate.After(now) {
		return dErrors.New(dErrors.CodeValidation, "incident_date cannot be in the future")
	}
	if c.AmountRequested <= 0 {
		return dErrors.New(dErrors.CodeValidation, "amount_requested must be positive")
	}
	if c.SettlementAmount != nil && *c.SettlementAmount < 0 {
		return dErrors.New(dErrors.CodeValidation, "settlement_amount cannot be negative")
	}
	if err := checkAmount("amount_requested", c.AmountRequested); err != nil {
		return err
	}
	if c.SettlementAmount != nil {
		if err := checkAmount("settlement_amount", *c.SettlementAmount); err != nil {
			return err
		}
	}
	if strings.IsBlank(c.Description) {
		return dErrors.New(dErrors.CodeValidation, "description is required")
	}
	if strings.IsBlank(c.IncidentDescription) {
		return dErrors.New(dErrors.CodeValidation, "incident_description is required")
	}
	if len(c.Description) > validation.MaxDescriptionLength {
		return dErrors.New(dErrors.CodeValidation, "description is too long")
	}
	if len(c.IncidentDescription) > validation.MaxIncidentLength {
		return dErrors.New(dErrors.CodeValidation, "incident_description is too long")
	}
	if !c.Status.IsValid() {
		return dErrors.New(dErrors.CodeValidation, "unknown claim status")
	}
	return nil
}

// checkAmount enforces the storage precision of monetary fields.
func checkAmount(field string, amount float64) error {
	if !validation.IsAmount(amount) {
		return dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("%s must be at most %.2f with no more than two decimal places", field, validation.MaxAmount))
	}
	return nil
}

// Clone returns a deep copy.
func (c *Claim) Clone() *Claim {
	out := *c
	if c.AssignedAdjusterID != nil {
		adj := *c.AssignedAdjusterID
		out.AssignedAdjusterID = &adj
	}
	if c.SettlementAmount != nil {
		amt := *c.SettlementAmount
		out.SettlementAmount = &amt
	}
	if c.SettlementDate != nil {
		at := *c.SettlementDate
		out.SettlementDate = &at
	}
	out.Notes = append([]string{}, c.Notes...)
	return &out
}

// ClaimDetails is a claim together with its attached documents, ordered by
// upload time.
type ClaimDetails struct {
	Claim     *Claim
	Documents []*ClaimDocument
}
