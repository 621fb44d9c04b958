// Package rules holds the cross-entity checks that tie claims to policies and
// policies to policyholders. Every function is pure: callers load the
// entities and persist the result.
package rules

import (
	"fmt"
	"time"

	"coverline/internal/claims/models"
	id "coverline/pkg/domain"
	dErrors "coverline/pkg/domain-errors"
	"coverline/pkg/platform/strings"
)

// Submission is a request to file a claim against a policy.
type Submission struct {
	PolicyID            id.PolicyID
	IncidentDate        time.Time
	AmountRequested     float64
	Description         string
	IncidentDescription string
}

// CheckSubmission runs the submission checks in order and returns the new
// SUBMITTED claim. policy is nil when the referenced policy does not exist.
//
// Order (first failure wins):
//  1. policy exists                          NotFound
//  2. policy is ACTIVE                       InvalidState
//  3. incident inside the coverage window    OutOfRange
//  4. amount > 0                             Validation
//  5. amount <= coverage                     Validation
//  6. descriptions non-blank                 Validation
func CheckSubmission(policy *models.Policy, sub Submission, claimID id.ClaimID, now time.Time) (*models.Claim, error) {
	if policy == nil {
		return nil, dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("policy %s not found", sub.PolicyID))
	}
	if !policy.IsActive() {
		return nil, dErrors.New(dErrors.CodeInvalidState,
			fmt.Sprintf("policy %s is not active: current status %s", policy.PolicyNumber, policy.Status))
	}

	incident := sub.IncidentDate.UTC()
	if !policy.Covers(incident) {
		return nil, dErrors.New(dErrors.CodeOutOfRange,
			fmt.Sprintf("incident date %s must be within the policy period %s to %s",
				incident.Format(time.RFC3339),
				policy.StartDate.Format(models.DateLayout),
				policy.EndDate.Format(models.DateLayout)))
	}
	if sub.AmountRequested <= 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "amount_requested must be positive")
	}
	if sub.AmountRequested > policy.CoverageAmount {
		return nil, dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("amount_requested %.2f exceeds policy coverage %.2f", sub.AmountRequested, policy.CoverageAmount))
	}
	if strings.IsBlank(sub.Description) {
		return nil, dErrors.New(dErrors.CodeValidation, "description is required")
	}
	if strings.IsBlank(sub.IncidentDescription) {
		return nil, dErrors.New(dErrors.CodeValidation, "incident_description is required")
	}

	return models.NewClaim(claimID, policy.ID, models.ClaimFields{
		IncidentDate:        incident,
		Description:         sub.Description,
		IncidentDescription: sub.IncidentDescription,
		AmountRequested:     sub.AmountRequested,
	}, now)
}
