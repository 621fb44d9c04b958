package rules

import (
	"fmt"

	"coverline/internal/claims/models"
	dErrors "coverline/pkg/domain-errors"
)

// CanDeletePolicyholder forbids deleting a policyholder that owns an ACTIVE policy.
func CanDeletePolicyholder(policies []*models.Policy) error {
	for _, p := range policies {
		if p.IsActive() {
			return dErrors.New(dErrors.CodeInvalidState,
				fmt.Sprintf("cannot delete policyholder with active policy %s", p.PolicyNumber))
		}
	}
	return nil
}

// CanDeletePolicy forbids deleting a policy with a SUBMITTED or UNDER_REVIEW claim.
func CanDeletePolicy(claims []*models.Claim) error {
	for _, c := range claims {
		if c.Status.IsOpen() {
			return dErrors.New(dErrors.CodeInvalidState,
				fmt.Sprintf("cannot delete policy with open claim %s (%s)", c.ClaimNumber, c.Status))
		}
	}
	return nil
}

// CanDeleteClaim allows deleting only REJECTED or SETTLED claims.
func CanDeleteClaim(claim *models.Claim) error {
	if !claim.Status.IsTerminal() {
		return dErrors.New(dErrors.CodeInvalidState,
			fmt.Sprintf("only rejected or settled claims can be deleted: claim %s is %s", claim.ClaimNumber, claim.Status))
	}
	return nil
}
