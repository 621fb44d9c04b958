// Package lifecycle governs claim status transitions and their side effects.
//
// Two rules always apply:
//   - UNDER_REVIEW requires an adjuster, which becomes the assigned adjuster
//   - SETTLED is reachable only from APPROVED and stamps the settlement date
//
// In strict mode (the default) every transition must also appear in the
// adjacency table; REJECTED and SETTLED are terminal. Permissive mode drops
// the table and keeps only the two rules above.
package lifecycle

import (
	"fmt"
	"time"

	"coverline/internal/claims/models"
	id "coverline/pkg/domain"
	dErrors "coverline/pkg/domain-errors"
	"coverline/pkg/platform/strings"
	"coverline/pkg/platform/validation"
)

var adjacency = map[models.ClaimStatus][]models.ClaimStatus{
	models.ClaimStatusSubmitted: {
		models.ClaimStatusUnderReview,
		models.ClaimStatusAdditionalInfoRequired,
		models.ClaimStatusApproved,
		models.ClaimStatusRejected,
	},
	models.ClaimStatusUnderReview: {
		models.ClaimStatusUnderReview,
		models.ClaimStatusAdditionalInfoRequired,
		models.ClaimStatusApproved,
		models.ClaimStatusRejected,
	},
	models.ClaimStatusAdditionalInfoRequired: {
		models.ClaimStatusSubmitted,
		models.ClaimStatusUnderReview,
		models.ClaimStatusRejected,
	},
	models.ClaimStatusApproved: {
		models.ClaimStatusUnderReview,
		models.ClaimStatusRejected,
		models.ClaimStatusSettled,
	},
	models.ClaimStatusRejected: {},
	models.ClaimStatusSettled:  {},
}

// Transition is a requested status change with its optional payload.
type Transition struct {
	To               models.ClaimStatus
	AdjusterID       *id.AdjusterID
	Note             *string
	SettlementAmount *float64
}

// Machine validates and applies transitions.
type Machine struct {
	permissive bool
}

// Option configures a Machine.
type Option func(*Machine)

// WithPermissive disables the adjacency table.
func WithPermissive(permissive bool) Option {
	return func(m *Machine) {
		m.permissive = permissive
	}
}

func NewMachine(opts ...Option) *Machine {
	m := &Machine{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Allowed returns the statuses reachable from from under the adjacency table.
// Permissive machines report every status.
func (m *Machine) Allowed(from models.ClaimStatus) []models.ClaimStatus {
	if m.permissive {
		return append([]models.ClaimStatus(nil), models.AllClaimStatuses...)
	}
	return append([]models.ClaimStatus(nil), adjacency[from]...)
}

// CanTransition checks t against the claim's current state without mutating it.
func (m *Machine) CanTransition(claim *models.Claim, t Transition) error {
	from := claim.Status
	if !t.To.IsValid() {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("unknown claim status %q", t.To))
	}
	if t.To == models.ClaimStatusUnderReview && (t.AdjusterID == nil || t.AdjusterID.IsNil()) {
		return dErrors.New(dErrors.CodeValidation, "adjuster_id is required for claims under review")
	}
	if t.To == models.ClaimStatusSettled && from != models.ClaimStatusApproved {
		return dErrors.New(dErrors.CodeInvalidTransition,
			fmt.Sprintf("cannot settle claim in status %s: claim must be APPROVED", from))
	}
	if !m.permissive && !m.isAdjacent(from, t.To) {
		return dErrors.New(dErrors.CodeInvalidTransition,
			fmt.Sprintf("cannot move claim from %s to %s", from, t.To))
	}
	if t.Note != nil {
		if strings.IsBlank(*t.Note) {
			return dErrors.New(dErrors.CodeValidation, "note cannot be blank")
		}
		if len(*t.Note) > validation.MaxNoteLength {
			return dErrors.New(dErrors.CodeValidation, "note is too long")
		}
	}
	if t.SettlementAmount != nil {
		if *t.SettlementAmount < 0 {
			return dErrors.New(dErrors.CodeValidation, "settlement_amount cannot be negative")
		}
		if t.To != models.ClaimStatusApproved && t.To != models.ClaimStatusSettled {
			return dErrors.New(dErrors.CodeValidation, "settlement_amount is only accepted with APPROVED or SETTLED")
		}
	}
	return nil
}

// ApplyTransition mutates the claim. Call CanTransition first.
func (m *Machine) ApplyTransition(claim *models.Claim, t Transition, now time.Time) {
	now = now.UTC()
	claim.Status = t.To
	if t.To == models.ClaimStatusUnderReview {
		adj := *t.AdjusterID
		claim.AssignedAdjusterID = &adj
	}
	if t.SettlementAmount != nil {
		amt := *t.SettlementAmount
		claim.SettlementAmount = &amt
	}
	if t.To == models.ClaimStatusSettled {
		claim.SettlementDate = &now
	}
	if t.Note != nil {
		claim.Notes = append(claim.Notes, *t.Note)
	}
	claim.UpdatedAt = now
}

// Process validates and applies t in one call. The claim is unchanged on error.
func (m *Machine) Process(claim *models.Claim, t Transition, now time.Time) error {
	if err := m.CanTransition(claim, t); err != nil {
		return err
	}
	m.ApplyTransition(claim, t, now)
	return nil
}

func (m *Machine) isAdjacent(from, to models.ClaimStatus) bool {
	for _, next := range adjacency[from] {
		if next == to {
			return true
		}
	}
	return false
}
