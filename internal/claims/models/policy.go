package models

import (
	"bytes"
	"encoding/json"
	"time"

	id "coverline/pkg/domain"
	dErrors "coverline/pkg/domain-errors"
)

// PolicyTerms are the contractual attributes of a policy.
type PolicyTerms struct {
	Type               PolicyType
	StartDate          time.Time
	EndDate            time.Time
	CoverageAmount     float64
	Premium            float64
	Deductible         float64
	Status             PolicyStatus
	TermsAndConditions json.RawMessage
}

// PolicyPatch changes a subset of PolicyTerms. Nil fields are left as is.
type PolicyPatch struct {
	Type               *PolicyType
	StartDate          *time.Time
	EndDate            *time.Time
	CoverageAmount     *float64
	Premium            *float64
	Deductible         *float64
	Status             *PolicyStatus
	TermsAndConditions json.RawMessage
}

// Policy is a coverage contract owned by a policyholder.
//
// Invariants:
//   - StartDate < EndDate (calendar dates, midnight UTC)
//   - CoverageAmount > 0, Premium > 0, Deductible >= 0
//   - PolicyNumber and PolicyholderID are fixed at construction
//   - TermsAndConditions is a JSON object
type Policy struct {
	ID                 id.PolicyID
	PolicyholderID     id.PolicyholderID
	PolicyNumber       string
	Type               PolicyType
	StartDate          time.Time
	EndDate            time.Time
	CoverageAmount     float64
	Premium            float64
	Deductible         float64
	Status             PolicyStatus
	TermsAndConditions json.RawMessage
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewPolicy constructs and validates a policy. The policy number is derived
// from the identity here and never recomputed.
func NewPolicy(policyID id.PolicyID, holderID id.PolicyholderID, terms PolicyTerms, now time.Time) (*Policy, error) {
	if terms.Status == "" {
		terms.Status = PolicyStatusActive
	}
	p := &Policy{
		ID:                 policyID,
		PolicyholderID:     holderID,
		PolicyNumber:       id.PolicyNumberFor(policyID),
		Type:               terms.Type,
		StartDate:          StartOfDay(terms.StartDate),
		EndDate:            StartOfDay(terms.EndDate),
		CoverageAmount:     terms.CoverageAmount,
		Premium:            terms.Premium,
		Deductible:         terms.Deductible,
		Status:             terms.Status,
		TermsAndConditions: normalizeObject(terms.TermsAndConditions),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks every policy invariant.
func (p *Policy) Validate() error {
	if !p.Type.IsValid() {
		return dErrors.New(dErrors.CodeValidation, "policy_type must be one of AUTO, HEALTH, PROPERTY, LIFE")
	}
	if !p.Status.IsValid() {
		return dErrors.New(dErrors.CodeValidation, "status must be one of PENDING, ACTIVE, EXPIRED, CANCELLED")
	}
	if p.StartDate.IsZero() || p.EndDate.IsZero() {
		return dErrors.New(dErrors.CodeValidation, "start_date and end_date are required")
	}
	if !p.EndDate.After(p.StartDate) {
		return dErrors.New(dErrors.CodeValidation, "end_date must be after start_date")
	}
	if p.CoverageAmount <= 0 {
		return dErrors.New(dErrors.CodeValidation, "coverage_amount must be positive")
	}
	if p.Premium <= 0 {
		return dErrors.New(dErrors.CodeValidation, "premium must be positive")
	}
	if p.Deductible < 0 {
		return dErrors.New(dErrors.CodeValidation, "deductible cannot be negative")
	}
	if err := checkAmount("coverage_amount", p.CoverageAmount); err != nil {
		return err
	}
	if err := checkAmount("premium", p.Premium); err != nil {
		return err
	}
	if err := checkAmount("deductible", p.Deductible); err != nil {
		return err
	}
	if !isObject(p.TermsAndConditions) {
		return dErrors.New(dErrors.CodeValidation, "terms_and_conditions must be a JSON object")
	}
	return nil
}

// ApplyPatch merges patch into the policy and validates the result as a
// whole. The policy is left untouched on failure.
func (p *Policy) ApplyPatch(patch PolicyPatch, now time.Time) error {
	next := *p
	if patch.Type != nil {
		next.Type = *patch.Type
	}
	if patch.StartDate != nil {
		next.StartDate = StartOfDay(*patch.StartDate)
	}
	if patch.EndDate != nil {
		next.EndDate = StartOfDay(*patch.EndDate)
	}
	if patch.CoverageAmount != nil {
		next.CoverageAmount = *patch.CoverageAmount
	}
	if patch.Premium != nil {
		next.Premium = *patch.Premium
	}
	if patch.Deductible != nil {
		next.Deductible = *patch.Deductible
	}
	if patch.Status != nil {
		next.Status = *patch.Status
	}
	if patch.TermsAndConditions != nil {
		next.TermsAndConditions = normalizeObject(patch.TermsAndConditions)
	}
	next.UpdatedAt = now
	if err := next.Validate(); err != nil {
		return err
	}
	*p = next
	return nil
}

func (p *Policy) IsActive() bool {
	return p.Status == PolicyStatusActive
}

// CoverageWindow returns the inclusive instants during which incidents are
// covered: start-of-day of StartDate to end-of-day of EndDate, UTC.
func (p *Policy) CoverageWindow() (time.Time, time.Time) {
	return StartOfDay(p.StartDate), EndOfDay(p.EndDate)
}

// Covers reports whether t falls inside the coverage window.
func (p *Policy) Covers(t time.Time) bool {
	from, to := p.CoverageWindow()
	t = t.UTC()
	return !t.Before(from) && !t.After(to)
}

// Clone returns a deep copy.
func (p *Policy) Clone() *Policy {
	c := *p
	c.TermsAndConditions = cloneRaw(p.TermsAndConditions)
	return &c
}

var emptyObject = json.RawMessage(`{}`)

func normalizeObject(raw json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return cloneRaw(emptyObject)
	}
	return cloneRaw(trimmed)
}

func isObject(raw json.RawMessage) bool {
	var obj map[string]any
	return json.Unmarshal(raw, &obj) == nil && obj != nil
}

func cloneRaw(raw json.RawMessage) json.RawMessage {
	if raw == nil {
		return nil
	}
	return append(json.RawMessage(nil), raw...)
}
