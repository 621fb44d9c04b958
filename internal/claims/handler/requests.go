package handler

import (
	"encoding/json"
	"time"

	"coverline/internal/claims/lifecycle"
	"coverline/internal/claims/models"
	"coverline/internal/claims/rules"
	id "coverline/pkg/domain"
	dErrors "coverline/pkg/domain-errors"
	"coverline/pkg/email"
	"coverline/pkg/platform/strings"
)

// PolicyholderRequest is the body of POST /policyholders and
// PUT /policyholders/{id}. Updates replace every mutable field.
type PolicyholderRequest struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	DateOfBirth    string `json:"date_of_birth"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	AlternatePhone string `json:"alternate_phone,omitempty"`
	Street         string `json:"street"`
	City           string `json:"city"`
	State          string `json:"state"`
	PostalCode     string `json:"postal_code"`
	Country        string `json:"country"`

	dateOfBirth time.Time
}

func (r *PolicyholderRequest) Normalize() {
	strings.TrimAll(&r.FirstName, &r.LastName, &r.DateOfBirth, &r.Phone, &r.AlternatePhone,
		&r.Street, &r.City, &r.State, &r.PostalCode, &r.Country)
	r.Email = email.Normalize(r.Email)
}

// Validate checks presence and parses the date. Field rules live on the model.
func (r *PolicyholderRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if r.DateOfBirth == "" {
		return dErrors.New(dErrors.CodeValidation, "date_of_birth is required")
	}
	dob, err := models.ParseDate("date_of_birth", r.DateOfBirth)
	if err != nil {
		return err
	}
	r.dateOfBirth = dob
	return nil
}

func (r *PolicyholderRequest) Fields() models.PolicyholderFields {
	return models.PolicyholderFields{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		DateOfBirth:    r.dateOfBirth,
		Email:          r.Email,
		Phone:          r.Phone,
		AlternatePhone: r.AlternatePhone,
		Address: models.Address{
			Street:     r.Street,
			City:       r.City,
			State:      r.State,
			PostalCode: r.PostalCode,
			Country:    r.Country,
		},
	}
}

// PolicyRequest is the body of POST /policies.
type PolicyRequest struct {
	PolicyholderID     string          `json:"policyholder_id"`
	PolicyType         string          `json:"policy_type"`
	StartDate          string          `json:"start_date"`
	EndDate            string          `json:"end_date"`
	CoverageAmount     *float64        `json:"coverage_amount"`
	Premium            *float64        `json:"premium"`
	Deductible         *float64        `json:"deductible"`
	Status             string          `json:"status,omitempty"`
	TermsAndConditions json.RawMessage `json:"terms_and_conditions,omitempty"`

	holderID id.PolicyholderID
	terms    models.PolicyTerms
}

func (r *PolicyRequest) Normalize() {
	strings.TrimAll(&r.PolicyholderID, &r.PolicyType, &r.StartDate, &r.EndDate, &r.Status)
}

func (r *PolicyRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	holderID, err := id.ParsePolicyholderID(r.PolicyholderID)
	if err != nil {
		return dErrors.New(dErrors.CodeValidation, "policyholder_id must be a valid UUID")
	}
	if r.StartDate == "" || r.EndDate == "" {
		return dErrors.New(dErrors.CodeValidation, "start_date and end_date are required")
	}
	start, err := models.ParseDate("start_date", r.StartDate)
	if err != nil {
		return err
	}
	end, err := models.ParseDate("end_date", r.EndDate)
	if err != nil {
		return err
	}
	if r.CoverageAmount == nil || r.Premium == nil {
		return dErrors.New(dErrors.CodeValidation, "coverage_amount and premium are required")
	}

	r.holderID = holderID
	r.terms = models.PolicyTerms{
		Type:               models.PolicyType(r.PolicyType),
		StartDate:          start,
		EndDate:            end,
		CoverageAmount:     *r.CoverageAmount,
		Premium:            *r.Premium,
		Status:             models.PolicyStatus(r.Status),
		TermsAndConditions: r.TermsAndConditions,
	}
	if r.Deductible != nil {
		r.terms.Deductible = *r.Deductible
	}
	return nil
}

// PolicyPatchRequest is the body of PATCH /policies/{id}. Absent fields keep
// their stored value.
type PolicyPatchRequest struct {
	PolicyType         *string         `json:"policy_type"`
	StartDate          *string         `json:"start_date"`
	EndDate            *string         `json:"end_date"`
	CoverageAmount     *float64        `json:"coverage_amount"`
	Premium            *float64        `json:"premium"`
	Deductible         *float64        `json:"deductible"`
	Status             *string         `json:"status"`
	TermsAndConditions json.RawMessage `json:"terms_and_conditions"`

	patch models.PolicyPatch
}

func (r *PolicyPatchRequest) Normalize() {
	r.PolicyType = strings.TrimPtr(r.PolicyType)
	r.StartDate = strings.TrimPtr(r.StartDate)
	r.EndDate = strings.TrimPtr(r.EndDate)
	r.Status = strings.TrimPtr(r.Status)
}

func (r *PolicyPatchRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	patch := models.PolicyPatch{
		CoverageAmount:     r.CoverageAmount,
		Premium:            r.Premium,
		Deductible:         r.Deductible,
		TermsAndConditions: r.TermsAndConditions,
	}
	if r.PolicyType != nil {
		t := models.PolicyType(*r.PolicyType)
		patch.Type = &t
	}
	if r.Status != nil {
		s := models.PolicyStatus(*r.Status)
		patch.Status = &s
	}
	if r.StartDate != nil {
		start, err := models.ParseDate("start_date", *r.StartDate)
		if err != nil {
			return err
		}
		patch.StartDate = &start
	}
	if r.EndDate != nil {
		end, err := models.ParseDate("end_date", *r.EndDate)
		if err != nil {
			return err
		}
		patch.EndDate = &end
	}
	r.patch = patch
	return nil
}

// ClaimRequest is the body of POST /claims.
type ClaimRequest struct {
	PolicyID            string   `json:"policy_id"`
	IncidentDate        string   `json:"incident_date"`
	Description         string   `json:"description"`
	IncidentDescription string   `json:"incident_description"`
	AmountRequested     *float64 `json:"amount_requested"`

	submission rules.Submission
}

func (r *ClaimRequest) Normalize() {
	strings.TrimAll(&r.PolicyID, &r.IncidentDate, &r.Description, &r.IncidentDescription)
}

// Validate parses the identifiers and the timestamp. The submission rules,
// including amount and description checks, run in the service in their
// documented order.
func (r *ClaimRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	policyID, err := id.ParsePolicyID(r.PolicyID)
	if err != nil {
		return dErrors.New(dErrors.CodeValidation, "policy_id must be a valid UUID")
	}
	if r.IncidentDate == "" {
		return dErrors.New(dErrors.CodeValidation, "incident_date is required")
	}
	incident, err := models.ParseTimestamp("incident_date", r.IncidentDate)
	if err != nil {
		return err
	}
	if r.AmountRequested == nil {
		return dErrors.New(dErrors.CodeValidation, "amount_requested is required")
	}
	r.submission = rules.Submission{
		PolicyID:            policyID,
		IncidentDate:        incident,
		AmountRequested:     *r.AmountRequested,
		Description:         r.Description,
		IncidentDescription: r.IncidentDescription,
	}
	return nil
}

// ProcessRequest is the body of PUT /claims/{id}/status.
type ProcessRequest struct {
	Status           string   `json:"status"`
	AdjusterID       *string  `json:"adjuster_id"`
	Notes            *string  `json:"notes"`
	SettlementAmount *float64 `json:"settlement_amount"`
	ExpectedVersion  *int64   `json:"expected_version"`

	transition lifecycle.Transition
}

func (r *ProcessRequest) Normalize() {
	strings.TrimAll(&r.Status)
	r.AdjusterID = strings.TrimPtr(r.AdjusterID)
	r.Notes = strings.TrimPtr(r.Notes)
}

func (r *ProcessRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	status := models.ClaimStatus(r.Status)
	if !status.IsValid() {
		return dErrors.New(dErrors.CodeValidation, "status must be a valid claim status")
	}
	t := lifecycle.Transition{
		To:               status,
		Note:             r.Notes,
		SettlementAmount: r.SettlementAmount,
	}
	if r.AdjusterID != nil && *r.AdjusterID != "" {
		adj, err := id.ParseAdjusterID(*r.AdjusterID)
		if err != nil {
			return dErrors.New(dErrors.CodeValidation, "adjuster_id must be a valid UUID")
		}
		t.AdjusterID = &adj
	}
	if r.ExpectedVersion != nil && *r.ExpectedVersion < 1 {
		return dErrors.New(dErrors.CodeValidation, "expected_version must be positive")
	}
	r.transition = t
	return nil
}

// DocumentRequest is the body of POST /claims/{id}/documents.
type DocumentRequest struct {
	Name         string          `json:"name"`
	DocumentType string          `json:"document_type"`
	ContentType  string          `json:"content_type"`
	Size         int64           `json:"size"`
	FilePath     string          `json:"file_path"`
	Metadata     json.RawMessage `json:"doc_metadata,omitempty"`
}

func (r *DocumentRequest) Normalize() {
	strings.TrimAll(&r.Name, &r.DocumentType, &r.ContentType, &r.FilePath)
}

func (r *DocumentRequest) Fields() models.DocumentFields {
	return models.DocumentFields{
		Name:         r.Name,
		DocumentType: r.DocumentType,
		ContentType:  r.ContentType,
		Size:         r.Size,
		StoragePath:  r.FilePath,
		Metadata:     r.Metadata,
	}
}
