package handler

import (
	"encoding/json"
	"time"

	"coverline/internal/claims/models"
	"coverline/pkg/platform/audit"
)

type PolicyholderResponse struct {
	ID             string    `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	DateOfBirth    string    `json:"date_of_birth"`
	Age            int       `json:"age"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	AlternatePhone string    `json:"alternate_phone,omitempty"`
	Street         string    `json:"street"`
	City           string    `json:"city"`
	State          string    `json:"state"`
	PostalCode     string    `json:"postal_code"`
	Country        string    `json:"country"`
	PolicyIDs      []string  `json:"policy_ids"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromPolicyholder(h *models.Policyholder, now time.Time) PolicyholderResponse {
	return PolicyholderResponse{
		ID:             h.ID.String(),
		FirstName:      h.FirstName,
		LastName:       h.LastName,
		DateOfBirth:    h.DateOfBirth.Format(models.DateLayout),
		Age:            h.Age(now),
		Email:          h.Email,
		Phone:          h.Phone,
		AlternatePhone: h.AlternatePhone,
		Street:         h.Address.Street,
		City:           h.Address.City,
		State:          h.Address.State,
		PostalCode:     h.Address.PostalCode,
		Country:        h.Address.Country,
		PolicyIDs:      []string{},
		CreatedAt:      h.CreatedAt,
		UpdatedAt:      h.UpdatedAt,
	}
}

// FromPolicyholderDetails includes the owned policy IDs.
func FromPolicyholderDetails(d *models.PolicyholderDetails, now time.Time) PolicyholderResponse {
	resp := FromPolicyholder(d.Policyholder, now)
	resp.PolicyIDs = make([]string, 0, len(d.PolicyIDs))
	for _, policyID := range d.PolicyIDs {
		resp.PolicyIDs = append(resp.PolicyIDs, policyID.String())
	}
	return resp
}

func FromPolicyholders(holders []*models.Policyholder, now time.Time) []PolicyholderResponse {
	out := make([]PolicyholderResponse, 0, len(holders))
	for _, h := range holders {
		out = append(out, FromPolicyholder(h, now))
	}
	return out
}

type PolicyResponse struct {
	ID                 string          `json:"id"`
	PolicyholderID     string          `json:"policyholder_id"`
	PolicyNumber       string          `json:"policy_number"`
	PolicyType         string          `json:"policy_type"`
	StartDate          string          `json:"start_date"`
	EndDate            string          `json:"end_date"`
	CoverageAmount     float64         `json:"coverage_amount"`
	Premium            float64         `json:"premium"`
	Deductible         float64         `json:"deductible"`
	Status             string          `json:"status"`
	TermsAndConditions json.RawMessage `json:"terms_and_conditions"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

func FromPolicy(p *models.Policy) PolicyResponse {
	terms := p.TermsAndConditions
	if len(terms) == 0 {
		terms = json.RawMessage(`{}`)
	}
	return PolicyResponse{
		ID:                 p.ID.String(),
		PolicyholderID:     p.PolicyholderID.String(),
		PolicyNumber:       p.PolicyNumber,
		PolicyType:         string(p.Type),
		StartDate:          p.StartDate.Format(models.DateLayout),
		EndDate:            p.EndDate.Format(models.DateLayout),
		CoverageAmount:     p.CoverageAmount,
		Premium:            p.Premium,
		Deductible:         p.Deductible,
		Status:             string(p.Status),
		TermsAndConditions: terms,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func FromPolicies(policies []*models.Policy) []PolicyResponse {
	out := make([]PolicyResponse, 0, len(policies))
	for _, p := range policies {
		out = append(out, FromPolicy(p))
	}
	return out
}

type DocumentResponse struct {
	ID           string          `json:"id"`
	ClaimID      string          `json:"claim_id"`
	Name         string          `json:"name"`
	DocumentType string          `json:"document_type"`
	ContentType  string          `json:"content_type"`
	Size         int64           `json:"size"`
	FilePath     string          `json:"file_path"`
	Metadata     json.RawMessage `json:"doc_metadata"`
	UploadDate   time.Time       `json:"upload_date"`
}

func FromDocument(d *models.ClaimDocument) DocumentResponse {
	metadata := d.Metadata
	if len(metadata) == 0 {
		metadata = json.RawMessage(`{}`)
	}
	return DocumentResponse{
		ID:           d.ID.String(),
		ClaimID:      d.ClaimID.String(),
		Name:         d.Name,
		DocumentType: d.DocumentType,
		ContentType:  d.ContentType,
		Size:         d.Size,
		FilePath:     d.StoragePath,
		Metadata:     metadata,
		UploadDate:   d.UploadedAt,
	}
}

func FromDocuments(docs []*models.ClaimDocument) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, FromDocument(d))
	}
	return out
}

type ClaimResponse struct {
	ID                  string             `json:"id"`
	PolicyID            string             `json:"policy_id"`
	ClaimNumber         string             `json:"claim_number"`
	IncidentDate        time.Time          `json:"incident_date"`
	FilingDate          time.Time          `json:"filing_date"`
	Description         string             `json:"description"`
	IncidentDescription string             `json:"incident_description"`
	AmountRequested     float64            `json:"amount_requested"`
	Status              string             `json:"status"`
	AssignedAdjusterID  *string            `json:"assigned_adjuster_id"`
	SettlementAmount    *float64           `json:"settlement_amount"`
	SettlementDate      *time.Time         `json:"settlement_date"`
	Notes               []string           `json:"notes"`
	Version             int64              `json:"version"`
	CreatedAt           time.Time          `json:"created_at"`
	UpdatedAt           time.Time          `json:"updated_at"`
	Documents           []DocumentResponse `json:"documents"`
}

func FromClaim(c *models.Claim) ClaimResponse {
	resp := ClaimResponse{
		ID:                  c.ID.String(),
		PolicyID:            c.PolicyID.String(),
		ClaimNumber:         c.ClaimNumber,
		IncidentDate:        c.IncidentDate,
		FilingDate:          c.FilingDate,
		Description:         c.Description,
		IncidentDescription: c.IncidentDescription,
		AmountRequested:     c.AmountRequested,
		Status:              string(c.Status),
		SettlementAmount:    c.SettlementAmount,
		SettlementDate:      c.SettlementDate,
		Notes:               c.Notes,
		Version:             c.Version,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
		Documents:           []DocumentResponse{},
	}
	if c.AssignedAdjusterID != nil {
		adj := c.AssignedAdjusterID.String()
		resp.AssignedAdjusterID = &adj
	}
	if resp.Notes == nil {
		resp.Notes = []string{}
	}
	return resp
}

func FromClaimDetails(d *models.ClaimDetails) ClaimResponse {
	resp := FromClaim(d.Claim)
	resp.Documents = FromDocuments(d.Documents)
	return resp
}

func FromClaims(claims []*models.Claim) []ClaimResponse {
	out := make([]ClaimResponse, 0, len(claims))
	for _, c := range claims {
		out = append(out, FromClaim(c))
	}
	return out
}

type AuditEventResponse struct {
	ID        string            `json:"id"`
	Action    string            `json:"action"`
	Detail    map[string]string `json:"detail,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

func FromAuditEvents(events []audit.Event) []AuditEventResponse {
	out := make([]AuditEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, AuditEventResponse{
			ID:        e.ID.String(),
			Action:    string(e.Action),
			Detail:    e.Detail,
			RequestID: e.RequestID,
			Timestamp: e.Timestamp,
		})
	}
	return out
}
