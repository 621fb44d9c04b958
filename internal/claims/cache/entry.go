package cache

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"coverline/internal/claims/models"
	id "coverline/pkg/domain"
)

// entry is the cached wire shape. Bump entryVersion when it changes.
type entry struct {
	V         int             `json:"v"`
	Claim     claimEntry      `json:"claim"`
	Documents []documentEntry `json:"documents"`
}

const entryVersion = 1

type claimEntry struct {
	ID                  uuid.UUID  `json:"id"`
	PolicyID            uuid.UUID  `json:"policy_id"`
	ClaimNumber         string     `json:"claim_number"`
	IncidentDate        time.Time  `json:"incident_date"`
	FilingDate          time.Time  `json:"filing_date"`
	Description         string     `json:"description"`
	IncidentDescription string     `json:"incident_description"`
	AmountRequested     float64    `json:"amount_requested"`
	Status              string     `json:"status"`
	AssignedAdjusterID  *uuid.UUID `json:"assigned_adjuster_id,omitempty"`
	SettlementAmount    *float64   `json:"settlement_amount,omitempty"`
	SettlementDate      *time.Time `json:"settlement_date,omitempty"`
	Notes               []string   `json:"notes"`
	Version             int64      `json:"version"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

type documentEntry struct {
	ID           uuid.UUID       `json:"id"`
	ClaimID      uuid.UUID       `json:"claim_id"`
	Name         string          `json:"name"`
	DocumentType string          `json:"document_type"`
	ContentType  string          `json:"content_type"`
	Size         int64           `json:"size"`
	StoragePath  string          `json:"storage_path"`
	UploadedAt   time.Time       `json:"uploaded_at"`
	Metadata     json.RawMessage `json:"metadata"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func encode(details *models.ClaimDetails) ([]byte, error) {
	c := details.Claim
	e := entry{
		V: entryVersion,
		Claim: claimEntry{
			ID:                  uuid.UUID(c.ID),
			PolicyID:            uuid.UUID(c.PolicyID),
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
		},
		Documents: make([]documentEntry, 0, len(details.Documents)),
	}
	if c.AssignedAdjusterID != nil {
		adj := uuid.UUID(*c.AssignedAdjusterID)
		e.Claim.AssignedAdjusterID = &adj
	}
	for _, d := range details.Documents {
		e.Documents = append(e.Documents, documentEntry{
			ID:           uuid.UUID(d.ID),
			ClaimID:      uuid.UUID(d.ClaimID),
			Name:         d.Name,
			DocumentType: d.DocumentType,
			ContentType:  d.ContentType,
			Size:         d.Size,
			StoragePath:  d.StoragePath,
			UploadedAt:   d.UploadedAt,
			Metadata:     d.Metadata,
			CreatedAt:    d.CreatedAt,
			UpdatedAt:    d.UpdatedAt,
		})
	}
	raw, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("encode claim %s: %w", c.ID, err)
	}
	return raw, nil
}

func decode(raw []byte) (*models.ClaimDetails, error) {
	var e entry
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, fmt.Errorf("decode cached claim: %w", err)
	}
	if e.V != entryVersion {
		return nil, fmt.Errorf("decode cached claim: unsupported entry version %d", e.V)
	}
	c := &models.Claim{
		ID:                  id.ClaimID(e.Claim.ID),
		PolicyID:            id.PolicyID(e.Claim.PolicyID),
		ClaimNumber:         e.Claim.ClaimNumber,
		IncidentDate:        e.Claim.IncidentDate.UTC(),
		FilingDate:          e.Claim.FilingDate.UTC(),
		Description:         e.Claim.Description,
		IncidentDescription: e.Claim.IncidentDescription,
		AmountRequested:     e.Claim.AmountRequested,
		Status:              models.ClaimStatus(e.Claim.Status),
		SettlementAmount:    e.Claim.SettlementAmount,
		Notes:               e.Claim.Notes,
		Version:             e.Claim.Version,
		CreatedAt:           e.Claim.CreatedAt.UTC(),
		UpdatedAt:           e.Claim.UpdatedAt.UTC(),
	}
	if c.Notes == nil {
		c.Notes = []string{}
	}
	if e.Claim.AssignedAdjusterID != nil {
		adj := id.AdjusterID(*e.Claim.AssignedAdjusterID)
		c.AssignedAdjusterID = &adj
	}
	if e.Claim.SettlementDate != nil {
		at := e.Claim.SettlementDate.UTC()
		c.SettlementDate = &at
	}
	docs := make([]*models.ClaimDocument, 0, len(e.Documents))
	for _, d := range e.Documents {
		docs = append(docs, &models.ClaimDocument{
			ID:           id.DocumentID(d.ID),
			ClaimID:      id.ClaimID(d.ClaimID),
			Name:         d.Name,
			DocumentType: d.DocumentType,
			ContentType:  d.ContentType,
			Size:         d.Size,
			StoragePath:  d.StoragePath,
			UploadedAt:   d.UploadedAt.UTC(),
			Metadata:     d.Metadata,
			CreatedAt:    d.CreatedAt.UTC(),
			UpdatedAt:    d.UpdatedAt.UTC(),
		})
	}
	return &models.ClaimDetails{Claim: c, Documents: docs}, nil
}
