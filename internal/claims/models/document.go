package models

import (
	"encoding/json"
	"time"

	id "coverline/pkg/domain"
	dErrors "coverline/pkg/domain-errors"
	"coverline/pkg/platform/strings"
	"coverline/pkg/platform/validation"
)

// DocumentFields describe a file attached to a claim. The bytes themselves
// live in external storage at StoragePath.
type DocumentFields struct {
	Name         string
	DocumentType string
	ContentType  string
	Size         int64
	StoragePath  string
	Metadata     json.RawMessage
}

// ClaimDocument is a file attached to a claim.
type ClaimDocument struct {
	ID           id.DocumentID
	ClaimID      id.ClaimID
	Name         string
	DocumentType string
	ContentType  string
	Size         int64
	StoragePath  string
	UploadedAt   time.Time
	Metadata     json.RawMessage
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewClaimDocument constructs and validates a document uploaded at now.
func NewClaimDocument(docID id.DocumentID, claimID id.ClaimID, f DocumentFields, now time.Time) (*ClaimDocument, error) {
	d := &ClaimDocument{
		ID:           docID,
		ClaimID:      claimID,
		Name:         f.Name,
		DocumentType: f.DocumentType,
		ContentType:  f.ContentType,
		Size:         f.Size,
		StoragePath:  f.StoragePath,
		UploadedAt:   now,
		Metadata:     normalizeObject(f.Metadata),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *ClaimDocument) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"name", d.Name, validation.MaxDocumentName},
		{"document_type", d.DocumentType, validation.MaxDocumentType},
		{"content_type", d.ContentType, validation.MaxContentType},
		{"storage_path", d.StoragePath, validation.MaxStoragePath},
	}
	for _, f := range fields {
		if strings.IsBlank(f.value) {
			return dErrors.New(dErrors.CodeValidation, f.name+" is required")
		}
		if len(f.value) > f.max {
			return dErrors.New(dErrors.CodeValidation, f.name+" is too long")
		}
	}
	if d.Size <= 0 {
		return dErrors.New(dErrors.CodeValidation, "size must be positive")
	}
	if !isObject(d.Metadata) {
		return dErrors.New(dErrors.CodeValidation, "metadata must be a JSON object")
	}
	return nil
}

// Clone returns a deep copy.
func (d *ClaimDocument) Clone() *ClaimDocument {
	c := *d
	c.Metadata = cloneRaw(d.Metadata)
	return &c
}
