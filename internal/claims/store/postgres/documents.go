package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"coverline/internal/claims/models"
	id "coverline/pkg/domain"
)

const documentColumns = `id, claim_id, name, document_type, content_type, size_bytes, storage_path,
	uploaded_at, metadata, created_at, updated_at`

func (s *Store) CreateDocument(ctx context.Context, d *models.ClaimDocument) error {
	query := `
		INSERT INTO claim_documents (` + documentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := s.q(ctx).ExecContext(ctx, query,
		uuid.UUID(d.ID), uuid.UUID(d.ClaimID), d.Name, d.DocumentType, d.ContentType, d.Size,
		d.StoragePath, d.UploadedAt, string(d.Metadata), d.CreatedAt, d.UpdatedAt,
	)
	return classify(err, "insert claim document")
}

func (s *Store) ListDocuments(ctx context.Context, claimID id.ClaimID) ([]*models.ClaimDocument, error) {
	query := `
		SELECT ` + documentColumns + `
		FROM claim_documents
		WHERE claim_id = $1
		ORDER BY uploaded_at ASC, id ASC
	`
	rows, err := s.q(ctx).QueryContext(ctx, query, uuid.UUID(claimID))
	if err != nil {
		return nil, classify(err, fmt.Sprintf("list documents of claim %s", claimID))
	}
	defer rows.Close()

	docs := []*models.ClaimDocument{}
	for rows.Next() {
		var (
			d             models.ClaimDocument
			docID, parent uuid.UUID
			metadata      []byte
		)
		if err := rows.Scan(&docID, &parent, &d.Name, &d.DocumentType, &d.ContentType, &d.Size,
			&d.StoragePath, &d.UploadedAt, &metadata, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, classify(err, "scan claim document")
		}
		d.ID = id.DocumentID(docID)
		d.ClaimID = id.ClaimID(parent)
		d.Metadata = metadata
		d.UploadedAt = d.UploadedAt.UTC()
		d.CreatedAt = d.CreatedAt.UTC()
		d.UpdatedAt = d.UpdatedAt.UTC()
		docs = append(docs, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err, "iterate claim documents")
	}
	return docs, nil
}
