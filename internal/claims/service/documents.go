package service

import (
	"context"
	"strconv"

	"coverline/internal/claims/models"
	id "coverline/pkg/domain"
	"coverline/pkg/platform/audit"
	"coverline/pkg/requestcontext"
)

// AddClaimDocument attaches a document to an existing claim. The bytes are
// already in external storage; only the descriptor is recorded.
func (s *Service) AddClaimDocument(ctx context.Context, claimID id.ClaimID, fields models.DocumentFields) (_ *models.ClaimDocument, err error) {
	ctx, done := s.begin(ctx, "AddClaimDocument")
	defer func() { done(err) }()

	var doc *models.ClaimDocument
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		claim, err := s.store.FindClaim(txCtx, claimID)
		if err != nil {
			return translate(err, claimRef(claimID))
		}
		d, err := models.NewClaimDocument(id.NewDocumentID(), claim.ID, fields, requestcontext.Now(txCtx))
		if err != nil {
			return err
		}
		if err := s.store.CreateDocument(txCtx, d); err != nil {
			return translate(err, "claim document")
		}
		if err := s.emit(txCtx, audit.Event{
			Action:    audit.ActionClaimDocumentAdded,
			EntityID:  claim.ID.String(),
			SubjectID: claim.PolicyID.String(),
			Detail: map[string]string{
				"document_id":   d.ID.String(),
				"document_type": d.DocumentType,
				"size":          strconv.FormatInt(d.Size, 10),
			},
		}); err != nil {
			return err
		}
		doc = d
		return nil
	})
	if err != nil {
		return nil, translate(err, claimRef(claimID))
	}
	s.invalidate(ctx, claimID)
	return doc, nil
}

// ListClaimDocuments returns the claim's documents ordered by upload time.
func (s *Service) ListClaimDocuments(ctx context.Context, claimID id.ClaimID) (_ []*models.ClaimDocument, err error) {
	ctx, done := s.begin(ctx, "ListClaimDocuments")
	defer func() { done(err) }()

	if _, err := s.store.FindClaim(ctx, claimID); err != nil {
		return nil, translate(err, claimRef(claimID))
	}
	docs, err := s.store.ListDocuments(ctx, claimID)
	if err != nil {
		return nil, translate(err, "claim documents")
	}
	return docs, nil
}
