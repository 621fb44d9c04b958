package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "coverline/pkg/domain"
	dErrors "coverline/pkg/domain-errors"
)

func validDocumentFields() DocumentFields {
	return DocumentFields{
		Name:         "photo-front.jpg",
		DocumentType: "PHOTO",
		ContentType:  "image/jpeg",
		Size:         204800,
		StoragePath:  "claims/2024/photo-front.jpg",
	}
}

func TestNewClaimDocument(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

	t.Run("valid document", func(t *testing.T) {
		d, err := NewClaimDocument(id.NewDocumentID(), id.NewClaimID(), validDocumentFields(), now)
		require.NoError(t, err)
		assert.Equal(t, now, d.UploadedAt)
		assert.JSONEq(t, `{}`, string(d.Metadata))
	})

	t.Run("metadata is kept", func(t *testing.T) {
		f := validDocumentFields()
		f.Metadata = json.RawMessage(`{"camera":"pixel"}`)
		d, err := NewClaimDocument(id.NewDocumentID(), id.NewClaimID(), f, now)
		require.NoError(t, err)
		assert.JSONEq(t, `{"camera":"pixel"}`, string(d.Metadata))
	})

	invalid := []struct {
		name   string
		mutate func(*DocumentFields)
	}{
		{"zero size", func(f *DocumentFields) { f.Size = 0 }},
		{"blank name", func(f *DocumentFields) { f.Name = " " }},
		{"blank content type", func(f *DocumentFields) { f.ContentType = "" }},
		{"blank storage path", func(f *DocumentFields) { f.StoragePath = "" }},
		{"metadata not an object", func(f *DocumentFields) { f.Metadata = json.RawMessage(`"x"`) }},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			f := validDocumentFields()
			tc.mutate(&f)
			_, err := NewClaimDocument(id.NewDocumentID(), id.NewClaimID(), f, now)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
		})
	}
}
