package cache

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coverline/internal/claims/models"
	id "coverline/pkg/domain"
)

func TestEntryPreservesOptionalFields(t *testing.T) {
	now := time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC)
	adjuster := id.AdjusterID(uuid.New())
	amount := 900.5
	settled := now.Add(time.Hour)
	claim := &models.Claim{
		ID:                 id.NewClaimID(),
		PolicyID:           id.NewPolicyID(),
		ClaimNumber:        "CLM-1",
		IncidentDate:       now.Add(-48 * time.Hour),
		FilingDate:         now,
		Description:        "Hail damage",
		AmountRequested:    1200,
		Status:             models.ClaimStatusSettled,
		AssignedAdjusterID: &adjuster,
		SettlementAmount:   &amount,
		SettlementDate:     &settled,
		Notes:              []string{"inspected"},
		Version:            5,
		CreatedAt:          now,
		UpdatedAt:          settled,
	}
	doc := &models.ClaimDocument{
		ID:           id.NewDocumentID(),
		ClaimID:      claim.ID,
		Name:         "roof.jpg",
		DocumentType: "photo",
		ContentType:  "image/jpeg",
		Size:         1024,
		StoragePath:  "claims/roof.jpg",
		UploadedAt:   now,
		Metadata:     json.RawMessage(`{"angle":"north"}`),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	raw, err := encode(&models.ClaimDetails{Claim: claim, Documents: []*models.ClaimDocument{doc}})
	require.NoError(t, err)

	got, err := decode(raw)
	require.NoError(t, err)
	assert.Equal(t, claim, got.Claim)
	require.Len(t, got.Documents, 1)
	assert.Equal(t, doc.ID, got.Documents[0].ID)
	assert.JSONEq(t, `{"angle":"north"}`, string(got.Documents[0].Metadata))
}

func TestDecodeRejectsUnknownVersion(t *testing.T) {
	_, err := decode([]byte(`{"v":99,"claim":{},"documents":[]}`))
	assert.ErrorContains(t, err, "unsupported entry version 99")

	_, err = decode([]byte(`not json`))
	assert.Error(t, err)
}

func TestDecodeDefaultsNotes(t *testing.T) {
	raw, err := encode(&models.ClaimDetails{Claim: &models.Claim{ID: id.NewClaimID()}})
	require.NoError(t, err)

	got, err := decode(raw)
	require.NoError(t, err)
	assert.NotNil(t, got.Claim.Notes)
	assert.Empty(t, got.Claim.Notes)
	assert.Empty(t, got.Documents)
}

func TestNewerThan(t *testing.T) {
	details := func(version int64, docs int) *models.ClaimDetails {
		d := &models.ClaimDetails{Claim: &models.Claim{Version: version}}
		for range docs {
			d.Documents = append(d.Documents, &models.ClaimDocument{})
		}
		return d
	}

	assert.True(t, newerThan(details(2, 0), details(1, 3)))
	assert.False(t, newerThan(details(1, 3), details(2, 0)))
	assert.True(t, newerThan(details(2, 2), details(2, 1)))
	assert.False(t, newerThan(details(2, 1), details(2, 1)))
}
