package domain

import (
	"regexp"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "coverline/pkg/domain-errors"
)

func TestParseUUID_Invariants(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParseClaimID("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	t.Run("rejects invalid format", func(t *testing.T) {
		_, err := ParseClaimID("not-a-uuid")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	t.Run("rejects nil UUID", func(t *testing.T) {
		_, err := ParseClaimID(uuid.Nil.String())
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	t.Run("accepts valid UUID", func(t *testing.T) {
		validUUID := uuid.New()
		id, err := ParseClaimID(validUUID.String())
		require.NoError(t, err)
		assert.Equal(t, ClaimID(validUUID), id)
	})
}

func TestParseID_HostileInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"SQL injection attempt", "'; DROP TABLE claims;--", true},
		{"Path traversal", "../../../etc/passwd", true},
		{"Null byte injection", "550e8400\x00-e29b-41d4-a716-446655440000", true},
		{"Oversized input", strings.Repeat("a", 1000), true},
		{"Whitespace only", "   ", true},
		{"Uppercase valid UUID", "550E8400-E29B-41D4-A716-446655440000", false},
		{"Valid UUID lowercase", "550e8400-e29b-41d4-a716-446655440000", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePolicyID(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestAllIDTypes_ConsistentBehavior(t *testing.T) {
	validUUID := uuid.New().String()

	t.Run("all accept valid UUID", func(t *testing.T) {
		_, errHolder := ParsePolicyholderID(validUUID)
		_, errPolicy := ParsePolicyID(validUUID)
		_, errClaim := ParseClaimID(validUUID)
		_, errDoc := ParseDocumentID(validUUID)
		_, errAdjuster := ParseAdjusterID(validUUID)

		require.NoError(t, errHolder)
		require.NoError(t, errPolicy)
		require.NoError(t, errClaim)
		require.NoError(t, errDoc)
		require.NoError(t, errAdjuster)
	})

	for _, input := range []string{"", "invalid", uuid.Nil.String()} {
		t.Run("all reject: "+input, func(t *testing.T) {
			_, errHolder := ParsePolicyholderID(input)
			_, errPolicy := ParsePolicyID(input)
			_, errClaim := ParseClaimID(input)
			_, errDoc := ParseDocumentID(input)
			_, errAdjuster := ParseAdjusterID(input)

			require.Error(t, errHolder)
			require.Error(t, errPolicy)
			require.Error(t, errClaim)
			require.Error(t, errDoc)
			require.Error(t, errAdjuster)
		})
	}
}

func TestGeneratedNumbers(t *testing.T) {
	numberPattern := regexp.MustCompile(`^(POL|CLM)-[0-9a-f]{8}$`)

	t.Run("claim number uses the first eight hex chars", func(t *testing.T) {
		id := ClaimID(uuid.MustParse("3f2a9c1d-0000-4000-8000-000000000000"))
		assert.Equal(t, "CLM-3f2a9c1d", ClaimNumberFor(id))
	})

	t.Run("policy number uses the first eight hex chars", func(t *testing.T) {
		id := PolicyID(uuid.MustParse("a1b2c3d4-0000-4000-8000-000000000000"))
		assert.Equal(t, "POL-a1b2c3d4", PolicyNumberFor(id))
	})

	t.Run("numbers are stable for the same identity", func(t *testing.T) {
		id := NewClaimID()
		assert.Equal(t, ClaimNumberFor(id), ClaimNumberFor(id))
		assert.Regexp(t, numberPattern, ClaimNumberFor(id))
		assert.Regexp(t, numberPattern, PolicyNumberFor(NewPolicyID()))
	})
}
