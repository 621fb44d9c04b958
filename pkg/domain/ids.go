// Package domain holds the typed identifiers shared by every layer.
//
// Each aggregate gets its own ID type over uuid.UUID so the compiler refuses
// to pass a PolicyID where a ClaimID is expected. Parse functions are the
// only way to build an ID from untrusted input.
package domain

import (
	"strings"

	"github.com/google/uuid"

	dErrors "coverline/pkg/domain-errors"
)

type (
	PolicyholderID uuid.UUID
	PolicyID       uuid.UUID
	ClaimID        uuid.UUID
	DocumentID     uuid.UUID
	AdjusterID     uuid.UUID
	AuditEventID   uuid.UUID
)

func (id PolicyholderID) String() string { return uuid.UUID(id).String() }
func (id PolicyID) String() string       { return uuid.UUID(id).String() }
func (id ClaimID) String() string        { return uuid.UUID(id).String() }
func (id DocumentID) String() string     { return uuid.UUID(id).String() }
func (id AdjusterID) String() string     { return uuid.UUID(id).String() }
func (id AuditEventID) String() string   { return uuid.UUID(id).String() }

func (id PolicyholderID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id PolicyID) IsNil() bool       { return uuid.UUID(id) == uuid.Nil }
func (id ClaimID) IsNil() bool        { return uuid.UUID(id) == uuid.Nil }
func (id DocumentID) IsNil() bool     { return uuid.UUID(id) == uuid.Nil }
func (id AdjusterID) IsNil() bool     { return uuid.UUID(id) == uuid.Nil }

func NewPolicyholderID() PolicyholderID { return PolicyholderID(uuid.New()) }
func NewPolicyID() PolicyID             { return PolicyID(uuid.New()) }
func NewClaimID() ClaimID               { return ClaimID(uuid.New()) }
func NewDocumentID() DocumentID         { return DocumentID(uuid.New()) }
func NewAuditEventID() AuditEventID     { return AuditEventID(uuid.New()) }

func ParsePolicyholderID(s string) (PolicyholderID, error) {
	u, err := parseUUID(s, "policyholder ID")
	return PolicyholderID(u), err
}

func ParsePolicyID(s string) (PolicyID, error) {
	u, err := parseUUID(s, "policy ID")
	return PolicyID(u), err
}

func ParseClaimID(s string) (ClaimID, error) {
	u, err := parseUUID(s, "claim ID")
	return ClaimID(u), err
}

func ParseDocumentID(s string) (DocumentID, error) {
	u, err := parseUUID(s, "document ID")
	return DocumentID(u), err
}

func ParseAdjusterID(s string) (AdjusterID, error) {
	u, err := parseUUID(s, "adjuster ID")
	return AdjusterID(u), err
}

// parseUUID rejects empty, malformed and nil UUIDs.
func parseUUID(s, label string) (uuid.UUID, error) {
	if strings.TrimSpace(s) == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeBadRequest, label+" is required")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeBadRequest, "invalid "+label)
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeBadRequest, "invalid "+label)
	}
	return u, nil
}

const (
	policyNumberPrefix = "POL-"
	claimNumberPrefix  = "CLM-"
	numberHexLen       = 8
)

// PolicyNumberFor derives the human-readable policy number from the policy
// identity. It is computed once at construction and stored.
func PolicyNumberFor(id PolicyID) string {
	return policyNumberPrefix + uuid.UUID(id).String()[:numberHexLen]
}

// ClaimNumberFor derives the human-readable claim number from the claim identity.
func ClaimNumberFor(id ClaimID) string {
	return claimNumberPrefix + uuid.UUID(id).String()[:numberHexLen]
}
