package audit

import (
	"context"
	"time"

	id "coverline/pkg/domain"
)

// EntityType names the aggregate an event is about.
type EntityType string

const (
	EntityPolicyholder EntityType = "policyholder"
	EntityPolicy       EntityType = "policy"
	EntityClaim        EntityType = "claim"
)

// Action is what happened to the entity.
type Action string

const (
	ActionPolicyholderCreated Action = "policyholder_created"
	ActionPolicyholderUpdated Action = "policyholder_updated"
	ActionPolicyholderDeleted Action = "policyholder_deleted"

	ActionPolicyCreated Action = "policy_created"
	ActionPolicyUpdated Action = "policy_updated"
	ActionPolicyDeleted Action = "policy_deleted"

	ActionClaimSubmitted     Action = "claim_submitted"
	ActionClaimStatusChanged Action = "claim_status_changed"
	ActionClaimDeleted       Action = "claim_deleted"
	ActionClaimDocumentAdded Action = "claim_document_added"
)

var actionEntities = map[Action]EntityType{
	ActionPolicyholderCreated: EntityPolicyholder,
	ActionPolicyholderUpdated: EntityPolicyholder,
	ActionPolicyholderDeleted: EntityPolicyholder,
	ActionPolicyCreated:       EntityPolicy,
	ActionPolicyUpdated:       EntityPolicy,
	ActionPolicyDeleted:       EntityPolicy,
	ActionClaimSubmitted:      EntityClaim,
	ActionClaimStatusChanged:  EntityClaim,
	ActionClaimDeleted:        EntityClaim,
	ActionClaimDocumentAdded:  EntityClaim,
}

// EntityType returns the aggregate this action applies to, or "" for an
// unknown action.
func (a Action) EntityType() EntityType {
	return actionEntities[a]
}

func (a Action) IsValid() bool {
	_, ok := actionEntities[a]
	return ok
}

// Event records one state change. Keep it transport-agnostic so every store
// can persist it as is.
type Event struct {
	ID         id.AuditEventID
	Action     Action
	EntityType EntityType
	EntityID   string
	// SubjectID is the owning aggregate (the policy of a claim, the
	// policyholder of a policy) when there is one.
	SubjectID string
	Detail    map[string]string
	RequestID string
	Timestamp time.Time
}

// Store persists audit events. Append must join the transaction carried in
// ctx when the backing store supports one.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByEntity(ctx context.Context, entityType EntityType, entityID string) ([]Event, error)
}
