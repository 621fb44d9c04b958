package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	id "coverline/pkg/domain"
	audit "coverline/pkg/platform/audit"
	txcontext "coverline/pkg/platform/tx"
)

// Store implements audit.Store on the audit_events table. Appends join the
// use-case transaction carried in ctx so an event commits with the change it
// describes.
type Store struct {
	db *sql.DB
}

// New creates a new PostgreSQL audit store.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Append writes an audit event.
func (s *Store) Append(ctx context.Context, event audit.Event) error {
	if event.ID == (id.AuditEventID{}) {
		event.ID = id.NewAuditEventID()
	}
	detail := event.Detail
	if detail == nil {
		detail = map[string]string{}
	}
	detailBytes, err := json.Marshal(detail)
	if err != nil {
		return fmt.Errorf("marshal audit detail: %w", err)
	}

	query := `
		INSERT INTO audit_events (id, action, entity_type, entity_id, subject_id, detail, request_id, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = txcontext.Or(ctx, s.db).ExecContext(ctx, query,
		uuid.UUID(event.ID),
		string(event.Action),
		string(event.EntityType),
		event.EntityID,
		event.SubjectID,
		string(detailBytes),
		event.RequestID,
		event.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

// ListByEntity returns the entity's events oldest first.
func (s *Store) ListByEntity(ctx context.Context, entityType audit.EntityType, entityID string) ([]audit.Event, error) {
	query := `
		SELECT id, action, entity_type, entity_id, subject_id, detail, request_id, occurred_at
		FROM audit_events
		WHERE entity_type = $1 AND entity_id = $2
		ORDER BY occurred_at ASC, id ASC
	`
	rows, err := txcontext.Or(ctx, s.db).QueryContext(ctx, query, string(entityType), entityID)
	if err != nil {
		return nil, fmt.Errorf("query audit events: %w", err)
	}
	defer rows.Close()

	events := []audit.Event{}
	for rows.Next() {
		var (
			event       audit.Event
			eventID     uuid.UUID
			action      string
			entity      string
			detailBytes []byte
		)
		if err := rows.Scan(&eventID, &action, &entity, &event.EntityID, &event.SubjectID,
			&detailBytes, &event.RequestID, &event.Timestamp); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		event.ID = id.AuditEventID(eventID)
		event.Action = audit.Action(action)
		event.EntityType = audit.EntityType(entity)
		if err := json.Unmarshal(detailBytes, &event.Detail); err != nil {
			return nil, fmt.Errorf("decode audit detail: %w", err)
		}
		event.Timestamp = event.Timestamp.UTC()
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit events: %w", err)
	}
	return events, nil
}
