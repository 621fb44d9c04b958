// Package publisher emits audit events with synchronous, fail-closed
// semantics. The caller blocks until the event is stored; if the write fails
// the calling use-case MUST fail and roll back.
package publisher

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"time"

	id "coverline/pkg/domain"
	audit "coverline/pkg/platform/audit"
	"coverline/pkg/platform/middleware/metadata"
	"coverline/pkg/requestcontext"
)

// Publisher writes events straight to the audit store.
type Publisher struct {
	store   audit.Store
	logger  *slog.Logger
	metrics *Metrics
}

// Option configures the Publisher.
type Option func(*Publisher)

// WithLogger sets a logger for error reporting.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(m *Metrics) Option {
	return func(p *Publisher) {
		p.metrics = m
	}
}

// New creates a fail-closed publisher over store.
func New(store audit.Store, opts ...Option) *Publisher {
	p := &Publisher{store: store}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Emit validates and stores event. The entity type is derived from the
// action; the timestamp, request id and client address are filled from ctx
// when unset.
func (p *Publisher) Emit(ctx context.Context, event audit.Event) error {
	start := time.Now()

	if !event.Action.IsValid() {
		return fmt.Errorf("audit event has unknown action %q", event.Action)
	}
	if event.EntityID == "" {
		return fmt.Errorf("audit event %s requires EntityID", event.Action)
	}
	event.EntityType = event.Action.EntityType()
	if event.ID == (id.AuditEventID{}) {
		event.ID = id.NewAuditEventID()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = requestcontext.Now(ctx)
	}
	if event.RequestID == "" {
		event.RequestID = requestcontext.RequestID(ctx)
	}
	if ip := metadata.ClientFrom(ctx).IP; ip != "" {
		if _, set := event.Detail["client_ip"]; !set {
			event.Detail = maps.Clone(event.Detail)
			if event.Detail == nil {
				event.Detail = make(map[string]string, 1)
			}
			event.Detail["client_ip"] = ip
		}
	}

	if err := p.store.Append(ctx, event); err != nil {
		p.metrics.IncPersistFailures()
		if p.logger != nil {
			p.logger.ErrorContext(ctx, "audit event persistence failed",
				"action", event.Action,
				"entity_id", event.EntityID,
				"request_id", event.RequestID,
				"error", err,
			)
		}
		return fmt.Errorf("audit persistence failed: %w", err)
	}

	p.metrics.ObservePersistDuration(time.Since(start))
	p.metrics.IncEventsEmitted(event.Action)
	return nil
}

// History returns the events recorded for one entity, oldest first.
func (p *Publisher) History(ctx context.Context, entityType audit.EntityType, entityID string) ([]audit.Event, error) {
	return p.store.ListByEntity(ctx, entityType, entityID)
}
