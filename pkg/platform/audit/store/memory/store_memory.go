package memory

import (
	"context"
	"maps"
	"sync"

	audit "coverline/pkg/platform/audit"
)

type entityKey struct {
	entityType audit.EntityType
	entityID   string
}

// InMemoryStore keeps events per entity in append order.
type InMemoryStore struct {
	mu     sync.RWMutex
	events map[entityKey][]audit.Event
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{events: make(map[entityKey][]audit.Event)}
}

func (s *InMemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = make(map[entityKey][]audit.Event)
}

func (s *InMemoryStore) Append(_ context.Context, event audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := entityKey{event.EntityType, event.EntityID}
	event.Detail = maps.Clone(event.Detail)
	s.events[key] = append(s.events[key], event)
	return nil
}

// ListByEntity returns the entity's events oldest first.
func (s *InMemoryStore) ListByEntity(_ context.Context, entityType audit.EntityType, entityID string) ([]audit.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored := s.events[entityKey{entityType, entityID}]
	out := make([]audit.Event, len(stored))
	for i, e := range stored {
		e.Detail = maps.Clone(e.Detail)
		out[i] = e
	}
	return out, nil
}
