package persistence

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/paisa-buddy/backend/internal/application/adapter"
)

// MemoryAlertStateStore keeps alert state in process memory. It is used when
// no redis is configured; state is lost on restart.
type MemoryAlertStateStore struct {
	mu      sync.RWMutex
	records map[uuid.UUID]adapter.AlertStateRecord
}

// NewMemoryAlertStateStore creates a new in-memory alert state store.
func NewMemoryAlertStateStore() *MemoryAlertStateStore {
	return &MemoryAlertStateStore{records: make(map[uuid.UUID]adapter.AlertStateRecord)}
}

// Load returns a copy of the stored state, or nil when the user has none.
func (s *MemoryAlertStateStore) Load(_ context.Context, userID uuid.UUID) (*adapter.AlertStateRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[userID]
	if !ok {
		return nil, nil
	}
	record.Shown = append([]string(nil), record.Shown...)
	return &record, nil
}

// Save replaces the stored state.
func (s *MemoryAlertStateStore) Save(_ context.Context, userID uuid.UUID, record adapter.AlertStateRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record.Shown = append([]string(nil), record.Shown...)
	s.records[userID] = record
	return nil
}

// Clear removes the stored state.
func (s *MemoryAlertStateStore) Clear(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, userID)
	return nil
}
