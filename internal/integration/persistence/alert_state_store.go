// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/paisa-buddy/backend/internal/application/adapter"
)

const alertStateKeyPrefix = "paisa:budget-alerts:"

// DefaultAlertStateTTL keeps a shown-set long enough to outlive its month.
const DefaultAlertStateTTL = 62 * 24 * time.Hour

// alertStateStore implements adapter.AlertStateStore on top of redis.
// Each user owns one JSON value.
type alertStateStore struct {
	client *redis.Client
	ttl    time.Duration
}

// alertStateValue is the JSON shape stored in redis.
type alertStateValue struct {
	Period    string   `json:"period"`
	Evaluated bool     `json:"evaluated"`
	Shown     []string `json:"shown"`
}

// NewAlertStateStore creates a new redis-backed alert state store.
// A non-positive ttl falls back to DefaultAlertStateTTL.
func NewAlertStateStore(client *redis.Client, ttl time.Duration) adapter.AlertStateStore {
	if ttl <= 0 {
		ttl = DefaultAlertStateTTL
	}
	return &alertStateStore{
		client: client,
		ttl:    ttl,
	}
}

func alertStateKey(userID uuid.UUID) string {
	return alertStateKeyPrefix + userID.String()
}

// Load returns the stored state, or nil when the user has none.
func (s *alertStateStore) Load(ctx context.Context, userID uuid.UUID) (*adapter.AlertStateRecord, error) {
	raw, err := s.client.Get(ctx, alertStateKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load alert state: %w", err)
	}

	var value alertStateValue
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, fmt.Errorf("failed to decode alert state: %w", err)
	}

	return &adapter.AlertStateRecord{
		Period:    value.Period,
		Evaluated: value.Evaluated,
		Shown:     value.Shown,
	}, nil
}

// Save replaces the stored state and refreshes its expiry.
func (s *alertStateStore) Save(ctx context.Context, userID uuid.UUID, record adapter.AlertStateRecord) error {
	shown := record.Shown
	if shown == nil {
		shown = []string{}
	}

	raw, err := json.Marshal(alertStateValue{
		Period:    record.Period,
		Evaluated: record.Evaluated,
		Shown:     shown,
	})
	if err != nil {
		return fmt.Errorf("failed to encode alert state: %w", err)
	}

	if err := s.client.Set(ctx, alertStateKey(userID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save alert state: %w", err)
	}
	return nil
}

// Clear removes the stored state.
func (s *alertStateStore) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := s.client.Del(ctx, alertStateKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to clear alert state: %w", err)
	}
	return nil
}
