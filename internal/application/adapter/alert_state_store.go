// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// AlertStateRecord is the persisted form of a user's budget alert state.
type AlertStateRecord struct {
	Period    string   // YYYY-MM the shown-set belongs to
	Evaluated bool     // Whether the first evaluation already happened
	Shown     []string // "category:threshold" keys already surfaced
}

// AlertStateStore persists the budget alert shown-set between requests.
type AlertStateStore interface {
	// Load returns the stored state, or nil when the user has none.
	Load(ctx context.Context, userID uuid.UUID) (*AlertStateRecord, error)

	// Save replaces the stored state.
	Save(ctx context.Context, userID uuid.UUID, record AlertStateRecord) error

	// Clear removes the stored state.
	Clear(ctx context.Context, userID uuid.UUID) error
}
