// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/paisa-buddy/backend/internal/domain/entity"
)

// AlertRecipient identifies who receives budget alerts.
type AlertRecipient struct {
	UserID uuid.UUID
	Email  string
}

// AlertNotifier delivers newly emitted budget alerts.
type AlertNotifier interface {
	// Notify delivers the alerts. It is only called with a non-empty slice.
	Notify(ctx context.Context, recipient AlertRecipient, alerts []entity.BudgetAlert) error
}
