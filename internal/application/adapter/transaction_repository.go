// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/paisa-buddy/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction and assigns its ID.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// CreateMany creates several transactions in one batch.
	CreateMany(ctx context.Context, transactions []*entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id int64) (*entity.Transaction, error)

	// FindByUser retrieves all transactions for a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]entity.Transaction, error)

	// Delete removes a transaction.
	Delete(ctx context.Context, id int64) error
}
