// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/paisa-buddy/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create creates a new budget and assigns its ID. It returns
	// ErrBudgetAlreadyExists when the user already has a live budget for
	// the category.
	Create(ctx context.Context, budget *entity.Budget) error

	// CreateMany creates several budgets in one batch, all or none.
	CreateMany(ctx context.Context, budgets []*entity.Budget) error

	// FindByID retrieves a budget by its ID.
	FindByID(ctx context.Context, id int64) (*entity.Budget, error)

	// FindByUser retrieves all budgets for a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]entity.Budget, error)

	// ExistsByUserAndCategory checks if the user already budgets this category.
	ExistsByUserAndCategory(ctx context.Context, userID uuid.UUID, category string) (bool, error)

	// Update updates an existing budget.
	Update(ctx context.Context, budget *entity.Budget) error

	// Delete removes a budget.
	Delete(ctx context.Context, id int64) error
}
