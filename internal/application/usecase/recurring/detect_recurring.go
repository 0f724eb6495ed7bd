package recurring

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/paisa-buddy/backend/internal/application/adapter"
	"github.com/paisa-buddy/backend/internal/domain/valueobject"
)

// DetectRecurringInput represents the input for recurring payment detection.
type DetectRecurringInput struct {
	UserID uuid.UUID
	Now    time.Time
}

// DetectRecurringUseCase loads a user's history and runs Detect over it.
type DetectRecurringUseCase struct {
	transactionRepo adapter.TransactionRepository
	config          valueobject.RecurringConfig
}

// NewDetectRecurringUseCase creates a new DetectRecurringUseCase instance.
func NewDetectRecurringUseCase(transactionRepo adapter.TransactionRepository, config valueobject.RecurringConfig) *DetectRecurringUseCase {
	return &DetectRecurringUseCase{
		transactionRepo: transactionRepo,
		config:          config,
	}
}

// Execute performs the detection.
func (uc *DetectRecurringUseCase) Execute(ctx context.Context, input DetectRecurringInput) (*Result, error) {
	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	result := Detect(transactions, input.Now, uc.config)
	return &result, nil
}
