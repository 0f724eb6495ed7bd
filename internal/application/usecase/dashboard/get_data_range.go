package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/paisa-buddy/backend/internal/application/adapter"
	"github.com/paisa-buddy/backend/internal/domain/valueobject"
)

// GetDataRangeInput represents the input for getting data range.
type GetDataRangeInput struct {
	UserID uuid.UUID
	Now    time.Time
}

// GetDataRangeOutput represents the output of getting data range.
type GetDataRangeOutput struct {
	OldestDate        *time.Time
	NewestDate        *time.Time
	TotalTransactions int
	HasData           bool
}

// GetDataRangeUseCase handles getting the date range of user's transactions.
type GetDataRangeUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetDataRangeUseCase creates a new GetDataRangeUseCase instance.
func NewGetDataRangeUseCase(transactionRepo adapter.TransactionRepository) *GetDataRangeUseCase {
	return &GetDataRangeUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute retrieves the date range of user's transactions.
func (uc *GetDataRangeUseCase) Execute(
	ctx context.Context,
	input GetDataRangeInput,
) (*GetDataRangeOutput, error) {
	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get date range: %w", err)
	}

	output := &GetDataRangeOutput{TotalTransactions: len(transactions)}
	for _, tx := range transactions {
		date := valueobject.TruncateDay(valueobject.ParseDate(tx.Date, input.Now))
		if output.OldestDate == nil || date.Before(*output.OldestDate) {
			oldest := date
			output.OldestDate = &oldest
		}
		if output.NewestDate == nil || date.After(*output.NewestDate) {
			newest := date
			output.NewestDate = &newest
		}
	}
	output.HasData = output.OldestDate != nil && output.NewestDate != nil

	return output, nil
}
