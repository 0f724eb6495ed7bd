// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paisa-buddy/backend/internal/application/adapter"
	"github.com/paisa-buddy/backend/internal/domain/entity"
	domainerror "github.com/paisa-buddy/backend/internal/domain/error"
	"github.com/paisa-buddy/backend/internal/domain/valueobject"
)

// MaxNameLength is the maximum allowed length for transaction names.
const MaxNameLength = 255

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID   uuid.UUID
	Name     string
	Category string
	Amount   decimal.Decimal // Negative for expenses
	Date     string          // Optional, defaults to today
	Type     entity.TransactionType
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	clock           func() time.Time
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(transactionRepo adapter.TransactionRepository) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		clock:           time.Now,
	}
}

// WithClock sets the clock used to default missing dates.
func (uc *CreateTransactionUseCase) WithClock(clock func() time.Time) *CreateTransactionUseCase {
	uc.clock = clock
	return uc
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	transaction, err := uc.build(input)
	if err != nil {
		return nil, err
	}

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{Transaction: transaction}, nil
}

// ExecuteBatch validates every input first and then stores them together.
// Nothing is stored when any input is invalid.
func (uc *CreateTransactionUseCase) ExecuteBatch(ctx context.Context, inputs []CreateTransactionInput) ([]*entity.Transaction, error) {
	transactions := make([]*entity.Transaction, 0, len(inputs))
	for i, input := range inputs {
		transaction, err := uc.build(input)
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i, err)
		}
		transactions = append(transactions, transaction)
	}

	if len(transactions) == 0 {
		return transactions, nil
	}

	if err := uc.transactionRepo.CreateMany(ctx, transactions); err != nil {
		return nil, fmt.Errorf("failed to create transactions: %w", err)
	}
	return transactions, nil
}

// build validates the input and creates the entity.
func (uc *CreateTransactionUseCase) build(input CreateTransactionInput) (*entity.Transaction, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNameRequired,
			"name is required",
			domainerror.ErrTransactionNameRequired,
		)
	}
	if len(name) > MaxNameLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNameTooLong,
			fmt.Sprintf("name must not exceed %d characters", MaxNameLength),
			domainerror.ErrTransactionNameTooLong,
		)
	}

	if input.Amount.IsZero() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must not be zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if !input.Type.IsValid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"type must be one of Essentials, Needs, Wants, Income",
			domainerror.ErrInvalidTransactionType,
		)
	}

	date := strings.TrimSpace(input.Date)
	if date == "" {
		date = valueobject.FormatDate(uc.clock())
	}

	return entity.NewTransaction(
		input.UserID,
		name,
		strings.TrimSpace(input.Category),
		input.Amount,
		date,
		input.Type,
	), nil
}
