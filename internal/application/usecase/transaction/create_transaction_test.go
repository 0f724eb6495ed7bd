package transaction

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paisa-buddy/backend/internal/domain/entity"
	domainerror "github.com/paisa-buddy/backend/internal/domain/error"
)

type memoryRepo struct {
	items  map[int64]entity.Transaction
	nextID int64
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{items: make(map[int64]entity.Transaction)}
}

func (r *memoryRepo) Create(_ context.Context, t *entity.Transaction) error {
	r.nextID++
	t.ID = r.nextID
	r.items[t.ID] = *t
	return nil
}

func (r *memoryRepo) CreateMany(ctx context.Context, ts []*entity.Transaction) error {
	for _, t := range ts {
		_ = r.Create(ctx, t)
	}
	return nil
}

func (r *memoryRepo) FindByID(_ context.Context, id int64) (*entity.Transaction, error) {
	t, ok := r.items[id]
	if !ok {
		return nil, domainerror.ErrTransactionNotFound
	}
	return &t, nil
}

func (r *memoryRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]entity.Transaction, error) {
	var result []entity.Transaction
	for _, t := range r.items {
		if t.UserID == userID {
			result = append(result, t)
		}
	}
	return result, nil
}

func (r *memoryRepo) Delete(_ context.Context, id int64) error {
	delete(r.items, id)
	return nil
}

func TestCreateTransactionUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name     string
		input    CreateTransactionInput
		wantCode domainerror.TransactionErrorCode
	}{
		{
			name:     "blank name",
			input:    CreateTransactionInput{UserID: userID, Name: " ", Amount: decimal.NewFromInt(-1), Type: entity.TransactionTypeWants},
			wantCode: domainerror.ErrCodeTransactionNameRequired,
		},
		{
			name:     "long name",
			input:    CreateTransactionInput{UserID: userID, Name: strings.Repeat("x", MaxNameLength+1), Amount: decimal.NewFromInt(-1), Type: entity.TransactionTypeWants},
			wantCode: domainerror.ErrCodeTransactionNameTooLong,
		},
		{
			name:     "zero amount",
			input:    CreateTransactionInput{UserID: userID, Name: "Coffee", Amount: decimal.Zero, Type: entity.TransactionTypeWants},
			wantCode: domainerror.ErrCodeInvalidTransactionAmount,
		},
		{
			name:     "unknown type",
			input:    CreateTransactionInput{UserID: userID, Name: "Coffee", Amount: decimal.NewFromInt(-1), Type: "Luxury"},
			wantCode: domainerror.ErrCodeInvalidTransactionType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCreateTransactionUseCase(newMemoryRepo()).Execute(ctx, tt.input)

			var txErr *domainerror.TransactionError
			if !errors.As(err, &txErr) {
				t.Fatalf("expected TransactionError, got %v", err)
			}
			if txErr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, txErr.Code)
			}
		})
	}

	// Test the date defaults to today.
	t.Run("default date", func(t *testing.T) {
		uc := NewCreateTransactionUseCase(newMemoryRepo())
		uc.clock = func() time.Time { return time.Date(2025, 3, 9, 18, 0, 0, 0, time.UTC) }

		out, err := uc.Execute(ctx, CreateTransactionInput{UserID: userID, Name: "Coffee", Amount: decimal.NewFromInt(-120), Type: entity.TransactionTypeWants})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Transaction.ID == 0 || out.Transaction.Date != "2025-03-09" {
			t.Errorf("unexpected transaction: %+v", out.Transaction)
		}
	})

	// Test the batch is all-or-nothing.
	t.Run("batch", func(t *testing.T) {
		repo := newMemoryRepo()
		uc := NewCreateTransactionUseCase(repo)

		_, err := uc.ExecuteBatch(ctx, []CreateTransactionInput{
			{UserID: userID, Name: "Coffee", Amount: decimal.NewFromInt(-120), Date: "2025-03-01", Type: entity.TransactionTypeWants},
			{UserID: userID, Name: "", Amount: decimal.NewFromInt(-120), Date: "2025-03-01", Type: entity.TransactionTypeWants},
		})
		if !errors.Is(err, domainerror.ErrTransactionNameRequired) {
			t.Errorf("expected name required error, got %v", err)
		}
		if len(repo.items) != 0 {
			t.Errorf("expected nothing stored, got %d", len(repo.items))
		}

		created, err := uc.ExecuteBatch(ctx, []CreateTransactionInput{
			{UserID: userID, Name: "Coffee", Amount: decimal.NewFromInt(-120), Date: "2025-03-01", Type: entity.TransactionTypeWants},
			{UserID: userID, Name: "Salary", Amount: decimal.NewFromInt(50000), Date: "2025-03-01", Type: entity.TransactionTypeIncome},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(created) != 2 || len(repo.items) != 2 {
			t.Errorf("expected 2 stored transactions, got %d", len(repo.items))
		}
	})
}

func TestDeleteTransactionUseCase(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	repo := newMemoryRepo()
	tx := entity.NewTransaction(owner, "Coffee", "Food & Dining", decimal.NewFromInt(-120), "2025-03-01", entity.TransactionTypeWants)
	_ = repo.Create(ctx, tx)
	uc := NewDeleteTransactionUseCase(repo)

	err := uc.Execute(ctx, DeleteTransactionInput{TransactionID: tx.ID, UserID: uuid.New()})
	if !errors.Is(err, domainerror.ErrNotAuthorizedToModifyTransaction) {
		t.Errorf("expected not authorized, got %v", err)
	}

	if err := uc.Execute(ctx, DeleteTransactionInput{TransactionID: tx.ID, UserID: owner}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = uc.Execute(ctx, DeleteTransactionInput{TransactionID: tx.ID, UserID: owner})
	if !errors.Is(err, domainerror.ErrTransactionNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}
