package insight

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paisa-buddy/backend/internal/application/usecase/dashboard"
	"github.com/paisa-buddy/backend/internal/domain/entity"
	domainerror "github.com/paisa-buddy/backend/internal/domain/error"
)

type memoryTransactions struct {
	items []entity.Transaction
}

func (m *memoryTransactions) Create(context.Context, *entity.Transaction) error {
	return nil
}

func (m *memoryTransactions) CreateMany(context.Context, []*entity.Transaction) error {
	return nil
}

func (m *memoryTransactions) FindByID(context.Context, int64) (*entity.Transaction, error) {
	return nil, domainerror.ErrTransactionNotFound
}

func (m *memoryTransactions) FindByUser(context.Context, uuid.UUID) ([]entity.Transaction, error) {
	return m.items, nil
}

func (m *memoryTransactions) Delete(context.Context, int64) error {
	return nil
}

type noGoals struct{}

func (noGoals) Create(context.Context, *entity.Goal) error { return nil }

func (noGoals) FindByID(context.Context, int64) (*entity.Goal, error) {
	return nil, domainerror.ErrGoalNotFound
}

func (noGoals) FindByUser(context.Context, uuid.UUID) ([]entity.Goal, error) { return nil, nil }

func (noGoals) Update(context.Context, *entity.Goal) error { return nil }

func (noGoals) Delete(context.Context, int64) error { return nil }

type noBudgets struct{}

func (noBudgets) Create(context.Context, *entity.Budget) error { return nil }

func (noBudgets) CreateMany(context.Context, []*entity.Budget) error { return nil }

func (noBudgets) FindByID(context.Context, int64) (*entity.Budget, error) {
	return nil, domainerror.ErrBudgetNotFound
}

func (noBudgets) FindByUser(context.Context, uuid.UUID) ([]entity.Budget, error) { return nil, nil }

func (noBudgets) ExistsByUserAndCategory(context.Context, uuid.UUID, string) (bool, error) {
	return false, nil
}

func (noBudgets) Update(context.Context, *entity.Budget) error { return nil }

func (noBudgets) Delete(context.Context, int64) error { return nil }

type fakeAI struct {
	available bool
	insight   *entity.AIInsight
	err       error
	received  *entity.FinancialSnapshot
	question  string
	answer    string
}

func (f *fakeAI) GenerateInsights(_ context.Context, snapshot entity.FinancialSnapshot) (*entity.AIInsight, error) {
	f.received = &snapshot
	return f.insight, f.err
}

func (f *fakeAI) AskQuestion(_ context.Context, question string, snapshot entity.FinancialSnapshot) (string, error) {
	f.received = &snapshot
	f.question = question
	return f.answer, f.err
}

func (f *fakeAI) IsAvailable() bool {
	return f.available
}

func newUseCase(items []entity.Transaction, ai *fakeAI) *GenerateInsightsUseCase {
	snapshots := dashboard.NewGetSnapshotUseCase(&memoryTransactions{items: items}, noGoals{}, noBudgets{}, 20)
	if ai == nil {
		return NewGenerateInsightsUseCase(snapshots, nil, time.Second)
	}
	return NewGenerateInsightsUseCase(snapshots, ai, time.Second)
}

func TestGenerateInsightsUseCase(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	items := []entity.Transaction{
		{Name: "Salary", Category: "Income", Amount: decimal.NewFromInt(40000), Date: "2025-01-01", Type: entity.TransactionTypeIncome},
		{Name: "Rent", Category: "Housing", Amount: decimal.NewFromInt(-12000), Date: "2025-01-02", Type: entity.TransactionTypeEssentials},
	}

	// Test the empty-data precondition.
	t.Run("no transactions", func(t *testing.T) {
		_, err := newUseCase(nil, &fakeAI{available: true}).Execute(ctx, GenerateInsightsInput{UserID: uuid.New(), Now: now})

		var insightErr *domainerror.InsightError
		if !errors.As(err, &insightErr) || insightErr.Code != domainerror.ErrCodeNoTransactionsForInsights {
			t.Errorf("expected no-transactions error, got %v", err)
		}
	})

	// Test local insights without an AI service.
	t.Run("ai not configured", func(t *testing.T) {
		out, err := newUseCase(items, nil).Execute(ctx, GenerateInsightsInput{UserID: uuid.New(), Now: now})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.AIConfigured || out.AI != nil {
			t.Errorf("expected no AI output, got %+v", out.AI)
		}
		if len(out.LocalInsights) == 0 {
			t.Error("expected local insights")
		}
	})

	// Test the AI only receives the snapshot.
	t.Run("ai configured", func(t *testing.T) {
		ai := &fakeAI{available: true, insight: &entity.AIInsight{Summary: "Looking good"}}

		out, err := newUseCase(items, ai).Execute(ctx, GenerateInsightsInput{UserID: uuid.New(), Now: now})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.AI == nil || out.AI.Summary != "Looking good" {
			t.Errorf("unexpected AI output: %+v", out.AI)
		}
		if ai.received == nil || ai.received.Totals.SavingsRate != 70 {
			t.Errorf("expected the snapshot to be forwarded, got %+v", ai.received)
		}
	})

	// Test AI failures are classified.
	t.Run("ai rate limited", func(t *testing.T) {
		ai := &fakeAI{available: true, err: errors.New("googleapi: Error 429")}

		out, err := newUseCase(items, ai).Execute(ctx, GenerateInsightsInput{UserID: uuid.New(), Now: now})
		if err != nil {
			t.Fatalf("AI failure should not fail the request: %v", err)
		}
		if out.AIError == nil || out.AIError.Code != domainerror.ErrCodeInsightRateLimited {
			t.Errorf("expected rate limited AI error, got %+v", out.AIError)
		}
		if !out.AIRetryable {
			t.Error("expected a rate limit to be retryable")
		}
		if out.AI != nil || !out.AIConfigured {
			t.Errorf("expected configured AI without advice, got %+v", out)
		}
		if len(out.LocalInsights) == 0 {
			t.Error("expected local insights to survive the AI failure")
		}
		if out.Snapshot.Totals.SavingsRate != 70 {
			t.Errorf("expected the snapshot to be returned, got %+v", out.Snapshot.Totals)
		}
	})
}

func TestAskQuestionUseCase(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	items := []entity.Transaction{
		{Name: "Salary", Category: "Income", Amount: decimal.NewFromInt(40000), Date: "2025-01-01", Type: entity.TransactionTypeIncome},
	}
	newAsk := func(ai *fakeAI) *AskQuestionUseCase {
		snapshots := dashboard.NewGetSnapshotUseCase(&memoryTransactions{items: items}, noGoals{}, noBudgets{}, 20)
		if ai == nil {
			return NewAskQuestionUseCase(snapshots, nil, time.Second)
		}
		return NewAskQuestionUseCase(snapshots, ai, time.Second)
	}

	tests := []struct {
		name     string
		ai       *fakeAI
		question string
		wantCode domainerror.InsightErrorCode
	}{
		{name: "blank question", ai: &fakeAI{available: true}, question: "  ", wantCode: domainerror.ErrCodeQuestionRequired},
		{name: "not configured", ai: nil, question: "Can I afford a car?", wantCode: domainerror.ErrCodeInsightNotConfigured},
		{name: "service down", ai: &fakeAI{available: true, err: errors.New("connection refused")}, question: "Can I afford a car?", wantCode: domainerror.ErrCodeInsightServiceError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newAsk(tt.ai).Execute(ctx, AskQuestionInput{UserID: uuid.New(), Question: tt.question, Now: now})

			var insightErr *domainerror.InsightError
			if !errors.As(err, &insightErr) || insightErr.Code != tt.wantCode {
				t.Errorf("expected %s, got %v", tt.wantCode, err)
			}
		})
	}

	// Test an empty answer falls back to a fixed message.
	t.Run("empty answer", func(t *testing.T) {
		ai := &fakeAI{available: true, answer: "  "}

		out, err := newAsk(ai).Execute(ctx, AskQuestionInput{UserID: uuid.New(), Question: " Can I afford a car? ", Now: now})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Answer != fallbackAnswer {
			t.Errorf("unexpected answer %q", out.Answer)
		}
		if ai.question != "Can I afford a car?" {
			t.Errorf("expected trimmed question, got %q", ai.question)
		}
		if ai.received == nil || !ai.received.Totals.Income.Equal(decimal.NewFromInt(40000)) {
			t.Errorf("expected the snapshot to be forwarded, got %+v", ai.received)
		}
	})
}
