package budget

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/paisa-buddy/backend/internal/application/adapter"
	"github.com/paisa-buddy/backend/internal/domain/entity"
	domainerror "github.com/paisa-buddy/backend/internal/domain/error"
	"github.com/paisa-buddy/backend/internal/domain/valueobject"
)

// EvaluateBudgetAlertsInput represents the input for an alert evaluation cycle.
type EvaluateBudgetAlertsInput struct {
	UserID uuid.UUID
	Email  string // Optional, alerts are only e-mailed when set
	Now    time.Time
}

// EvaluateBudgetAlertsOutput represents the result of an alert evaluation cycle.
type EvaluateBudgetAlertsOutput struct {
	Alerts          []entity.BudgetAlert
	FirstEvaluation bool
	Period          string
}

// EvaluateBudgetAlertsUseCase runs the alert engine for a user with the
// shown-set kept in an AlertStateStore.
type EvaluateBudgetAlertsUseCase struct {
	transactionRepo adapter.TransactionRepository
	budgetRepo      adapter.BudgetRepository
	stateStore      adapter.AlertStateStore
	notifier        adapter.AlertNotifier
	metrics         adapter.AlertMetrics
	thresholds      valueobject.AlertThresholds

	// Serialises load-evaluate-save so concurrent requests for the same
	// user cannot emit the same alert twice.
	mu sync.Mutex
}

// NewEvaluateBudgetAlertsUseCase creates a new EvaluateBudgetAlertsUseCase instance.
// notifier and metrics may be nil.
func NewEvaluateBudgetAlertsUseCase(
	transactionRepo adapter.TransactionRepository,
	budgetRepo adapter.BudgetRepository,
	stateStore adapter.AlertStateStore,
	notifier adapter.AlertNotifier,
	metrics adapter.AlertMetrics,
	thresholds valueobject.AlertThresholds,
) *EvaluateBudgetAlertsUseCase {
	return &EvaluateBudgetAlertsUseCase{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		stateStore:      stateStore,
		notifier:        notifier,
		metrics:         metrics,
		thresholds:      thresholds,
	}
}

// Execute performs one evaluation cycle.
func (uc *EvaluateBudgetAlertsUseCase) Execute(ctx context.Context, input EvaluateBudgetAlertsInput) (*EvaluateBudgetAlertsOutput, error) {
	summary, err := loadSummary(ctx, uc.transactionRepo, uc.budgetRepo, input.UserID, input.Now)
	if err != nil {
		return nil, err
	}

	state, firstEvaluation, alerts, err := uc.evaluate(ctx, input.UserID, summary.Budgets, input.Now)
	if err != nil {
		return nil, err
	}

	// Delivery may retry with backoff, so it runs after the state lock is released.
	if len(alerts) > 0 {
		uc.publish(ctx, input, alerts)
	}

	return &EvaluateBudgetAlertsOutput{
		Alerts:          alerts,
		FirstEvaluation: firstEvaluation && len(summary.Budgets) > 0,
		Period:          state.Period(),
	}, nil
}

// evaluate loads the user's alert state, runs the engine and saves the state
// back while holding mu.
func (uc *EvaluateBudgetAlertsUseCase) evaluate(
	ctx context.Context,
	userID uuid.UUID,
	budgets []entity.Budget,
	now time.Time,
) (*AlertState, bool, []entity.BudgetAlert, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	record, err := uc.stateStore.Load(ctx, userID)
	if err != nil {
		return nil, false, nil, domainerror.NewBudgetError(
			domainerror.ErrCodeAlertStateUnavailable,
			"failed to load alert state",
			err,
		)
	}

	state := NewAlertState()
	if record != nil {
		state = RestoreAlertState(*record)
	}
	firstEvaluation := !state.Evaluated()

	alerts := Evaluate(state, budgets, now, uc.thresholds)

	if err := uc.stateStore.Save(ctx, userID, state.Snapshot()); err != nil {
		return nil, false, nil, domainerror.NewBudgetError(
			domainerror.ErrCodeAlertStateUnavailable,
			"failed to save alert state",
			err,
		)
	}

	return state, firstEvaluation, alerts, nil
}

// publish records metrics and hands alerts to the notifier. Delivery
// failures are logged and do not fail the cycle.
func (uc *EvaluateBudgetAlertsUseCase) publish(ctx context.Context, input EvaluateBudgetAlertsInput, alerts []entity.BudgetAlert) {
	if uc.metrics != nil {
		for _, a := range alerts {
			uc.metrics.AlertEmitted(a.Type)
		}
	}

	slog.Info("Budget alerts emitted", "userID", input.UserID, "count", len(alerts))

	if uc.notifier == nil {
		return
	}
	recipient := adapter.AlertRecipient{UserID: input.UserID, Email: input.Email}
	if err := uc.notifier.Notify(ctx, recipient, alerts); err != nil {
		slog.Warn("Failed to deliver budget alerts", "error", err, "userID", input.UserID)
	}
}
