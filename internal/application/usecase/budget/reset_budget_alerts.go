package budget

import (
	"context"

	"github.com/google/uuid"

	"github.com/paisa-buddy/backend/internal/application/adapter"
	domainerror "github.com/paisa-buddy/backend/internal/domain/error"
)

// ResetBudgetAlertsUseCase forgets a user's shown-set, so the next evaluation
// is treated as the first one.
type ResetBudgetAlertsUseCase struct {
	stateStore adapter.AlertStateStore
}

// NewResetBudgetAlertsUseCase creates a new ResetBudgetAlertsUseCase instance.
func NewResetBudgetAlertsUseCase(stateStore adapter.AlertStateStore) *ResetBudgetAlertsUseCase {
	return &ResetBudgetAlertsUseCase{stateStore: stateStore}
}

// Execute clears the stored state.
func (uc *ResetBudgetAlertsUseCase) Execute(ctx context.Context, userID uuid.UUID) error {
	if err := uc.stateStore.Clear(ctx, userID); err != nil {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeAlertStateUnavailable,
			"failed to clear alert state",
			err,
		)
	}
	return nil
}
