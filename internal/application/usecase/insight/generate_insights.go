package insight

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/paisa-buddy/backend/internal/application/adapter"
	"github.com/paisa-buddy/backend/internal/application/usecase/dashboard"
	"github.com/paisa-buddy/backend/internal/domain/entity"
	domainerror "github.com/paisa-buddy/backend/internal/domain/error"
)

// GenerateInsightsInput represents the input for insight generation.
type GenerateInsightsInput struct {
	UserID uuid.UUID
	Now    time.Time
}

// GenerateInsightsOutput represents generated insights. AI is nil when the
// AI service is not configured or failed; AIError is set in the latter case.
type GenerateInsightsOutput struct {
	Snapshot      entity.FinancialSnapshot
	LocalInsights []string
	AI            *entity.AIInsight
	AIConfigured  bool
	AIError       *domainerror.InsightError
	AIRetryable   bool
}

// GenerateInsightsUseCase builds a snapshot and asks the AI service for advice.
type GenerateInsightsUseCase struct {
	snapshots *dashboard.GetSnapshotUseCase
	aiService adapter.InsightService
	timeout   time.Duration
}

// NewGenerateInsightsUseCase creates a new GenerateInsightsUseCase instance.
// aiService may be nil.
func NewGenerateInsightsUseCase(
	snapshots *dashboard.GetSnapshotUseCase,
	aiService adapter.InsightService,
	timeout time.Duration,
) *GenerateInsightsUseCase {
	return &GenerateInsightsUseCase{
		snapshots: snapshots,
		aiService: aiService,
		timeout:   timeout,
	}
}

// Execute generates insights. It fails only when the user has no
// transactions; an AI failure is reported on the output next to the local
// insights.
func (uc *GenerateInsightsUseCase) Execute(ctx context.Context, input GenerateInsightsInput) (*GenerateInsightsOutput, error) {
	snapshot, err := uc.snapshots.Execute(ctx, dashboard.GetSnapshotInput{
		UserID: input.UserID,
		Now:    input.Now,
	})
	if err != nil {
		return nil, err
	}

	if snapshot.TransactionCount == 0 {
		return nil, domainerror.NewInsightError(
			domainerror.ErrCodeNoTransactionsForInsights,
			"add some transactions first to get insights",
			domainerror.ErrNoTransactionsForInsights,
		)
	}

	output := &GenerateInsightsOutput{
		Snapshot:      snapshot.Snapshot,
		LocalInsights: snapshot.LocalInsights,
	}

	if uc.aiService == nil || !uc.aiService.IsAvailable() {
		return output, nil
	}
	output.AIConfigured = true

	aiCtx := ctx
	if uc.timeout > 0 {
		var cancel context.CancelFunc
		aiCtx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	insight, err := uc.aiService.GenerateInsights(aiCtx, snapshot.Snapshot)
	if err != nil {
		classified, retryable := classifyError(err)
		slog.Error("AI insight generation failed",
			"error", err,
			"userID", input.UserID,
			"code", classified.Code,
			"retryable", retryable,
		)
		output.AIError = classified
		output.AIRetryable = retryable
		return output, nil
	}

	output.AI = insight
	return output, nil
}
