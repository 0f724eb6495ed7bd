package insight

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/paisa-buddy/backend/internal/application/adapter"
	"github.com/paisa-buddy/backend/internal/application/usecase/dashboard"
	domainerror "github.com/paisa-buddy/backend/internal/domain/error"
)

// MaxQuestionLength bounds the question forwarded to the AI service.
const MaxQuestionLength = 500

// fallbackAnswer is returned when the AI service answers with nothing.
const fallbackAnswer = "Sorry, I could not generate an answer. Please try again."

// AskQuestionInput represents a free-text question about the user's finances.
type AskQuestionInput struct {
	UserID   uuid.UUID
	Question string
	Now      time.Time
}

// AskQuestionOutput represents the AI answer.
type AskQuestionOutput struct {
	Answer string
}

// AskQuestionUseCase answers a question using the user's snapshot as context.
type AskQuestionUseCase struct {
	snapshots *dashboard.GetSnapshotUseCase
	aiService adapter.InsightService
	timeout   time.Duration
}

// NewAskQuestionUseCase creates a new AskQuestionUseCase instance.
// aiService may be nil.
func NewAskQuestionUseCase(
	snapshots *dashboard.GetSnapshotUseCase,
	aiService adapter.InsightService,
	timeout time.Duration,
) *AskQuestionUseCase {
	return &AskQuestionUseCase{
		snapshots: snapshots,
		aiService: aiService,
		timeout:   timeout,
	}
}

// Execute asks the AI service. Unlike insight generation there is no local
// fallback, so an unconfigured service is an error.
func (uc *AskQuestionUseCase) Execute(ctx context.Context, input AskQuestionInput) (*AskQuestionOutput, error) {
	question := strings.TrimSpace(input.Question)
	if question == "" {
		return nil, domainerror.NewInsightError(
			domainerror.ErrCodeQuestionRequired,
			"question is required",
			domainerror.ErrQuestionRequired,
		)
	}
	if runes := []rune(question); len(runes) > MaxQuestionLength {
		question = string(runes[:MaxQuestionLength])
	}

	if uc.aiService == nil || !uc.aiService.IsAvailable() {
		return nil, domainerror.NewInsightError(
			domainerror.ErrCodeInsightNotConfigured,
			"the AI service is not configured",
			domainerror.ErrInsightNotConfigured,
		)
	}

	snapshot, err := uc.snapshots.Execute(ctx, dashboard.GetSnapshotInput{
		UserID: input.UserID,
		Now:    input.Now,
	})
	if err != nil {
		return nil, err
	}

	aiCtx := ctx
	if uc.timeout > 0 {
		var cancel context.CancelFunc
		aiCtx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	answer, err := uc.aiService.AskQuestion(aiCtx, question, snapshot.Snapshot)
	if err != nil {
		classified, retryable := classifyError(err)
		slog.Error("AI question failed",
			"error", err,
			"userID", input.UserID,
			"code", classified.Code,
			"retryable", retryable,
		)
		return nil, classified
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		answer = fallbackAnswer
	}
	return &AskQuestionOutput{Answer: answer}, nil
}
