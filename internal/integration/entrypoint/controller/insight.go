package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/paisa-buddy/backend/internal/application/usecase/insight"
	domainerror "github.com/paisa-buddy/backend/internal/domain/error"
	"github.com/paisa-buddy/backend/internal/integration/entrypoint/dto"
)

// InsightController handles AI insight endpoints.
type InsightController struct {
	generateUseCase *insight.GenerateInsightsUseCase
	askUseCase      *insight.AskQuestionUseCase
	clock           Clock
}

// NewInsightController creates a new insight controller instance.
func NewInsightController(
	generateUseCase *insight.GenerateInsightsUseCase,
	askUseCase *insight.AskQuestionUseCase,
	clock Clock,
) *InsightController {
	return &InsightController{
		generateUseCase: generateUseCase,
		askUseCase:      askUseCase,
		clock:           clock,
	}
}

// Generate handles POST /insights requests.
func (c *InsightController) Generate(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	now, ok := referenceTime(ctx, c.clock)
	if !ok {
		return
	}

	output, err := c.generateUseCase.Execute(ctx.Request.Context(), insight.GenerateInsightsInput{
		UserID: userID,
		Now:    now,
	})
	if err != nil {
		c.handleInsightError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInsightsResponse(output))
}

// Ask handles POST /insights/ask requests.
func (c *InsightController) Ask(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	now, ok := referenceTime(ctx, c.clock)
	if !ok {
		return
	}

	var req dto.AskQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeQuestionRequired),
		})
		return
	}

	output, err := c.askUseCase.Execute(ctx.Request.Context(), insight.AskQuestionInput{
		UserID:   userID,
		Question: req.Question,
		Now:      now,
	})
	if err != nil {
		c.handleInsightError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AskQuestionResponse{Answer: output.Answer})
}

// handleInsightError maps insight errors to HTTP responses.
func (c *InsightController) handleInsightError(ctx *gin.Context, err error) {
	var insightErr *domainerror.InsightError
	if errors.As(err, &insightErr) {
		ctx.JSON(getStatusCodeForInsightError(insightErr.Code), dto.ErrorResponse{
			Error: insightErr.Message,
			Code:  string(insightErr.Code),
		})
		return
	}

	slog.Error("Insight request failed", "error", err)
	internalError(ctx, "An internal error occurred")
}

// getStatusCodeForInsightError maps insight error codes to HTTP status codes.
func getStatusCodeForInsightError(code domainerror.InsightErrorCode) int {
	switch code {
	case domainerror.ErrCodeNoTransactionsForInsights, domainerror.ErrCodeQuestionRequired:
		return http.StatusBadRequest
	case domainerror.ErrCodeInsightRateLimited:
		return http.StatusTooManyRequests
	case domainerror.ErrCodeInsightTimeout:
		return http.StatusGatewayTimeout
	case domainerror.ErrCodeInsightNotConfigured:
		return http.StatusServiceUnavailable
	case domainerror.ErrCodeInsightAuthFailed,
		domainerror.ErrCodeInsightServiceError,
		domainerror.ErrCodeInsightUnparseable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
