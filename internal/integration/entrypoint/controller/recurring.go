package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/paisa-buddy/backend/internal/application/usecase/recurring"
	"github.com/paisa-buddy/backend/internal/integration/entrypoint/dto"
)

// RecurringController handles recurring payment detection endpoints.
type RecurringController struct {
	detectUseCase *recurring.DetectRecurringUseCase
	clock         Clock
}

// NewRecurringController creates a new recurring controller instance.
func NewRecurringController(detectUseCase *recurring.DetectRecurringUseCase, clock Clock) *RecurringController {
	return &RecurringController{
		detectUseCase: detectUseCase,
		clock:         clock,
	}
}

// Detect handles GET /recurring requests.
func (c *RecurringController) Detect(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	now, ok := referenceTime(ctx, c.clock)
	if !ok {
		return
	}

	result, err := c.detectUseCase.Execute(ctx.Request.Context(), recurring.DetectRecurringInput{
		UserID: userID,
		Now:    now,
	})
	if err != nil {
		slog.Error("Failed to detect recurring payments", "userID", userID, "error", err)
		internalError(ctx, "Failed to detect recurring payments")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecurringResponse(*result))
}
