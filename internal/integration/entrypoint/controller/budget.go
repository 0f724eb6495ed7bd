package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/paisa-buddy/backend/internal/application/usecase/budget"
	domainerror "github.com/paisa-buddy/backend/internal/domain/error"
	"github.com/paisa-buddy/backend/internal/integration/entrypoint/dto"
	"github.com/paisa-buddy/backend/internal/integration/entrypoint/middleware"
)

// BudgetController handles budget and budget alert endpoints.
type BudgetController struct {
	listUseCase     *budget.ListBudgetsUseCase
	createUseCase   *budget.CreateBudgetUseCase
	updateUseCase   *budget.UpdateBudgetUseCase
	deleteUseCase   *budget.DeleteBudgetUseCase
	statusUseCase   *budget.GetBudgetStatusUseCase
	evaluateUseCase *budget.EvaluateBudgetAlertsUseCase
	resetUseCase    *budget.ResetBudgetAlertsUseCase
	clock           Clock
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	listUseCase *budget.ListBudgetsUseCase,
	createUseCase *budget.CreateBudgetUseCase,
	updateUseCase *budget.UpdateBudgetUseCase,
	deleteUseCase *budget.DeleteBudgetUseCase,
	statusUseCase *budget.GetBudgetStatusUseCase,
	evaluateUseCase *budget.EvaluateBudgetAlertsUseCase,
	resetUseCase *budget.ResetBudgetAlertsUseCase,
	clock Clock,
) *BudgetController {
	return &BudgetController{
		listUseCase:     listUseCase,
		createUseCase:   createUseCase,
		updateUseCase:   updateUseCase,
		deleteUseCase:   deleteUseCase,
		statusUseCase:   statusUseCase,
		evaluateUseCase: evaluateUseCase,
		resetUseCase:    resetUseCase,
		clock:           clock,
	}
}

// List handles GET /budgets requests.
func (c *BudgetController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), budget.ListBudgetsInput{UserID: userID})
	if err != nil {
		slog.Error("Failed to list budgets", "userID", userID, "error", err)
		internalError(ctx, "Failed to retrieve budgets")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetListResponse(output))
}

// Create handles POST /budgets requests.
func (c *BudgetController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingBudgetFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), req.ToInput(userID))
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBudgetResponse(*output.Budget))
}

// Update handles PATCH /budgets/:id requests.
func (c *BudgetController) Update(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	budgetID, ok := pathID(ctx, "id", string(domainerror.ErrCodeBudgetNotFound))
	if !ok {
		return
	}

	var req dto.UpdateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingBudgetFields),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), req.ToInput(budgetID, userID))
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(*output.Budget))
}

// Delete handles DELETE /budgets/:id requests.
func (c *BudgetController) Delete(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	budgetID, ok := pathID(ctx, "id", string(domainerror.ErrCodeBudgetNotFound))
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), budget.DeleteBudgetInput{
		BudgetID: budgetID,
		UserID:   userID,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Status handles GET /budgets/status requests.
func (c *BudgetController) Status(ctx *gin.Context) {
	output, ok := c.status(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.ToBudgetStatusResponse(output))
}

// Alerts handles GET /budgets/alerts requests. It lists every threshold
// currently crossed without touching the shown-set.
func (c *BudgetController) Alerts(ctx *gin.Context) {
	output, ok := c.status(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"alerts": dto.ToBudgetAlertResponses(output.Alerts)})
}

func (c *BudgetController) status(ctx *gin.Context) (*budget.GetBudgetStatusOutput, bool) {
	userID, ok := requireUser(ctx)
	if !ok {
		return nil, false
	}
	now, ok := referenceTime(ctx, c.clock)
	if !ok {
		return nil, false
	}

	output, err := c.statusUseCase.Execute(ctx.Request.Context(), budget.GetBudgetStatusInput{
		UserID: userID,
		Now:    now,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return nil, false
	}
	return output, true
}

// EvaluateAlerts handles POST /budgets/alerts/evaluate requests. Only alerts
// not surfaced before in the current month are returned.
func (c *BudgetController) EvaluateAlerts(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	now, ok := referenceTime(ctx, c.clock)
	if !ok {
		return
	}
	email, _ := middleware.GetUserEmailFromContext(ctx)

	output, err := c.evaluateUseCase.Execute(ctx.Request.Context(), budget.EvaluateBudgetAlertsInput{
		UserID: userID,
		Email:  email,
		Now:    now,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEvaluateAlertsResponse(output))
}

// ResetAlerts handles DELETE /budgets/alerts requests.
func (c *BudgetController) ResetAlerts(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	if err := c.resetUseCase.Execute(ctx.Request.Context(), userID); err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleBudgetError maps budget errors to HTTP responses.
func (c *BudgetController) handleBudgetError(ctx *gin.Context, err error) {
	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		ctx.JSON(getStatusCodeForBudgetError(budgetErr.Code), dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
		return
	}

	slog.Error("Budget request failed", "error", err)
	internalError(ctx, "An internal error occurred")
}

// getStatusCodeForBudgetError maps budget error codes to HTTP status codes.
func getStatusCodeForBudgetError(code domainerror.BudgetErrorCode) int {
	switch code {
	case domainerror.ErrCodeBudgetNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeBudgetAlreadyExists:
		return http.StatusConflict
	case domainerror.ErrCodeUnauthorizedBudgetAccess:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidBudgetLimit,
		domainerror.ErrCodeInvalidBudgetPeriod,
		domainerror.ErrCodeBudgetCategoryRequired,
		domainerror.ErrCodeMissingBudgetFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeAlertStateUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
