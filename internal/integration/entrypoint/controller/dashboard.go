package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/paisa-buddy/backend/internal/application/usecase/dashboard"
	"github.com/paisa-buddy/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	summaryUseCase   *dashboard.GetSummaryUseCase
	snapshotUseCase  *dashboard.GetSnapshotUseCase
	dataRangeUseCase *dashboard.GetDataRangeUseCase
	clock            Clock
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	summaryUseCase *dashboard.GetSummaryUseCase,
	snapshotUseCase *dashboard.GetSnapshotUseCase,
	dataRangeUseCase *dashboard.GetDataRangeUseCase,
	clock Clock,
) *DashboardController {
	return &DashboardController{
		summaryUseCase:   summaryUseCase,
		snapshotUseCase:  snapshotUseCase,
		dataRangeUseCase: dataRangeUseCase,
		clock:            clock,
	}
}

// Summary handles GET /dashboard/summary requests.
func (c *DashboardController) Summary(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	now, ok := referenceTime(ctx, c.clock)
	if !ok {
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), dashboard.GetSummaryInput{
		UserID: userID,
		Now:    now,
	})
	if err != nil {
		slog.Error("Failed to build dashboard summary", "userID", userID, "error", err)
		internalError(ctx, "Failed to build dashboard summary")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardSummaryResponse(output))
}

// Snapshot handles GET /dashboard/snapshot requests.
func (c *DashboardController) Snapshot(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	now, ok := referenceTime(ctx, c.clock)
	if !ok {
		return
	}

	output, err := c.snapshotUseCase.Execute(ctx.Request.Context(), dashboard.GetSnapshotInput{
		UserID: userID,
		Now:    now,
	})
	if err != nil {
		slog.Error("Failed to build snapshot", "userID", userID, "error", err)
		internalError(ctx, "Failed to build snapshot")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardSnapshotResponse(output))
}

// DataRange handles GET /dashboard/data-range requests.
func (c *DashboardController) DataRange(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	now, ok := referenceTime(ctx, c.clock)
	if !ok {
		return
	}

	output, err := c.dataRangeUseCase.Execute(ctx.Request.Context(), dashboard.GetDataRangeInput{
		UserID: userID,
		Now:    now,
	})
	if err != nil {
		slog.Error("Failed to get data range", "userID", userID, "error", err)
		internalError(ctx, "Failed to get data range")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDataRangeResponse(output))
}
