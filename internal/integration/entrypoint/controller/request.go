// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/paisa-buddy/backend/internal/domain/error"
	"github.com/paisa-buddy/backend/internal/domain/valueobject"
	"github.com/paisa-buddy/backend/internal/integration/entrypoint/dto"
	"github.com/paisa-buddy/backend/internal/integration/entrypoint/middleware"
)

// Clock returns the current time. Controllers use it when a request does
// not pin "now" with the now query parameter.
type Clock func() time.Time

// SystemClock is the wall clock in UTC.
func SystemClock() time.Time {
	return time.Now().UTC()
}

// requireUser reads the authenticated user or writes a 401.
func requireUser(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, false
	}
	return userID, true
}

// referenceTime resolves the now query parameter (YYYY-MM-DD) or falls back
// to the clock. An unparseable value writes a 400.
func referenceTime(ctx *gin.Context, clock Clock) (time.Time, bool) {
	raw := ctx.Query("now")
	if raw == "" {
		return clock(), true
	}

	t, err := time.Parse(valueobject.DateLayout, raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   domainerror.ErrInvalidReferenceDate.Error(),
			Code:    string(domainerror.ErrCodeInvalidReferenceDate),
			Details: raw,
		})
		return time.Time{}, false
	}
	return t.UTC(), true
}

// pathID parses a positive int64 path parameter. An invalid value writes a
// 400 with the given code.
func pathID(ctx *gin.Context, name, code string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + name + " format",
			Code:  code,
		})
		return 0, false
	}
	return id, true
}

// internalError writes a generic 500.
func internalError(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: message,
	})
}
