// Package insight contains AI insight generation use cases.
package insight

import (
	"context"
	"errors"
	"strings"

	domainerror "github.com/paisa-buddy/backend/internal/domain/error"
)

// classifyError converts an AI service error into an InsightError with a
// user-facing message. Retryable reports whether trying again may help.
func classifyError(err error) (classified *domainerror.InsightError, retryable bool) {
	errStr := strings.ToLower(err.Error())

	// Check for timeout/cancellation (context errors)
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return domainerror.NewInsightError(
			domainerror.ErrCodeInsightTimeout,
			"Generating insights took longer than expected. Please try again.",
			errors.Join(domainerror.ErrInsightTimeout, err),
		), true
	}

	// Check for rate limiting
	if strings.Contains(errStr, "rate limit") || strings.Contains(errStr, "quota") ||
		strings.Contains(errStr, "429") || strings.Contains(errStr, "resource exhausted") {
		return domainerror.NewInsightError(
			domainerror.ErrCodeInsightRateLimited,
			"Too many requests. Wait a few minutes and try again.",
			errors.Join(domainerror.ErrInsightRateLimited, err),
		), true
	}

	// Check for authentication errors
	if strings.Contains(errStr, "401") || strings.Contains(errStr, "403") ||
		strings.Contains(errStr, "invalid api key") || strings.Contains(errStr, "api key not valid") ||
		strings.Contains(errStr, "unauthorized") || strings.Contains(errStr, "authentication") {
		return domainerror.NewInsightError(
			domainerror.ErrCodeInsightAuthFailed,
			"The AI service is misconfigured. Please contact support.",
			errors.Join(domainerror.ErrInsightAuthFailed, err),
		), false
	}

	// Check for parse errors
	if errors.Is(err, domainerror.ErrInsightUnparseable) ||
		strings.Contains(errStr, "json") || strings.Contains(errStr, "unmarshal") {
		return domainerror.NewInsightError(
			domainerror.ErrCodeInsightUnparseable,
			"The AI response could not be read. Please try again.",
			errors.Join(domainerror.ErrInsightUnparseable, err),
		), true
	}

	// Network/connection and anything else
	return domainerror.NewInsightError(
		domainerror.ErrCodeInsightServiceError,
		"The AI service is temporarily unavailable. Please try again later.",
		errors.Join(domainerror.ErrInsightServiceError, err),
	), true
}
