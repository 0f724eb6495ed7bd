// Package error defines domain-specific errors for the Paisa Buddy application.
package error

import "errors"

// Insight domain errors.
var (
	// ErrNoTransactionsForInsights is returned when there is no data to summarise.
	ErrNoTransactionsForInsights = errors.New("no transactions to analyse")

	// ErrInsightServiceError is returned when the AI service encounters an error.
	ErrInsightServiceError = errors.New("ai service error")

	// ErrInsightRateLimited is returned when the AI service rate limits requests.
	ErrInsightRateLimited = errors.New("ai service rate limited")

	// ErrInsightAuthFailed is returned when the AI service rejects the API key.
	ErrInsightAuthFailed = errors.New("ai service authentication failed")

	// ErrInsightTimeout is returned when the AI service does not answer in time.
	ErrInsightTimeout = errors.New("ai service timed out")

	// ErrInsightUnparseable is returned when the AI response cannot be read.
	ErrInsightUnparseable = errors.New("ai response could not be parsed")

	// ErrQuestionRequired is returned when a blank question is asked.
	ErrQuestionRequired = errors.New("question is required")

	// ErrInsightNotConfigured is returned when the AI service has no credentials.
	ErrInsightNotConfigured = errors.New("ai service is not configured")
)

// InsightErrorCode defines error codes for insight errors.
// Format: INS-XXYYYY where XX is category and YYYY is specific error.
type InsightErrorCode string

const (
	// Precondition errors (01XXXX)
	ErrCodeNoTransactionsForInsights InsightErrorCode = "INS-010001"
	ErrCodeQuestionRequired          InsightErrorCode = "INS-010002"

	// External service errors (02XXXX)
	ErrCodeInsightServiceError  InsightErrorCode = "INS-020001"
	ErrCodeInsightRateLimited   InsightErrorCode = "INS-020002"
	ErrCodeInsightAuthFailed    InsightErrorCode = "INS-020003"
	ErrCodeInsightTimeout       InsightErrorCode = "INS-020004"
	ErrCodeInsightUnparseable   InsightErrorCode = "INS-020005"
	ErrCodeInsightNotConfigured InsightErrorCode = "INS-020006"
)

// InsightError represents an insight generation error with code and message.
type InsightError struct {
	Code    InsightErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InsightError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InsightError) Unwrap() error {
	return e.Err
}

// NewInsightError creates a new InsightError with the given code and message.
func NewInsightError(code InsightErrorCode, message string, err error) *InsightError {
	return &InsightError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
