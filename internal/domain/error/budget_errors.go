// Package error defines domain-specific errors for the Paisa Buddy application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found in the system.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrBudgetAlreadyExists is returned when the user already has a budget for the category.
	ErrBudgetAlreadyExists = errors.New("budget already exists for this category")

	// ErrInvalidBudgetLimit is returned when the limit is zero or negative.
	ErrInvalidBudgetLimit = errors.New("budget limit must be positive")

	// ErrInvalidBudgetPeriod is returned when the period is neither monthly nor weekly.
	ErrInvalidBudgetPeriod = errors.New("invalid budget period")

	// ErrBudgetCategoryRequired is returned when the category is blank.
	ErrBudgetCategoryRequired = errors.New("budget category is required")

	// ErrUnauthorizedBudgetAccess is returned when user is not authorized to access a budget.
	ErrUnauthorizedBudgetAccess = errors.New("unauthorized access to budget")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BDG-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeBudgetAlreadyExists    BudgetErrorCode = "BDG-010001"
	ErrCodeInvalidBudgetLimit     BudgetErrorCode = "BDG-010002"
	ErrCodeInvalidBudgetPeriod    BudgetErrorCode = "BDG-010003"
	ErrCodeBudgetCategoryRequired BudgetErrorCode = "BDG-010004"
	ErrCodeMissingBudgetFields    BudgetErrorCode = "BDG-010005"

	// Access errors (02XXXX)
	ErrCodeBudgetNotFound           BudgetErrorCode = "BDG-020001"
	ErrCodeUnauthorizedBudgetAccess BudgetErrorCode = "BDG-020002"

	// Alert state errors (03XXXX)
	ErrCodeAlertStateUnavailable BudgetErrorCode = "BDG-030001"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
