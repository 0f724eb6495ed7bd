// Package error defines domain-specific errors for the Paisa Buddy application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the system.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInvalidGoalTarget is returned when the target amount is zero or negative.
	ErrInvalidGoalTarget = errors.New("goal target must be positive")

	// ErrInvalidGoalAmount is returned when the current or monthly amount is negative.
	ErrInvalidGoalAmount = errors.New("goal amounts cannot be negative")

	// ErrInvalidGoalType is returned when the goal type is unknown.
	ErrInvalidGoalType = errors.New("invalid goal type")

	// ErrGoalNameRequired is returned when the goal name is blank.
	ErrGoalNameRequired = errors.New("goal name is required")

	// ErrUnauthorizedGoalAccess is returned when user is not authorized to access a goal.
	ErrUnauthorizedGoalAccess = errors.New("unauthorized access to goal")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidGoalTarget GoalErrorCode = "GOL-010001"
	ErrCodeInvalidGoalAmount GoalErrorCode = "GOL-010002"
	ErrCodeInvalidGoalType   GoalErrorCode = "GOL-010003"
	ErrCodeGoalNameRequired  GoalErrorCode = "GOL-010004"
	ErrCodeMissingGoalFields GoalErrorCode = "GOL-010005"

	// Access errors (02XXXX)
	ErrCodeGoalNotFound           GoalErrorCode = "GOL-020001"
	ErrCodeUnauthorizedGoalAccess GoalErrorCode = "GOL-020002"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
