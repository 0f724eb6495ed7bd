// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalType represents what a savings goal is for.
type GoalType string

const (
	GoalTypeEmergency GoalType = "Emergency"
	GoalTypeVacation  GoalType = "Vacation"
	GoalTypeEducation GoalType = "Education"
	GoalTypeHome      GoalType = "Home"
	GoalTypeVehicle   GoalType = "Vehicle"
	GoalTypeOther     GoalType = "Other"
)

// IsValid reports whether t is a known goal type.
func (t GoalType) IsValid() bool {
	switch t {
	case GoalTypeEmergency, GoalTypeVacation, GoalTypeEducation, GoalTypeHome, GoalTypeVehicle, GoalTypeOther:
		return true
	}
	return false
}

var goalColors = map[GoalType]string{
	GoalTypeEmergency: "bg-primary",
	GoalTypeVacation:  "bg-accent",
	GoalTypeEducation: "bg-warning",
	GoalTypeHome:      "bg-secondary",
	GoalTypeVehicle:   "bg-muted",
	GoalTypeOther:     "bg-success",
}

// ColorForGoalType returns the display color token for a goal type.
func ColorForGoalType(t GoalType) string {
	if color, ok := goalColors[t]; ok {
		return color
	}
	return "bg-primary"
}

// Goal represents a savings goal in the Paisa Buddy system.
type Goal struct {
	ID            int64
	UserID        uuid.UUID
	Name          string
	Type          GoalType
	Current       decimal.Decimal
	Target        decimal.Decimal
	Deadline      string
	MonthlyTarget decimal.Decimal
	Color         string
	CreatedAt     time.Time
}

// NewGoal creates a new Goal entity with its color derived from the type.
func NewGoal(
	userID uuid.UUID,
	name string,
	goalType GoalType,
	current, target, monthlyTarget decimal.Decimal,
	deadline string,
) *Goal {
	return &Goal{
		UserID:        userID,
		Name:          name,
		Type:          goalType,
		Current:       current,
		Target:        target,
		Deadline:      deadline,
		MonthlyTarget: monthlyTarget,
		Color:         ColorForGoalType(goalType),
		CreatedAt:     time.Now().UTC(),
	}
}
