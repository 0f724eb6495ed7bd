// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/paisa-buddy/backend/internal/domain/entity"
)

// GoalModel represents the goals table in the database.
type GoalModel struct {
	ID            int64           `gorm:"primaryKey;autoIncrement"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Type          string          `gorm:"type:varchar(20);not null;default:'Other'"`
	Current       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Target        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	MonthlyTarget decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Deadline      string          `gorm:"type:varchar(40)"`
	Color         string          `gorm:"type:varchar(20)"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
	DeletedAt     gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	return &entity.Goal{
		ID:            m.ID,
		UserID:        m.UserID,
		Name:          m.Name,
		Type:          entity.GoalType(m.Type),
		Current:       m.Current,
		Target:        m.Target,
		Deadline:      m.Deadline,
		MonthlyTarget: m.MonthlyTarget,
		Color:         m.Color,
		CreatedAt:     m.CreatedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	return &GoalModel{
		ID:            goal.ID,
		UserID:        goal.UserID,
		Name:          goal.Name,
		Type:          string(goal.Type),
		Current:       goal.Current,
		Target:        goal.Target,
		MonthlyTarget: goal.MonthlyTarget,
		Deadline:      goal.Deadline,
		Color:         goal.Color,
		CreatedAt:     goal.CreatedAt,
	}
}
