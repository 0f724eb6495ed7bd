// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/paisa-buddy/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Category  string          `gorm:"type:varchar(100);index"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date      string          `gorm:"type:varchar(40);not null"` // Stored as supplied
	Type      string          `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
	DeletedAt gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		Category:  m.Category,
		Amount:    m.Amount,
		Date:      m.Date,
		Type:      entity.TransactionType(m.Type),
		CreatedAt: m.CreatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(t *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:        t.ID,
		UserID:    t.UserID,
		Name:      t.Name,
		Category:  t.Category,
		Amount:    t.Amount,
		Date:      t.Date,
		Type:      string(t.Type),
		CreatedAt: t.CreatedAt,
	}
}
