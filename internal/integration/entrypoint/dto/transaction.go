package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paisa-buddy/backend/internal/application/usecase/transaction"
	"github.com/paisa-buddy/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date,omitempty"`
	Type     string  `json:"type"`
}

// BatchCreateTransactionsRequest represents a batch of transactions to store
// together, e.g. rows from a client-side import.
type BatchCreateTransactionsRequest struct {
	Transactions []CreateTransactionRequest `json:"transactions" binding:"required,min=1,max=1000,dive"`
}

// ToInput converts the request to a use case input.
func (r CreateTransactionRequest) ToInput(userID uuid.UUID) transaction.CreateTransactionInput {
	return transaction.CreateTransactionInput{
		UserID:   userID,
		Name:     r.Name,
		Category: r.Category,
		Amount:   decimal.NewFromFloat(r.Amount),
		Date:     r.Date,
		Type:     entity.TransactionType(r.Type),
	}
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
	Type     string  `json:"type"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Count        int                   `json:"count"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(t entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:       t.ID,
		Name:     t.Name,
		Category: t.Category,
		Amount:   money(t.Amount),
		Date:     t.Date,
		Type:     string(t.Type),
	}
}

// ToTransactionListResponse converts a list of transactions to a TransactionListResponse DTO.
func ToTransactionListResponse(transactions []entity.Transaction) TransactionListResponse {
	items := make([]TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		items = append(items, ToTransactionResponse(t))
	}
	return TransactionListResponse{Transactions: items, Count: len(items)}
}

// ToCreatedTransactionsResponse converts stored transactions to a TransactionListResponse DTO.
func ToCreatedTransactionsResponse(transactions []*entity.Transaction) TransactionListResponse {
	items := make([]TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		items = append(items, ToTransactionResponse(*t))
	}
	return TransactionListResponse{Transactions: items, Count: len(items)}
}
