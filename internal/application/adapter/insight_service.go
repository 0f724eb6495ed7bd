// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/paisa-buddy/backend/internal/domain/entity"
)

// InsightService generates AI advice from a financial snapshot. It never
// receives raw transaction history.
type InsightService interface {
	// GenerateInsights returns structured advice for the snapshot.
	GenerateInsights(ctx context.Context, snapshot entity.FinancialSnapshot) (*entity.AIInsight, error)

	// AskQuestion answers a free-text question in plain prose, using the
	// snapshot as context.
	AskQuestion(ctx context.Context, question string, snapshot entity.FinancialSnapshot) (string, error)

	// IsAvailable checks if the AI service is available and properly configured.
	IsAvailable() bool
}
