package email

import (
	"context"
	"log/slog"

	"github.com/paisa-buddy/backend/internal/application/adapter"
	"github.com/paisa-buddy/backend/internal/domain/entity"
)

// LogNotifier writes budget alerts to the structured log. It is used when
// no e-mail provider is configured.
type LogNotifier struct{}

// NewLogNotifier creates a new LogNotifier.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Notify logs one line per alert.
func (LogNotifier) Notify(_ context.Context, recipient adapter.AlertRecipient, alerts []entity.BudgetAlert) error {
	for _, a := range alerts {
		slog.Info("Budget alert",
			"userID", recipient.UserID,
			"category", a.Category,
			"type", a.Type,
			"percentUsed", a.PercentUsed,
			"spent", a.Spent.String(),
			"limit", a.Limit.String(),
		)
	}
	return nil
}

var _ adapter.AlertNotifier = LogNotifier{}
