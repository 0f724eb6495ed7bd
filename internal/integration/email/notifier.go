// Package email provides email sending functionality.
package email

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/paisa-buddy/backend/internal/application/adapter"
	"github.com/paisa-buddy/backend/internal/domain/entity"
	domainerror "github.com/paisa-buddy/backend/internal/domain/error"
	"github.com/paisa-buddy/backend/internal/integration/email/templates"
)

// NotifierConfig holds retry settings for alert delivery.
type NotifierConfig struct {
	MaxAttempts  int
	RetryBackoff time.Duration
}

// DefaultNotifierConfig returns the default notifier configuration.
func DefaultNotifierConfig() NotifierConfig {
	return NotifierConfig{
		MaxAttempts:  3,
		RetryBackoff: 500 * time.Millisecond,
	}
}

// AlertNotifier e-mails newly emitted budget alerts as one digest.
type AlertNotifier struct {
	sender   Sender
	renderer *templates.Renderer
	config   NotifierConfig
}

// NewAlertNotifier creates a new e-mail alert notifier.
func NewAlertNotifier(sender Sender, renderer *templates.Renderer, config NotifierConfig) *AlertNotifier {
	if config.MaxAttempts < 1 {
		config.MaxAttempts = 1
	}
	return &AlertNotifier{
		sender:   sender,
		renderer: renderer,
		config:   config,
	}
}

// Notify renders the digest and sends it, retrying temporary failures.
// Recipients without an e-mail address are skipped.
func (n *AlertNotifier) Notify(ctx context.Context, recipient adapter.AlertRecipient, alerts []entity.BudgetAlert) error {
	if recipient.Email == "" || len(alerts) == 0 {
		return nil
	}

	data := digestData(alerts, time.Now())
	html, text, err := n.renderer.Render(templates.BudgetAlertTemplate, data)
	if err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeTemplateRenderFailed,
			"failed to render budget alert email",
			errors.Join(domainerror.ErrTemplateRenderFailed, err),
		)
	}

	msg := Message{
		To:      recipient.Email,
		Subject: subjectFor(alerts),
		HTML:    html,
		Text:    text,
	}

	logger := slog.With("userID", recipient.UserID, "alerts", len(alerts))

	var lastErr error
	for attempt := 1; attempt <= n.config.MaxAttempts; attempt++ {
		id, err := n.sender.Send(ctx, msg)
		if err == nil {
			logger.Info("Budget alert email sent", "resend_id", id, "attempt", attempt)
			return nil
		}
		lastErr = err

		var emailErr *domainerror.EmailError
		if errors.As(err, &emailErr) && emailErr.IsPermanent() {
			logger.Warn("Budget alert email permanently failed", "error", err)
			return err
		}

		if attempt == n.config.MaxAttempts {
			break
		}
		logger.Info("Budget alert email scheduled for retry", "attempt", attempt, "error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(n.config.RetryBackoff * time.Duration(attempt)):
		}
	}

	return fmt.Errorf("failed to send budget alert email after %d attempts: %w", n.config.MaxAttempts, lastErr)
}

// subjectFor picks the subject from the most severe alert.
func subjectFor(alerts []entity.BudgetAlert) string {
	for _, a := range alerts {
		if a.Type == entity.AlertTypeExceeded {
			return "Paisa Buddy: you went over a budget"
		}
	}
	if len(alerts) == 1 {
		return fmt.Sprintf("Paisa Buddy: %s budget is at %d%%", alerts[0].Category, alerts[0].PercentUsed)
	}
	return "Paisa Buddy: budgets nearing their limit"
}

func digestData(alerts []entity.BudgetAlert, now time.Time) templates.BudgetAlertData {
	lines := make([]templates.AlertLine, 0, len(alerts))
	for _, a := range alerts {
		lines = append(lines, templates.AlertLine{
			Category:    a.Category,
			Severity:    severityLabel(a.Type),
			Spent:       "₹" + a.Spent.StringFixed(0),
			Limit:       "₹" + a.Limit.StringFixed(0),
			Remaining:   "₹" + a.Remaining().Abs().StringFixed(0),
			PercentUsed: a.PercentUsed,
			Exceeded:    a.Type == entity.AlertTypeExceeded,
		})
	}
	return templates.BudgetAlertData{
		Period: now.UTC().Format("January 2006"),
		Alerts: lines,
	}
}

func severityLabel(t entity.AlertType) string {
	label := string(t)
	if label == "" {
		return ""
	}
	return strings.ToUpper(label[:1]) + label[1:]
}

var _ adapter.AlertNotifier = (*AlertNotifier)(nil)
