package email

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paisa-buddy/backend/internal/application/adapter"
	"github.com/paisa-buddy/backend/internal/domain/entity"
	domainerror "github.com/paisa-buddy/backend/internal/domain/error"
	"github.com/paisa-buddy/backend/internal/integration/email/templates"
)

func newTestNotifier(t *testing.T, sender Sender) *AlertNotifier {
	t.Helper()
	renderer, err := templates.NewRenderer()
	require.NoError(t, err)
	return NewAlertNotifier(sender, renderer, NotifierConfig{MaxAttempts: 3, RetryBackoff: time.Millisecond})
}

func sampleAlerts() []entity.BudgetAlert {
	return []entity.BudgetAlert{
		{Category: "Shopping", Limit: decimal.NewFromInt(5000), Spent: decimal.NewFromInt(5500), PercentUsed: 110, Type: entity.AlertTypeExceeded},
		{Category: "Food & Dining", Limit: decimal.NewFromInt(8000), Spent: decimal.NewFromInt(6800), PercentUsed: 85, Type: entity.AlertTypeWarning},
	}
}

func TestAlertNotifierSendsDigest(t *testing.T) {
	sender := NewMockSender()
	notifier := newTestNotifier(t, sender)
	recipient := adapter.AlertRecipient{UserID: uuid.New(), Email: "asha@example.com"}

	require.NoError(t, notifier.Notify(context.Background(), recipient, sampleAlerts()))

	sent := sender.Messages()
	require.Len(t, sent, 1)
	assert.Equal(t, "asha@example.com", sent[0].To)
	assert.Equal(t, "Paisa Buddy: you went over a budget", sent[0].Subject)
	assert.Contains(t, sent[0].HTML, "Food &amp; Dining")
	assert.Contains(t, sent[0].Text, "- Shopping (Exceeded): ₹5500 of ₹5000 spent, 110% used. Over by ₹500.")
	assert.Contains(t, sent[0].Text, "- Food & Dining (Warning): ₹6800 of ₹8000 spent, 85% used. ₹1200 left.")
}

func TestAlertNotifierRetriesTemporaryFailures(t *testing.T) {
	sender := NewMockSender()
	temporary := domainerror.NewEmailError(domainerror.ErrCodeTemporaryEmailFailure, "temporary email failure", errors.New("429"))
	sender.FailNext(temporary, temporary)
	notifier := newTestNotifier(t, sender)

	err := notifier.Notify(context.Background(), adapter.AlertRecipient{Email: "asha@example.com"}, sampleAlerts()[1:])

	require.NoError(t, err)
	require.Len(t, sender.Messages(), 1)
	assert.Equal(t, "Paisa Buddy: Food & Dining budget is at 85%", sender.Messages()[0].Subject)
}

func TestAlertNotifierStopsOnPermanentFailure(t *testing.T) {
	sender := NewMockSender()
	permanent := domainerror.NewEmailError(domainerror.ErrCodePermanentEmailFailure, "permanent email failure", errors.New("403 forbidden"))
	sender.FailNext(permanent, permanent)
	notifier := newTestNotifier(t, sender)

	err := notifier.Notify(context.Background(), adapter.AlertRecipient{Email: "asha@example.com"}, sampleAlerts())

	assert.ErrorIs(t, err, permanent)
	assert.Empty(t, sender.Messages())
}

func TestAlertNotifierGivesUp(t *testing.T) {
	sender := NewMockSender()
	temporary := domainerror.NewEmailError(domainerror.ErrCodeTemporaryEmailFailure, "temporary email failure", errors.New("503"))
	sender.FailNext(temporary, temporary, temporary)
	notifier := newTestNotifier(t, sender)

	err := notifier.Notify(context.Background(), adapter.AlertRecipient{Email: "asha@example.com"}, sampleAlerts())

	assert.ErrorIs(t, err, temporary)
	assert.Empty(t, sender.Messages())
}

func TestAlertNotifierSkipsMissingEmail(t *testing.T) {
	sender := NewMockSender()
	notifier := newTestNotifier(t, sender)

	require.NoError(t, notifier.Notify(context.Background(), adapter.AlertRecipient{UserID: uuid.New()}, sampleAlerts()))
	assert.Empty(t, sender.Messages())
}

func TestIsPermanentError(t *testing.T) {
	assert.True(t, isPermanentError(errors.New("422 validation_error")))
	assert.True(t, isPermanentError(errors.New("Unauthorized")))
	assert.False(t, isPermanentError(errors.New("429 rate limit")))
	assert.False(t, isPermanentError(nil))
}
