// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/paisa-buddy/backend/config"
	"github.com/paisa-buddy/backend/internal/application/adapter"
	"github.com/paisa-buddy/backend/internal/application/usecase/budget"
	"github.com/paisa-buddy/backend/internal/application/usecase/dashboard"
	"github.com/paisa-buddy/backend/internal/application/usecase/goal"
	"github.com/paisa-buddy/backend/internal/application/usecase/insight"
	"github.com/paisa-buddy/backend/internal/application/usecase/recurring"
	"github.com/paisa-buddy/backend/internal/application/usecase/transaction"
	"github.com/paisa-buddy/backend/internal/infra/metrics"
	"github.com/paisa-buddy/backend/internal/infra/server/router"
	"github.com/paisa-buddy/backend/internal/integration/adapters"
	"github.com/paisa-buddy/backend/internal/integration/email"
	"github.com/paisa-buddy/backend/internal/integration/email/templates"
	"github.com/paisa-buddy/backend/internal/integration/entrypoint/controller"
	"github.com/paisa-buddy/backend/internal/integration/entrypoint/middleware"
	"github.com/paisa-buddy/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config  *config.Config
	DB      *gorm.DB
	Metrics *metrics.Metrics
	Router  *router.Router

	InsightRateLimiter *middleware.RateLimiter
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil, in which case alert state is kept in memory.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, clock controller.Clock) (*Injector, error) {
	recurringConfig := cfg.Derivation.RecurringConfig()
	thresholds := cfg.Derivation.AlertThresholds()
	appMetrics := metrics.New()

	// Create repositories
	transactionRepo := persistence.NewTransactionRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	goalRepo := persistence.NewGoalRepository(db)

	var alertStateStore adapter.AlertStateStore
	if redisClient != nil {
		alertStateStore = persistence.NewAlertStateStore(redisClient, cfg.Redis.AlertStateTTL)
	} else {
		slog.Warn("Redis not configured, budget alert state is kept in memory")
		alertStateStore = persistence.NewMemoryAlertStateStore()
	}

	// Create adapters/services
	notifier, err := newAlertNotifier(cfg.Email)
	if err != nil {
		return nil, err
	}

	var aiService adapter.InsightService
	if cfg.Gemini.APIKey != "" {
		aiService = adapters.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)
	} else {
		slog.Warn("Gemini API key not configured, AI insights are disabled")
	}

	tokenVerifier := adapters.NewTokenVerifier(cfg.JWT.Secret, cfg.JWT.Issuer)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo).WithClock(clock)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	// Create budget use cases
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo)
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)
	budgetStatusUseCase := budget.NewGetBudgetStatusUseCase(transactionRepo, budgetRepo, thresholds)
	evaluateAlertsUseCase := budget.NewEvaluateBudgetAlertsUseCase(
		transactionRepo,
		budgetRepo,
		alertStateStore,
		notifier,
		appMetrics,
		thresholds,
	)
	resetAlertsUseCase := budget.NewResetBudgetAlertsUseCase(alertStateStore)

	// Create goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)

	// Create derivation use cases
	detectRecurringUseCase := recurring.NewDetectRecurringUseCase(transactionRepo, recurringConfig)
	summaryUseCase := dashboard.NewGetSummaryUseCase(transactionRepo, goalRepo, budgetRepo, recurringConfig)
	snapshotUseCase := dashboard.NewGetSnapshotUseCase(transactionRepo, goalRepo, budgetRepo, cfg.Derivation.SnapshotRecentLimit)
	dataRangeUseCase := dashboard.NewGetDataRangeUseCase(transactionRepo)
	generateInsightsUseCase := insight.NewGenerateInsightsUseCase(snapshotUseCase, aiService, cfg.Gemini.Timeout)
	askQuestionUseCase := insight.NewAskQuestionUseCase(snapshotUseCase, aiService, cfg.Gemini.Timeout)

	// Create controllers
	var redisChecker controller.HealthChecker
	if redisClient != nil {
		redisChecker = func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}
	}
	healthController := controller.NewHealthController(func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}, redisChecker)

	controllers := router.Controllers{
		Health: healthController,
		Transaction: controller.NewTransactionController(
			listTransactionsUseCase,
			createTransactionUseCase,
			deleteTransactionUseCase,
		),
		Budget: controller.NewBudgetController(
			listBudgetsUseCase,
			createBudgetUseCase,
			updateBudgetUseCase,
			deleteBudgetUseCase,
			budgetStatusUseCase,
			evaluateAlertsUseCase,
			resetAlertsUseCase,
			clock,
		),
		Goal: controller.NewGoalController(
			listGoalsUseCase,
			createGoalUseCase,
			getGoalUseCase,
			updateGoalUseCase,
			deleteGoalUseCase,
		),
		Recurring: controller.NewRecurringController(detectRecurringUseCase, clock),
		Dashboard: controller.NewDashboardController(summaryUseCase, snapshotUseCase, dataRangeUseCase, clock),
		Insight:   controller.NewInsightController(generateInsightsUseCase, askQuestionUseCase, clock),
	}

	// Create middleware
	authMiddleware := middleware.NewAuthMiddleware(tokenVerifier)
	insightRateLimiter := middleware.NewRateLimiter(cfg.RateLimit.InsightRequests, cfg.RateLimit.InsightWindow)

	return &Injector{
		Config:  cfg,
		DB:      db,
		Metrics: appMetrics,
		Router:  router.NewRouter(controllers, authMiddleware, insightRateLimiter),

		InsightRateLimiter: insightRateLimiter,
	}, nil
}

// RouterOptions returns the router options for the configured environment.
func (i *Injector) RouterOptions() router.Options {
	return router.Options{
		Environment:       i.Config.Server.Environment,
		AllowedOrigins:    i.Config.CORS.AllowedOrigins,
		MetricsMiddleware: i.Metrics.Middleware(),
		MetricsHandler:    i.Metrics.Handler(),
	}
}

// newAlertNotifier e-mails alerts through Resend when an API key is set and
// logs them otherwise.
func newAlertNotifier(cfg config.EmailConfig) (adapter.AlertNotifier, error) {
	if cfg.ResendAPIKey == "" {
		slog.Warn("Resend API key not configured, budget alerts are only logged")
		return email.NewLogNotifier(), nil
	}

	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}

	sender, err := email.NewResendClient(cfg.ResendAPIKey, cfg.FromName, cfg.FromEmail, cfg.ResendURL)
	if err != nil {
		return nil, err
	}
	return email.NewAlertNotifier(sender, renderer, email.NotifierConfig{
		MaxAttempts:  cfg.MaxAttempts,
		RetryBackoff: cfg.RetryBackoff,
	}), nil
}
