// Package router sets up the HTTP routing for the application.
package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	"github.com/paisa-buddy/backend/internal/integration/entrypoint/controller"
	"github.com/paisa-buddy/backend/internal/integration/entrypoint/middleware"
)

// Controllers groups every controller the router mounts.
type Controllers struct {
	Health      *controller.HealthController
	Transaction *controller.TransactionController
	Budget      *controller.BudgetController
	Goal        *controller.GoalController
	Recurring   *controller.RecurringController
	Dashboard   *controller.DashboardController
	Insight     *controller.InsightController
}

// Options configures the cross-cutting middleware.
type Options struct {
	Environment    string
	AllowedOrigins []string
	// MetricsMiddleware and MetricsHandler are optional.
	MetricsMiddleware gin.HandlerFunc
	MetricsHandler    http.Handler
}

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	controllers        Controllers
	authMiddleware     *middleware.AuthMiddleware
	insightRateLimiter *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	controllers Controllers,
	authMiddleware *middleware.AuthMiddleware,
	insightRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		controllers:        controllers,
		authMiddleware:     authMiddleware,
		insightRateLimiter: insightRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(opts Options) *gin.Engine {
	// Set Gin mode based on environment
	switch opts.Environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.New()
	r.engine.HandleMethodNotAllowed = true

	r.engine.Use(gin.Recovery())
	r.engine.Use(requestid.New())
	r.engine.Use(middleware.RequestLogger())
	if opts.MetricsMiddleware != nil {
		r.engine.Use(opts.MetricsMiddleware)
	}
	if len(opts.AllowedOrigins) > 0 {
		r.engine.Use(cors.New(cors.Config{
			AllowOrigins:     opts.AllowedOrigins,
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID"},
			AllowCredentials: true,
		}))
	}

	r.setupHealthRoutes(opts.MetricsHandler)
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check and metrics endpoints.
func (r *Router) setupHealthRoutes(metricsHandler http.Handler) {
	if r.controllers.Health != nil {
		r.engine.GET("/health", r.controllers.Health.Check)
	}
	if metricsHandler != nil {
		r.engine.GET("/metrics", gin.WrapH(metricsHandler))
	}
}

// setupAPIRoutes configures the main API routes. Every route requires
// authentication.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	v1.Use(r.authMiddleware.Authenticate())

	if c := r.controllers.Transaction; c != nil {
		transactions := v1.Group("/transactions")
		{
			transactions.GET("", c.List)
			transactions.POST("", c.Create)
			transactions.POST("/batch", c.CreateBatch)
			transactions.DELETE("/:id", c.Delete)
		}
	}

	if c := r.controllers.Budget; c != nil {
		budgets := v1.Group("/budgets")
		{
			budgets.GET("", c.List)
			budgets.POST("", c.Create)
			budgets.GET("/status", c.Status)
			budgets.GET("/alerts", c.Alerts)
			budgets.POST("/alerts/evaluate", c.EvaluateAlerts)
			budgets.DELETE("/alerts", c.ResetAlerts)
			budgets.PATCH("/:id", c.Update)
			budgets.DELETE("/:id", c.Delete)
		}
	}

	if c := r.controllers.Goal; c != nil {
		goals := v1.Group("/goals")
		{
			goals.GET("", c.List)
			goals.POST("", c.Create)
			goals.GET("/:id", c.Get)
			goals.PATCH("/:id", c.Update)
			goals.DELETE("/:id", c.Delete)
		}
	}

	if c := r.controllers.Recurring; c != nil {
		v1.GET("/recurring", c.Detect)
	}

	if c := r.controllers.Dashboard; c != nil {
		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/summary", c.Summary)
			dashboard.GET("/snapshot", c.Snapshot)
			dashboard.GET("/data-range", c.DataRange)
		}
	}

	if c := r.controllers.Insight; c != nil {
		insights := v1.Group("/insights")
		if r.insightRateLimiter != nil {
			insights.Use(r.insightRateLimiter.Middleware())
		}
		{
			insights.POST("", c.Generate)
			insights.POST("/ask", c.Ask)
		}
	}
}
