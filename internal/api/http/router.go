package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/staffhq/staff-bot/internal/api/http/handlers"
	"github.com/staffhq/staff-bot/internal/auth"
	"github.com/staffhq/staff-bot/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Staff          *handlers.StaffHandler
	Org            *handlers.OrgHandler
	Tickets        *handlers.TicketsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// NewApp builds the fiber app with the global middleware chain applied.
func NewApp(name string, logger *zap.Logger, metrics *observability.Metrics, timeout time.Duration) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               name,
		DisableStartupMessage: true,
	})
	RegisterMiddlewares(app, logger, metrics, timeout)
	return app
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	query := app.Group("/query", cfg.AuthMiddleware.Handle, auth.RequireScope(auth.ScopeQueryRead))
	query.Get("/staff", cfg.Staff.List)
	query.Get("/staff/:id", cfg.Staff.Get)
	query.Get("/staff/:id/history", cfg.Staff.History)
	query.Get("/discord/:discordId", cfg.Staff.ByDiscordID)
	query.Get("/departments", cfg.Org.Departments)
	query.Get("/departments/:id/teams", cfg.Org.DepartmentTeams)
	query.Get("/positions", cfg.Org.Positions)
	query.Get("/tickets", cfg.Tickets.List)
	query.Get("/ticket-panels", cfg.Tickets.Panels)
}
