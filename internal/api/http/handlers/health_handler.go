package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/staffhq/staff-bot/internal/observability"
)

const readinessTimeout = 2 * time.Second

// Pinger is a dependency the readiness probe can check.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Check names one readiness dependency. A nil Pinger reports "disabled"
// and never fails the probe.
type Check struct {
	Name   string
	Pinger Pinger
}

// HealthHandler serves the probes and the in-process counters.
type HealthHandler struct {
	service string
	version string
	checks  []Check
	metrics *observability.Metrics
}

// NewHealthHandler builds the handler. Checks run in the given order.
func NewHealthHandler(service, version string, metrics *observability.Metrics, checks ...Check) *HealthHandler {
	return &HealthHandler{service: service, version: version, checks: checks, metrics: metrics}
}

// Live answers as long as the process serves HTTP.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.service,
		"version": h.version,
	})
}

// Ready pings every dependency and fails with 503 if any configured one is down.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), readinessTimeout)
	defer cancel()

	deps := make(fiber.Map, len(h.checks))
	down := false
	for _, check := range h.checks {
		if check.Pinger == nil {
			deps[check.Name] = "disabled"
			continue
		}
		if err := check.Pinger.Ping(ctx); err != nil {
			deps[check.Name] = err.Error()
			down = true
			continue
		}
		deps[check.Name] = "ok"
	}

	if down {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "DEPENDENCY_UNAVAILABLE",
				"message": "one or more dependencies unavailable",
				"details": deps,
			},
		})
	}
	return c.JSON(fiber.Map{"status": "ready", "dependencies": deps})
}

// Metrics returns the request, error and command counters.
func (h *HealthHandler) Metrics(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.metrics.Snapshot()})
}
