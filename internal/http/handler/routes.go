package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fetchbench/internal/model"
)

// RegisterRoutes attaches the target endpoints to the provided Fiber app.
// GET /uuid mirrors httpbin.org/uuid: a fresh random v4 per request.
func RegisterRoutes(app *fiber.App, reg *prometheus.Registry) {
	app.Get("/uuid", func(c *fiber.Ctx) error {
		return c.JSON(model.UUIDPayload{UUID: uuid.NewString()})
	})

	// Liveness probe
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	app.Get("/metrics", adaptor.HTTPHandler(
		promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	))
}
