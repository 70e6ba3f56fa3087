// Package server assembles the Fiber app: middleware, docs, the Prometheus
// endpoint and every context's routes.
package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"chain-usage-dashboard/internal/observability"
)

const MetricsPath = "/internal/metrics"

// Registrar mounts a context's routes.
type Registrar interface {
	Register(r fiber.Router)
}

func NewApp(log *zap.Logger, metrics *observability.Metrics, routes ...Registrar) *fiber.App {
	if log == nil {
		log = zap.NewNop()
	}

	// Immutable: the latest-wins registry keeps request values past the request.
	app := fiber.New(fiber.Config{
		AppName:               "chaindash",
		DisableStartupMessage: true,
		Immutable:             true,
	})

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(accessLog(log))
	app.Use(recover.New())

	if reg := metrics.Registry(); reg != nil {
		app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	}
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	for _, r := range routes {
		r.Register(app)
	}
	return app
}

func accessLog(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		started := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("took", time.Since(started)),
			zap.String("request_id", c.GetRespHeader(fiber.HeaderXRequestID)),
		}
		if status >= fiber.StatusInternalServerError {
			log.Warn("request", fields...)
		} else {
			log.Debug("request", fields...)
		}
		return err
	}
}
