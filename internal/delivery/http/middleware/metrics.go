package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/panoprobe/internal/metrics"
)

// Metrics - middleware для сбора метрик HTTP запросов.
// В метку route попадает шаблон маршрута, а не фактический путь.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
		}

		metrics.ObserveHTTP(c.Method(), c.Route().Path, status, time.Since(start))
		return err
	}
}
