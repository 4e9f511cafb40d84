package middleware

import (
	"strconv"
	"time"

	"solidarmap/internal/monitoring"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// Metrics is a Fiber middleware observing request durations. Requests are labelled
// with the matched route pattern, not the raw path, to bound label cardinality.
func Metrics(m *monitoring.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := statusOf(c, err)

		route := "unmatched"
		if r := c.Route(); r != nil && r.Path != "/" && r.Path != "" {
			route = r.Path
		}
		// label values outlive the request; c.Method() aliases the reused request buffer
		m.RequestDuration.
			WithLabelValues(utils.CopyString(c.Method()), utils.CopyString(route), strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())
		return err
	}
}

// statusOf is the status the client receives once err has gone through the error handler.
func statusOf(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	if fe, ok := err.(*fiber.Error); ok {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}
