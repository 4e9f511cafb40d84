package middleware_test

import (
	"net/http/httptest"
	"testing"

	"solidarmap/internal/middleware"
	"solidarmap/internal/monitoring"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsLabelsByRoutePattern(t *testing.T) {
	metrics := monitoring.New()
	app := fiber.New()
	app.Use(middleware.Metrics(metrics))
	app.Get("/api/ajudas/:id", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	for _, path := range []string{"/api/ajudas/1", "/api/ajudas/2"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	}

	assert.Equal(t, 1, testutil.CollectAndCount(metrics.RequestDuration))
	count, err := testutil.GatherAndCount(metrics.Registry, "http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMetricsRecordsUnmatchedRoutes(t *testing.T) {
	metrics := monitoring.New()
	app := fiber.New()
	app.Use(middleware.Metrics(metrics))

	resp, err := app.Test(httptest.NewRequest("GET", "/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	assert.Equal(t, 1, testutil.CollectAndCount(metrics.RequestDuration))
}

func methodLabels(t *testing.T, metrics *monitoring.Metrics) map[string]string {
	t.Helper()
	families, err := metrics.Registry.Gather()
	require.NoError(t, err)

	byRoute := map[string]string{}
	for _, family := range families {
		if family.GetName() != "http_request_duration_seconds" {
			continue
		}
		for _, metric := range family.GetMetric() {
			labels := map[string]string{}
			for _, pair := range metric.GetLabel() {
				labels[pair.GetName()] = pair.GetValue()
			}
			byRoute[labels["route"]] = labels["method"]
		}
	}
	return byRoute
}

func TestMetricsKeepMethodAcrossRequests(t *testing.T) {
	metrics := monitoring.New()
	app := fiber.New()
	app.Use(middleware.Metrics(metrics))
	app.Post("/api/tipos-zona", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})
	app.Get("/other", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/api/tipos-zona", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp, err = app.Test(httptest.NewRequest("GET", "/other", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	labels := methodLabels(t, metrics)
	assert.Equal(t, "POST", labels["/api/tipos-zona"])
	assert.Equal(t, "GET", labels["/other"])
}
