package server_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"solidarmap/internal/config"
	"solidarmap/internal/database"
	"solidarmap/internal/logger"
	"solidarmap/internal/server"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(config.DatabaseConfig{
		Driver: config.DriverSQLite,
		DSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	}, logger.Discard())
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func TestHealth(t *testing.T) {
	db := openDB(t)
	app := server.NewApp(server.Dependencies{DB: db, Log: logger.Discard()})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "up", body["database"])

	require.NoError(t, database.Close(db))
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "down", body["database"])
}

func TestMetricsEndpoint(t *testing.T) {
	app := server.NewApp(server.Dependencies{DB: openDB(t)})

	req := httptest.NewRequest(http.MethodPost, "/api/tipos-zona", bytes.NewReader([]byte(`{"zona":"Rural"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	text := string(raw)
	assert.Contains(t, text, `entity_writes_total{action="created",entity="tipo-zona",outcome="ok"} 1`)
	assert.Contains(t, text, `http_request_duration_seconds_count{method="POST",route="/api/tipos-zona`)
}

func TestUnknownRouteReturnsJSON(t *testing.T) {
	app := server.NewApp(server.Dependencies{DB: openDB(t)})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/nothing", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")
}
