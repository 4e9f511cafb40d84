//go:build integration

package repositories_test

import (
	"context"
	"testing"
	"time"

	"solidarmap/internal/config"
	"solidarmap/internal/database"
	"solidarmap/internal/logger"
	"solidarmap/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// openPostgres starts a PostgreSQL container and returns a migrated connection.
func openPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("solidarmap"),
		postgres.WithUsername("solidarmap"),
		postgres.WithPassword("solidarmap"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("Failed to start PostgreSQL container: %v", err)
	}
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := database.Open(config.DatabaseConfig{Driver: config.DriverPostgres, DSN: dsn, MaxOpenConns: 5}, logger.Discard())
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func TestPostgres_CascadeAndRelations(t *testing.T) {
	f := newFixture(openPostgres(t))
	g := seedGraph(t, f)
	ctx := context.Background()

	aid, err := f.aidRequests.GetByID(ctx, g.aidRequest.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", aid.User.Name)
	assert.Equal(t, "Água", aid.ResourceType.Name)

	location, err := f.locations.GetByID(ctx, g.location.ID)
	require.NoError(t, err)
	assert.InDelta(t, -23.55052, location.Latitude, 1e-8)

	require.NoError(t, f.users.Delete(ctx, g.user.ID))

	_, err = f.aidRequests.GetByID(ctx, g.aidRequest.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	ratings, err := f.ratings.GetByAidRequestID(ctx, g.aidRequest.ID)
	require.NoError(t, err)
	assert.Empty(t, ratings)
	messages, err := f.messages.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, messages)
}
