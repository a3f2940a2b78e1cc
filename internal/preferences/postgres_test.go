package preferences

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/GLATools_Go/internal/database"
)

func TestPostgresStore(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	ctx := context.Background()

	// testcontainers panics when no Docker daemon is reachable
	defer func() {
		if r := recover(); r != nil {
			t.Skipf("Skipping integration test: docker unavailable: %v", r)
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Skipf("Skipping integration test: failed to start postgres container: %v", err)
	}
	t.Cleanup(func() { _ = pgContainer.Terminate(ctx) })

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(ctx, connStr))

	pool, err := database.NewPool(ctx, database.PoolConfig{DSN: connStr, MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	store := NewPostgresStore(pool)
	storeContract(t, store)

	cached := NewCachedStore(store, 16, time.Minute)
	p := Defaults(testRecipe)
	p.GearLevel = 12
	require.NoError(t, Save(ctx, cached, p))

	got, err := Load(ctx, store, Defaults(testRecipe))
	require.NoError(t, err)
	require.Equal(t, p, got)
}
