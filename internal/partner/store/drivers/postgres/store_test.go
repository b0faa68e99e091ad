package postgres_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/kidventure/partnerhub/internal/partner/store"
	"github.com/kidventure/partnerhub/internal/partner/store/drivers/postgres"
	"github.com/kidventure/partnerhub/internal/partner/store/storetest"
	"github.com/kidventure/partnerhub/pkg/idx"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startPostgres runs a throwaway PostgreSQL container and returns a DSN for
// its default database.
func startPostgres(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "partner",
			"POSTGRES_PASSWORD": "partner",
			"POSTGRES_DB":       "partner",
		},
		// The server restarts once after init, so wait for the second banner.
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("postgres container unavailable: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	return fmt.Sprintf("postgres://partner:partner@%s:%s/partner?sslmode=disable", host, port.Port())
}

func TestConformance(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres conformance in short mode")
	}

	dsn := startPostgres(t)
	admin, err := postgres.NewStore(context.Background(), dsn, postgres.Options{MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(func() { _ = admin.Close() })

	// Each subtest gets its own schema so they start empty.
	storetest.Run(t, func(t *testing.T) store.Store {
		schema := "t_" + strings.ToLower(idx.New().String())
		_, err := admin.DB().ExecContext(context.Background(), `CREATE SCHEMA `+schema)
		require.NoError(t, err)

		s, err := postgres.NewStore(context.Background(), dsn+"&search_path="+schema, postgres.Options{MaxConns: 8})
		require.NoError(t, err)
		t.Cleanup(func() { _ = s.Close() })

		require.NoError(t, s.ApplyMigrations())
		return s
	})
}
