// Package testdb connects repository tests to a disposable PostgreSQL
// database: TEST_DATABASE_URL when set, otherwise a container started once per
// test binary. Tests skip when neither is available.
package testdb

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jkmfoundation/site-api/internal/migrations"
)

// migrationLockKey serializes migrations across test packages sharing one database.
const migrationLockKey = 4242

var (
	containerOnce sync.Once
	containerURL  string
	containerErr  error
)

// Setup opens a pool on the test database, applies migrations and truncates
// the given tables. The pool is closed when the test ends.
func Setup(t *testing.T, tables ...string) *pgxpool.Pool {
	t.Helper()

	dbURL, err := databaseURL()
	if err != nil {
		t.Skipf("skipping: no test database: %v", err)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		t.Skipf("skipping: cannot connect to test database: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		t.Skipf("skipping: cannot ping test database: %v", err)
	}
	t.Cleanup(pool.Close)

	migrate(t, ctx, pool)

	if len(tables) > 0 {
		_, err = pool.Exec(ctx, "TRUNCATE TABLE "+strings.Join(tables, ", "))
		require.NoError(t, err)
	}

	return pool
}

func databaseURL() (string, error) {
	if u := os.Getenv("TEST_DATABASE_URL"); u != "" {
		return u, nil
	}
	containerOnce.Do(func() {
		containerURL, containerErr = startContainer()
	})
	return containerURL, containerErr
}

// startContainer runs postgres for the lifetime of the test binary. The
// testcontainers reaper removes it when the process exits.
func startContainer() (string, error) {
	if _, err := exec.LookPath("docker"); err != nil {
		return "", fmt.Errorf("TEST_DATABASE_URL unset and docker not found")
	}

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("site_test"),
		tcpostgres.WithUsername("site"),
		tcpostgres.WithPassword("site"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return "", fmt.Errorf("starting postgres container: %w", err)
	}

	return container.ConnectionString(ctx, "sslmode=disable")
}

func migrate(t *testing.T, ctx context.Context, pool *pgxpool.Pool) {
	t.Helper()

	conn, err := pool.Acquire(ctx)
	require.NoError(t, err)
	defer conn.Release()

	_, err = conn.Exec(ctx, "SELECT pg_advisory_lock($1)", migrationLockKey)
	require.NoError(t, err)
	defer conn.Exec(ctx, "SELECT pg_advisory_unlock($1)", migrationLockKey) //nolint:errcheck

	require.NoError(t, migrations.Up(ctx, pool))
}
