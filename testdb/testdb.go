// Package testdb starts a throwaway PostgreSQL container for store integration tests and
// applies the project's migrations to it.
//
//	func TestSomething(t *testing.T) {
//	    pool := testdb.New(t)
//	    store := items.NewPgStore(pool, zap.NewNop())
//	    ...
//	}
//
// Tests calling New are skipped under `go test -short` and when Docker is not reachable.
package testdb

import (
	"context"
	"path/filepath"
	"runtime"
	"strconv"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/user/inventory-go/config"
	"github.com/user/inventory-go/db"
)

const (
	defaultPostgresPort = "5432"
	defaultUser         = "test"
	defaultPassword     = "test"
	defaultDatabase     = "testdb"
	startupTimeout      = 60 * time.Second
)

// migrationsPath resolves the repository's migrations directory from this file's location,
// so tests work regardless of the package they run in.
func migrationsPath() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "migrations")
}

// New starts postgres, runs migrations and returns a pool. Everything is torn down with t.Cleanup.
func New(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping postgres integration test in -short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{defaultPostgresPort + "/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     defaultUser,
			"POSTGRES_PASSWORD": defaultPassword,
			"POSTGRES_DB":       defaultDatabase,
		},
		WaitingFor: wait.ForAll(
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			wait.ForListeningPort(defaultPostgresPort+"/tcp"),
		),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("docker not available: %v", err)
	}
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get container host: %v", err)
	}
	mappedPort, err := container.MappedPort(ctx, defaultPostgresPort)
	if err != nil {
		t.Fatalf("failed to get container port: %v", err)
	}
	port, err := strconv.Atoi(mappedPort.Port())
	if err != nil {
		t.Fatalf("failed to parse port: %v", err)
	}

	cfg := &config.DatabaseConfig{
		Host:           host,
		Port:           port,
		User:           defaultUser,
		Password:       defaultPassword,
		DBName:         defaultDatabase,
		MaxSize:        5,
		MigrationsPath: migrationsPath(),
	}

	if err := db.RunMigrations(cfg, zap.NewNop()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	pool, err := db.NewDBPool(cfg)
	if err != nil {
		t.Fatalf("failed to create pool: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}
