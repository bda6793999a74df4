// test/helpers/helpers.go
package helpers

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/warehouse-be/internal/adapters/db"
	"github.com/ammerola/warehouse-be/internal/core/domain"
)

// TestDB represents a throwaway PostgreSQL instance for integration tests.
type TestDB struct {
	Database *db.Database
	Resource *dockertest.Resource
	Pool     *dockertest.Pool
	Config   *db.Config
}

// TestLogger returns a logger for tests: debug output when verbose,
// errors only otherwise.
func TestLogger() *slog.Logger {
	level := slog.LevelError
	if testing.Verbose() {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

// SetupTestDB starts a PostgreSQL container, runs the archive
// migrations against it and returns a connected Database. The
// container is purged when the test finishes.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "could not connect to Docker")

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=test",
			"POSTGRES_PASSWORD=test",
			"POSTGRES_DB=test_warehouse",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "could not start PostgreSQL container")

	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("could not purge resource: %s", err)
		}
	})

	dbConfig := &db.Config{
		Host:           "localhost",
		Port:           resource.GetPort("5432/tcp"),
		User:           "test",
		Password:       "test",
		Database:       "test_warehouse",
		SSLMode:        "disable",
		MaxConnections: 5,
		MinConnections: 1,
		ConnectTimeout: 10 * time.Second,
	}

	var database *db.Database
	err = pool.Retry(func() error {
		ctx := context.Background()
		var err error
		database, err = db.NewDatabase(ctx, dbConfig, TestLogger())
		if err != nil {
			return err
		}
		return database.Ping(ctx)
	})
	require.NoError(t, err, "could not connect to PostgreSQL")

	t.Cleanup(database.Close)

	databaseURL := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		dbConfig.User, dbConfig.Password, dbConfig.Host, dbConfig.Port,
		dbConfig.Database, dbConfig.SSLMode)
	require.NoError(t, db.RunMigrations(databaseURL, TestLogger()), "could not run migrations")

	return &TestDB{
		Database: database,
		Resource: resource,
		Pool:     pool,
		Config:   dbConfig,
	}
}

// CreateTestClient builds a client with sensible defaults.
func CreateTestClient(seq int, overrides ...func(*domain.Client)) *domain.Client {
	c := domain.NewClient(fmt.Sprintf("Test Client %d", seq), fmt.Sprintf("%d Main St", seq), seq)
	for _, override := range overrides {
		override(c)
	}
	return c
}

// CreateTestProduct builds a product with sensible defaults.
func CreateTestProduct(seq int, overrides ...func(*domain.Product)) *domain.Product {
	p := domain.NewProduct(fmt.Sprintf("Test Product %d", seq),
		decimal.NewFromInt(int64(10*seq)), 10, seq)
	for _, override := range overrides {
		override(p)
	}
	return p
}

// TruncateArchiveTables empties the archive tables between test cases.
func TruncateArchiveTables(t *testing.T, database *db.Database) {
	t.Helper()

	ctx := context.Background()
	for _, table := range []string{"waitlist_entries", "clients", "products"} {
		_, err := database.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err, "failed to truncate table: %s", table)
	}
}
