// Package testhelper starts a throwaway PostgreSQL for integration tests.
package testhelper

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/fairplay-backend/internal/adapter/postgres"
)

var (
	once      sync.Once
	sharedDSN string
	initErr   error
)

// tables lists every application table, children before parents.
var tables = []string{
	"certificates", "newsletter_subscribers", "alerts", "messages", "game_scores",
	"lesson_quizzes", "lessons", "module_quizzes",
	"forum_messages", "forum_members", "forums",
	"comments", "posts", "users",
}

// SetupTestDB returns a pool connected to a migrated database. The
// container is started once per test binary; every call truncates all
// tables so tests start from an empty schema.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	once.Do(func() {
		sharedDSN, initErr = startContainer()
	})
	if initErr != nil {
		t.Fatalf("testhelper: setup test DB: %v", initErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, sharedDSN)
	if err != nil {
		t.Fatalf("testhelper: create pool: %v", err)
	}
	t.Cleanup(pool.Close)

	if _, err := pool.Exec(ctx, "TRUNCATE "+strings.Join(tables, ", ")+" CASCADE"); err != nil {
		t.Fatalf("testhelper: truncate: %v", err)
	}
	return pool
}

func startContainer() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "fairplay",
				"POSTGRES_PASSWORD": "fairplay",
				"POSTGRES_DB":       "fairplay_test",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", fmt.Errorf("mapped port: %w", err)
	}

	dsn := fmt.Sprintf("postgres://fairplay:fairplay@%s:%s/fairplay_test?sslmode=disable", host, port.Port())
	if _, err := postgres.Migrate(ctx, dsn); err != nil {
		return "", err
	}
	return dsn, nil
}
