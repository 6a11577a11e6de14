package testutil

import (
	"context"
	"fmt"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/wakephrase/server/internal/api"
	"github.com/wakephrase/server/internal/config"
	"github.com/wakephrase/server/internal/domain"
	"github.com/wakephrase/server/internal/repository"
	repoPostgres "github.com/wakephrase/server/internal/repository/postgres"
	"github.com/wakephrase/server/internal/service"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestDB manages a testcontainers PostgreSQL instance
type TestDB struct {
	Container testcontainers.Container
	DB        *gorm.DB
	DSN       string
}

// NewTestDB creates a new PostgreSQL testcontainer and returns a connection
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	container, err := tcPostgres.Run(ctx,
		"postgres:15-alpine",
		tcPostgres.WithDatabase("test_wakephrase"),
		tcPostgres.WithUsername("test"),
		tcPostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	db, err := gorm.Open(gormPostgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}

	// Run migrations
	err = db.AutoMigrate(
		&domain.User{},
		&domain.Profile{},
		&domain.Alarm{},
	)
	if err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	testDB := &TestDB{
		Container: container,
		DB:        db,
		DSN:       dsn,
	}

	t.Cleanup(func() {
		testDB.Cleanup()
	})

	return testDB
}

// Cleanup terminates the container
func (tdb *TestDB) Cleanup() {
	if tdb.Container != nil {
		ctx := context.Background()
		tdb.Container.Terminate(ctx)
	}
}

// Truncate clears all tables for test isolation
func (tdb *TestDB) Truncate(t *testing.T) {
	t.Helper()

	tables := []string{
		"alarms",
		"profiles",
		"users",
	}

	for _, table := range tables {
		if err := tdb.DB.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)).Error; err != nil {
			t.Logf("warning: failed to truncate %s: %v", table, err)
		}
	}
}

// TestConfig returns a configuration suitable for testing
func TestConfig() *config.Config {
	return &config.Config{
		Port:               "0", // Random port
		Environment:        "test",
		GroqAPIKey:         "test-api-key",
		GroqModel:          "test-model",
		GroqTimeout:        5 * time.Second,
		CORSAllowedOrigins: []string{"*"},
	}
}

// StubCompletionClient is an in-memory completion service. It records every
// prompt it receives and returns a fixed phrase or error.
type StubCompletionClient struct {
	mu      sync.Mutex
	prompts []string

	Phrase string
	Err    error
}

func NewStubCompletionClient(phrase string) *StubCompletionClient {
	return &StubCompletionClient{Phrase: phrase}
}

func (c *StubCompletionClient) Complete(ctx context.Context, prompt string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.prompts = append(c.prompts, prompt)
	if c.Err != nil {
		return "", c.Err
	}
	return c.Phrase, nil
}

// Prompts returns the prompts captured so far.
func (c *StubCompletionClient) Prompts() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]string, len(c.prompts))
	copy(out, c.prompts)
	return out
}

// CallCount returns how many completions were requested.
func (c *StubCompletionClient) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.prompts)
}

// TestServer holds all components for integration testing
type TestServer struct {
	Server     *httptest.Server
	DB         *TestDB
	Repos      *repository.Repositories
	Services   *service.Services
	Completion *StubCompletionClient
	Config     *config.Config
}

// NewTestServer creates a complete test server with all dependencies. The
// completion service is stubbed; everything else is real.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	testDB := NewTestDB(t)
	cfg := TestConfig()

	repos := repoPostgres.NewRepositories(testDB.DB)
	completion := NewStubCompletionClient("Get up and chase it.")
	services := service.NewServices(repos, completion)
	router := api.NewRouter(services, cfg)

	server := httptest.NewServer(router)

	ts := &TestServer{
		Server:     server,
		DB:         testDB,
		Repos:      repos,
		Services:   services,
		Completion: completion,
		Config:     cfg,
	}

	t.Cleanup(func() {
		server.Close()
	})

	return ts
}

// URL returns the full URL for the given path.
func (ts *TestServer) URL(path string) string {
	return ts.Server.URL + path
}
